package parser

import (
	"github.com/cwbudde/ifj25c/internal/cerr"
	"github.com/cwbudde/ifj25c/internal/ir"
	"github.com/cwbudde/ifj25c/internal/symtab"
	"github.com/cwbudde/ifj25c/internal/token"
)

// parseProlog recognizes the mandatory `import "ifj25" for Ifj` header
// (spec §2) that binds the Ifj builtin namespace.
func (p *Parser) parseProlog() {
	p.skipEOLs()
	p.expect(token.IMPORT)
	p.expect(token.STRING)
	p.expect(token.FOR)
	p.expect(token.IFJ)
	p.skipEOLs()
}

// parseClass recognizes `class Program { ... }`, the language's single,
// literally-named class (spec §2), and its list of static
// function/getter/setter members. At the end of the class body, `main`
// (arity 0) must exist in the global table or the program is rejected.
func (p *Parser) parseClass() {
	p.expect(token.CLASS)
	pos := p.pos()
	name := p.expect(token.IDENT).Literal
	if name != "Program" {
		p.errs = append(p.errs, cerr.Syn(pos, "class must be named %q, got %q", "Program", name))
	}
	p.expect(token.LBRACE)
	p.skipEOLs()

	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		p.parseClassMember()
		p.skipEOLs()
	}
	p.expect(token.RBRACE)

	if _, ok := p.scope.Global().Find(symtab.FuncKey("main", 0)); !ok {
		p.errs = append(p.errs, cerr.Sem(cerr.UndefinedFunction, cerr.Position{},
			"function %q must be defined", "main@0"))
	}
}

// parseClassMember parses `static <name> ...` and tells a plain function,
// a getter, and a setter apart by what follows the name (spec §4.7/§4.8):
// `(` starts a parameter list, `{` starts a zero-arg getter body directly,
// `=` starts a setter's single-parameter parenthesized form.
func (p *Parser) parseClassMember() {
	p.expect(token.STATIC)
	name := p.expect(token.IDENT).Literal

	switch p.cur.Type {
	case token.LPAREN:
		p.parseFunction(name)
	case token.LBRACE:
		p.parseGetter(name)
	case token.ASSIGN:
		p.advance()
		p.parseSetter(name)
	default:
		p.errorf("expected '(', '{', or '=' after %q, got %s %q", name, p.cur.Type, p.cur.Literal)
	}
}

type param struct {
	name string
}

// parseTypeName recognizes a bare type name, used only by the `is` type
// test operator (spec §4.6) — the language's declarations are untyped.
func (p *Parser) parseTypeName() string {
	switch p.cur.Type {
	case token.NUM, token.STRTY, token.NULLTY:
		t := p.cur.Literal
		p.advance()
		return t
	default:
		p.errorf("expected a type name, got %q", p.cur.Literal)
		p.advance()
		return "undefined"
	}
}

// parseParamList handles `(ident, ident, ...)`: spec §4.7's grammar has no
// type position on parameters, only bare identifiers.
func (p *Parser) parseParamList() []param {
	var params []param
	p.expect(token.LPAREN)
	for !p.is(token.RPAREN) && !p.is(token.EOF) {
		name := p.expect(token.IDENT).Literal
		params = append(params, param{name: name})
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

// parseFunction handles `static name(params) { block }`; the grammar has
// no return-type annotation position at all.
func (p *Parser) parseFunction(name string) {
	params := p.parseParamList()
	p.defineFunction(symtab.FuncKey(name, len(params)), name, params, func(label string) {
		p.emitFunctionBody(label, params)
	})
}

// parseGetter handles `static name { block }`, mangled to arity 0 under
// the `getter:` key (spec §4.8). A getter takes no parameter list at all.
func (p *Parser) parseGetter(name string) {
	p.defineFunction(symtab.GetterKey(name), name, nil, func(label string) {
		p.emitFunctionBody(label, nil)
	})
}

// parseSetter handles `static name = (param) { block }`, mangled to
// arity 1 under the `setter:` key (spec §4.8).
func (p *Parser) parseSetter(name string) {
	p.expect(token.LPAREN)
	paramName := p.expect(token.IDENT).Literal
	p.expect(token.RPAREN)
	params := []param{{name: paramName}}

	p.defineFunction(symtab.SetterKey(name), name, params, func(label string) {
		p.emitFunctionBody(label, params)
	})
}

// defineFunction registers key in the global table (upgrading a forward
// declaration left by an earlier call site, per spec §4.2's "Find returns
// a mutable descriptor"), then emits the function's entry label and body.
// Every declaration is untyped, so ReturnType is always "undefined".
func (p *Parser) defineFunction(key, bareName string, params []param, emitBody func(label string)) {
	label := "func_" + sanitizeLabel(key)

	sym, existed := p.scope.Global().Find(key)
	if existed && sym.Defined {
		p.semErrorf(cerr.Redefinition, "function %q is already defined", bareName)
		emitBody(label) // still consume the duplicate body so parsing resumes after it
		return
	}
	if !existed {
		sym = &symtab.Symbol{Kind: symtab.KindFunc}
		p.scope.Global().Insert(key, sym)
	}
	sym.Kind = symtab.KindFunc
	sym.ReturnType = "undefined"
	sym.Arity = len(params)
	sym.ParamNames = paramNames(params)
	sym.ParamTypes = paramTypes(params)
	sym.Defined = true
	sym.Label = label

	p.emit.EmitBlank()
	emitBody(label)
}

func paramNames(params []param) []string {
	out := make([]string, len(params))
	for i, pr := range params {
		out[i] = pr.name
	}
	return out
}

func paramTypes(params []param) []string {
	out := make([]string, len(params))
	for i := range params {
		out[i] = "undefined"
	}
	return out
}

// emitFunctionBody emits the label/%retval/parameter-move prologue, the
// block, and falls through to an implicit `return null` if the block
// doesn't end with one (spec §4.7).
func (p *Parser) emitFunctionBody(label string, params []param) {
	p.emit.Emit(ir.OpLabel, ir.LabelOperand{Name: label}, nil, nil)
	p.emit.ResetTemps()

	prevScope := p.scope.Push()
	prevRetVar, prevHasRetVar := p.retVar, p.hasRetVar
	p.retVar = ir.Var{Frame: ir.LocalFrame, Name: "retval"}
	p.hasRetVar = true
	p.emit.Emit(ir.OpDefVar, p.retVar, nil, nil)
	p.emit.Emit(ir.OpMove, p.retVar, ir.ConstNil{}, nil)

	for i, pr := range params {
		v := ir.Var{Frame: ir.LocalFrame, Name: pr.name}
		p.emit.Emit(ir.OpDefVar, v, nil, nil)
		p.emit.Emit(ir.OpMove, v, ir.Var{Frame: ir.LocalFrame, Name: paramSlotName(i)}, nil)
		prevScope.Insert(symtab.VarKey(pr.name), &symtab.Symbol{Kind: symtab.KindVar, VarType: "undefined", UniqueName: pr.name})
	}

	p.parseBlock()

	p.emit.Emit(ir.OpPushS, p.retVar, nil, nil)
	p.emit.Emit(ir.OpReturn, nil, nil, nil)
	p.scope.Pop()
	p.retVar, p.hasRetVar = prevRetVar, prevHasRetVar
}

func paramSlotName(i int) string {
	return "param" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}

// sanitizeLabel turns a mangled symbol key into a valid label fragment.
func sanitizeLabel(key string) string {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
