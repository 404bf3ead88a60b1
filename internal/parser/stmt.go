package parser

import (
	"github.com/cwbudde/ifj25c/internal/cerr"
	"github.com/cwbudde/ifj25c/internal/ir"
	"github.com/cwbudde/ifj25c/internal/symtab"
	"github.com/cwbudde/ifj25c/internal/token"
)

// parseBlock recognizes `{ statement* }`, opening and closing its own
// lexical scope (spec §4.3).
func (p *Parser) parseBlock() {
	p.expect(token.LBRACE)
	p.skipEOLs()
	p.scope.Push()
	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		p.parseStatement()
		p.skipEOLs()
	}
	p.scope.Pop()
	p.expect(token.RBRACE)
}

// parseOneLineOrBlock handles the `if`/`while` body shape: either a
// full `{ ... }` block or a single statement. A single-statement
// expression body leaves nothing orphaned on the stack: any expression
// statement pops its result into a discarded scratch temp rather than
// leaving an unconsumed stack value (resolves the one-line-block open
// question in the language's favor of always-balanced stack discipline).
func (p *Parser) parseOneLineOrBlock() {
	if p.is(token.LBRACE) {
		p.parseBlock()
		return
	}
	p.scope.Push()
	p.parseStatement()
	p.scope.Pop()
}

func (p *Parser) parseStatement() {
	switch p.cur.Type {
	case token.VAR:
		p.parseVarDecl()
	case token.IF:
		p.parseIf()
	case token.WHILE:
		p.parseWhile()
	case token.RETURN:
		p.parseReturn()
	case token.EOL, token.SEMICOLON:
		p.advance()
	default:
		p.parseExprOrAssignStatement()
	}
}

// defvar emits a DEFVAR for v and, if a while loop is currently open,
// records it in the innermost loop's frame. The hoist itself (spec §4.7)
// is done by parseWhile over every DEFVAR in the loop's window.
func (p *Parser) defvar(v ir.Var) {
	n := p.emit.Emit(ir.OpDefVar, v, nil, nil)
	if len(p.loops) > 0 {
		top := p.loops[len(p.loops)-1]
		top.defvars = append(top.defvars, n)
	}
}

// parseVarDecl handles `var name;` and `var name = expr;` (spec §4.7),
// declaring name in the current scope. The grammar has no type position.
func (p *Parser) parseVarDecl() {
	p.expect(token.VAR)
	name := p.expect(token.IDENT).Literal

	if p.scope.DeclaredInTop(symtab.VarKey(name)) {
		p.semErrorf(cerr.Redefinition, "variable %q is already declared in this scope", name)
	}
	unique := name + "%" + p.emit.NewTemp() // per-function counter: shadowed names never alias
	v := ir.Var{Frame: localFrameFor(p), Name: unique}
	p.defvar(v)
	p.scope.Top().Insert(symtab.VarKey(name), &symtab.Symbol{Kind: symtab.KindVar, VarType: "undefined", UniqueName: unique})

	if p.is(token.ASSIGN) {
		p.advance()
		p.parseExpr()
		p.emit.Emit(ir.OpPopS, v, nil, nil)
	} else {
		p.emit.Emit(ir.OpMove, v, ir.ConstNil{}, nil)
	}
	p.endStatement()
}

// localFrameFor always emits LF@ since every scope but the global one
// lives in the current call's local frame (spec §4.4); globals are
// declared separately via `__`-prefixed identifiers.
func localFrameFor(p *Parser) ir.Frame {
	_ = p
	return ir.LocalFrame
}

func (p *Parser) endStatement() {
	if p.is(token.SEMICOLON) {
		p.advance()
	}
	p.skipEOLs()
}

// parseExprOrAssignStatement handles both `lvalue = expr;` (including
// setter-call desugaring, spec §4.8/§9) and a bare expression statement.
func (p *Parser) parseExprOrAssignStatement() {
	if p.is(token.IDENT) && p.peekIs(token.ASSIGN) {
		name := p.cur.Literal
		p.advance()
		p.advance() // '='
		p.parseExpr()
		p.emitAssign(name)
		p.endStatement()
		return
	}
	if p.is(token.GLOBAL_IDENT) && p.peekIs(token.ASSIGN) {
		name := p.cur.Literal
		p.advance()
		p.advance()
		p.parseExpr()
		p.emit.Emit(ir.OpPopS, ir.Var{Frame: ir.GlobalFrame, Name: name}, nil, nil)
		p.endStatement()
		return
	}

	p.parseExpr()
	discard := p.emit.NewTemp()
	p.emit.Emit(ir.OpPopS, ir.Var{Frame: ir.TempFrame, Name: discard}, nil, nil)
	p.endStatement()
}

// emitAssign resolves name to a plain variable or to a setter accessor
// (spec §4.8): `x = expr` desugars to `Program.set_x(expr)` when no plain
// variable x is in scope but a setter for x is.
func (p *Parser) emitAssign(name string) {
	if sym, ok := p.scope.Resolve(symtab.VarKey(name)); ok {
		p.emit.Emit(ir.OpPopS, ir.Var{Frame: ir.LocalFrame, Name: sym.UniqueName}, nil, nil)
		return
	}
	if sym, ok := p.scope.Global().Find(symtab.SetterKey(name)); ok {
		p.emitCallTo(sym.Label, 1)
		discard := p.emit.NewTemp()
		p.emit.Emit(ir.OpPopS, ir.Var{Frame: ir.TempFrame, Name: discard}, nil, nil)
		return
	}
	p.semErrorf(cerr.OtherSemantic, "assignment target %q is neither a variable nor a setter", name)
}

func (p *Parser) parseIf() {
	p.expect(token.IF)
	p.expect(token.LPAREN)
	p.parseExpr()
	p.expect(token.RPAREN)

	elseLbl := p.emit.NewLabel("else")
	endLbl := p.emit.NewLabel("endif")

	irgenJumpIfFalse(p, elseLbl)
	p.parseOneLineOrBlock()
	p.emit.Emit(ir.OpJump, ir.LabelOperand{Name: endLbl}, nil, nil)

	p.emit.Emit(ir.OpLabel, ir.LabelOperand{Name: elseLbl}, nil, nil)
	p.skipEOLs()
	if p.is(token.ELSE) {
		p.advance()
		p.parseOneLineOrBlock()
	}
	p.emit.Emit(ir.OpLabel, ir.LabelOperand{Name: endLbl}, nil, nil)
}

// parseWhile lowers `while (cond) body` with the truthiness pattern, then
// hoists every DEFVAR emitted for the condition or the body (including
// nested loops) to a blank anchor placed just ahead of the loop label
// (spec §4.7), so repeated iterations never re-declare a variable.
func (p *Parser) parseWhile() {
	p.expect(token.WHILE)
	startLbl := p.emit.NewLabel("while")
	endLbl := p.emit.NewLabel("endwhile")

	anchor := p.emit.EmitBlank()
	p.emit.Emit(ir.OpLabel, ir.LabelOperand{Name: startLbl}, nil, nil)
	frame := &loopFrame{anchor: anchor}
	p.loops = append(p.loops, frame)

	p.expect(token.LPAREN)
	p.parseExpr()
	p.expect(token.RPAREN)
	irgenJumpIfFalse(p, endLbl)

	p.parseOneLineOrBlock()
	p.emit.Emit(ir.OpJump, ir.LabelOperand{Name: startLbl}, nil, nil)
	end := p.emit.Emit(ir.OpLabel, ir.LabelOperand{Name: endLbl}, nil, nil)

	p.loops = p.loops[:len(p.loops)-1]
	var defvars []*ir.Instruction
	for n := anchor.Next; n != nil && n != end; n = n.Next {
		if n.Opcode == ir.OpDefVar {
			defvars = append(defvars, n)
		}
	}
	p.emit.SpliceAfter(anchor, defvars)
}

func (p *Parser) parseReturn() {
	p.expect(token.RETURN)
	if !p.hasRetVar {
		p.semErrorf(cerr.OtherSemantic, "return outside a function body")
	}
	if !p.is(token.SEMICOLON) && !p.is(token.EOL) && !p.is(token.RBRACE) {
		p.parseExpr()
		p.emit.Emit(ir.OpPopS, p.retVar, nil, nil)
	}
	p.emit.Emit(ir.OpPushS, p.retVar, nil, nil)
	p.emit.Emit(ir.OpReturn, nil, nil, nil)
	p.endStatement()
}
