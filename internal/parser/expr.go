package parser

import (
	"strconv"

	"github.com/cwbudde/ifj25c/internal/cerr"
	"github.com/cwbudde/ifj25c/internal/ir"
	"github.com/cwbudde/ifj25c/internal/irgen"
	"github.com/cwbudde/ifj25c/internal/symtab"
	"github.com/cwbudde/ifj25c/internal/token"
)

// precedence gives each binary operator its climbing level (spec §4.5);
// ties bind left-to-right, which is the only associativity IFJ25's
// operator set needs (none of `+ - * / < <= > >= == != is` are
// right-associative).
func precedence(tt token.Type) int {
	switch tt {
	case token.IS:
		return 1
	case token.EQ, token.NEQ:
		return 2
	case token.LT, token.LE, token.GT, token.GE:
		return 3
	case token.PLUS, token.MINUS:
		return 4
	case token.ASTERISK, token.SLASH:
		return 5
	default:
		return 0
	}
}

// parseExpr parses one expression by precedence climbing and emits IR
// that leaves exactly one value on the data stack.
func (p *Parser) parseExpr() {
	p.parseBinary(1)
}

func (p *Parser) parseBinary(minPrec int) {
	p.parseUnary()
	for {
		prec := precedence(p.cur.Type)
		if prec < minPrec || prec == 0 {
			return
		}
		op := p.cur.Type
		p.advance()

		if op == token.IS {
			typ := p.parseTypeName()
			p.emit.Emit(ir.OpTypeS, nil, nil, nil)
			t := ir.Var{Frame: ir.TempFrame, Name: p.emit.NewTemp()}
			p.emit.Emit(ir.OpPopS, t, nil, nil)
			// TYPES yields runtime names ("int", "float", "string", "nil");
			// Num matches either numeric one.
			names := map[string][]string{"Num": {"int", "float"}, "String": {"string"}, "Null": {"nil"}}[typ]
			if names == nil {
				names = []string{typ}
			}
			for i, rt := range names {
				p.emit.Emit(ir.OpPushS, t, nil, nil)
				p.emit.Emit(ir.OpPushS, ir.ConstString{Value: rt}, nil, nil)
				p.emit.Emit(ir.OpEqS, nil, nil, nil)
				if i > 0 {
					p.emit.Emit(ir.OpOrS, nil, nil, nil)
				}
			}
			continue
		}

		p.parseBinary(prec + 1)
		applyOperator(p, op)
	}
}

func applyOperator(p *Parser, op token.Type) {
	switch op {
	case token.PLUS:
		irgen.Add(p.emit)
	case token.MINUS:
		irgen.Sub(p.emit)
	case token.ASTERISK:
		irgen.Mul(p.emit)
	case token.SLASH:
		irgen.Div(p.emit)
	case token.LT:
		irgen.Less(p.emit)
	case token.LE:
		irgen.LessEq(p.emit)
	case token.GT:
		irgen.Greater(p.emit)
	case token.GE:
		irgen.GreaterEq(p.emit)
	case token.EQ:
		irgen.Eq(p.emit)
	case token.NEQ:
		irgen.Neq(p.emit)
	}
}

// parseUnary handles the prefix operators `-` and `!`.
func (p *Parser) parseUnary() {
	switch p.cur.Type {
	case token.MINUS:
		p.advance()
		p.parseUnary()
		p.emit.Emit(ir.OpPushS, ir.ConstInt{Value: 0}, nil, nil)
		swapTopTwo(p)
		irgen.Sub(p.emit)
	case token.NOT:
		p.advance()
		p.parseUnary()
		p.emit.Emit(ir.OpNotS, nil, nil, nil)
	default:
		p.parsePrimary()
	}
}

// swapTopTwo exchanges the top two data-stack values via scratch
// variables; unary minus needs `0 - x`, but x was pushed before the 0.
func swapTopTwo(p *Parser) {
	b := ir.Var{Frame: ir.TempFrame, Name: p.emit.NewTemp()}
	a := ir.Var{Frame: ir.TempFrame, Name: p.emit.NewTemp()}
	p.emit.Emit(ir.OpPopS, b, nil, nil)
	p.emit.Emit(ir.OpPopS, a, nil, nil)
	p.emit.Emit(ir.OpPushS, b, nil, nil)
	p.emit.Emit(ir.OpPushS, a, nil, nil)
}

func (p *Parser) parsePrimary() {
	switch p.cur.Type {
	case token.INT:
		p.parseIntLiteral()
	case token.FLOAT:
		p.parseFloatLiteral()
	case token.STRING:
		p.emit.Emit(ir.OpPushS, ir.ConstString{Value: p.cur.Literal}, nil, nil)
		p.advance()
	case token.NULL:
		p.emit.Emit(ir.OpPushS, ir.ConstNil{}, nil, nil)
		p.advance()
	case token.LPAREN:
		p.advance()
		p.parseExpr()
		p.expect(token.RPAREN)
	case token.IFJ:
		p.parseBuiltinCall()
	case token.GLOBAL_IDENT:
		name := p.cur.Literal
		p.advance()
		p.emit.Emit(ir.OpPushS, ir.Var{Frame: ir.GlobalFrame, Name: name}, nil, nil)
	case token.IDENT:
		p.parseIdentPrimary()
	default:
		p.errorf("unexpected token %q in expression", p.cur.Literal)
		p.advance()
	}
}

func (p *Parser) parseIntLiteral() {
	lit := p.cur.Literal
	base := 10
	if len(lit) > 1 && lit[0] == '0' && (lit[1] == 'x' || lit[1] == 'X') {
		base = 16
		lit = lit[2:]
	}
	v, err := strconv.ParseInt(lit, base, 64)
	if err != nil {
		p.errorf("malformed integer literal %q", p.cur.Literal)
	}
	p.emit.Emit(ir.OpPushS, ir.ConstInt{Value: v}, nil, nil)
	p.advance()
}

func (p *Parser) parseFloatLiteral() {
	v, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.errorf("malformed float literal %q", p.cur.Literal)
	}
	p.emit.Emit(ir.OpPushS, ir.ConstFloat{Value: v}, nil, nil)
	p.advance()
}

// parseIdentPrimary handles a bare variable read, a user function call
// `name(...)`, or a getter read (spec §4.8: reading a name with no plain
// variable in scope but a getter registered falls back to calling it).
func (p *Parser) parseIdentPrimary() {
	name := p.cur.Literal
	pos := p.pos()
	p.advance()

	if p.is(token.LPAREN) {
		p.parseUserCall(name, pos)
		return
	}

	if sym, ok := p.scope.Resolve(symtab.VarKey(name)); ok {
		p.emit.Emit(ir.OpPushS, ir.Var{Frame: ir.LocalFrame, Name: sym.UniqueName}, nil, nil)
		return
	}
	if sym, ok := p.scope.Global().Find(symtab.GetterKey(name)); ok {
		result := p.emitCall(sym.Label, 0)
		p.emit.Emit(ir.OpPushS, result, nil, nil)
		return
	}
	p.errsSem(pos, cerr.OtherSemantic, "undefined variable %q", name)
	p.emit.Emit(ir.OpPushS, ir.ConstNil{}, nil, nil)
}

func (p *Parser) errsSem(pos cerr.Position, code cerr.Code, format string, args ...any) {
	p.errs = append(p.errs, cerr.Sem(code, pos, format, args...))
}

// parseUserCall handles `name(args)`, resolving against any arity of
// name and registering an undefined forward reference when none exists
// yet (spec §4.2: resolved at end-of-parse, not at the call site).
func (p *Parser) parseUserCall(name string, pos cerr.Position) {
	argc := p.parseArgExprList()

	key := symtab.FuncKey(name, argc)
	sym, ok := p.scope.Global().Find(key)
	if !ok {
		if existing, found := p.scope.Global().FindFunction(name); found {
			// name is already known at a different arity: this call is
			// conclusively wrong, not merely unresolved, so it must not
			// also register an arity-mismatched placeholder that
			// checkUndefinedFunctions would flag a second time.
			p.errsSem(pos, cerr.WrongArgumentCount,
				"function %q called with %d argument(s), expected %d", name, argc, existing.Arity)
			sym = existing
		} else {
			sym = &symtab.Symbol{Kind: symtab.KindFunc, Arity: argc, Defined: false, Label: "func_" + sanitizeLabel(key)}
			p.scope.Global().Insert(key, sym)
		}
	}

	result := p.emitCall(sym.Label, argc)
	p.emit.Emit(ir.OpPushS, result, nil, nil)
}

// parseBuiltinCall handles `Ifj.name(args)`.
func (p *Parser) parseBuiltinCall() {
	pos := p.pos()
	p.expect(token.IFJ)
	p.expect(token.DOT)
	name := p.expect(token.IDENT).Literal

	spec, ok := builtinTable[name]
	if !ok {
		p.errsSem(pos, cerr.UndefinedFunction, "Ifj.%s is not a known builtin", name)
	}

	p.expect(token.LPAREN)
	var argc int
	for !p.is(token.RPAREN) && !p.is(token.EOF) {
		p.parseExpr()
		argc++
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)

	if ok && spec.arity >= 0 && argc != spec.arity {
		p.errsSem(pos, cerr.WrongArgumentCount, "Ifj.%s called with %d argument(s), expected %d", name, argc, spec.arity)
	}

	lowerBuiltin(p, name, argc)
}

// lowerBuiltin dispatches to the matching irgen pattern; the arguments
// are already on the data stack, leftmost deepest, in source order.
func lowerBuiltin(p *Parser, name string, argc int) {
	e := p.emit
	switch name {
	case "write":
		irgen.Write(e, argc)
	case "read_str":
		irgen.ReadStr(e)
	case "read_num":
		irgen.ReadNum(e)
	case "strcmp":
		irgen.Strcmp(e)
	case "length":
		irgen.Length(e)
	case "substring":
		irgen.Substring(e)
	case "ord":
		irgen.Ord(e)
	case "chr":
		irgen.Chr(e)
	case "floor":
		irgen.Floor(e)
	case "str":
		irgen.Str(e)
	default:
		e.Emit(ir.OpPushS, ir.ConstNil{}, nil, nil)
	}
}

// parseArgExprList parses `(expr, expr, ...)`, leaving each argument's
// value pushed on the data stack in source order, and returns the count.
func (p *Parser) parseArgExprList() int {
	p.expect(token.LPAREN)
	var argc int
	for !p.is(token.RPAREN) && !p.is(token.EOF) {
		p.parseExpr()
		argc++
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return argc
}

// emitCall wraps a resolved-label call: CREATEFRAME, one POPS per
// already-pushed argument (deepest first matches param0), PUSHFRAME,
// CALL, POPFRAME, then POPS the callee's pushed return value into a
// fresh scratch temp.
func (p *Parser) emitCall(label string, argc int) ir.Var {
	p.emit.Emit(ir.OpCreateFrame, nil, nil, nil)
	for i := 0; i < argc; i++ {
		p.emit.Emit(ir.OpPopS, ir.Var{Frame: ir.TempFrame, Name: paramSlotName(argc - 1 - i)}, nil, nil)
	}
	p.emit.Emit(ir.OpPushFrame, nil, nil, nil)
	p.emit.Emit(ir.OpCall, ir.LabelOperand{Name: label}, nil, nil)
	p.emit.Emit(ir.OpPopFrame, nil, nil, nil)
	result := ir.Var{Frame: ir.TempFrame, Name: p.emit.NewTemp()}
	p.emit.Emit(ir.OpPopS, result, nil, nil)
	return result
}

// emitCallTo is emitCall for a single argument already on the stack
// (spec §4.8's setter-call desugar): the value to set is on top, there
// is nothing left to parse. Its result is discarded by the caller.
func (p *Parser) emitCallTo(label string, argc int) {
	result := p.emitCall(label, argc)
	p.emit.Emit(ir.OpPushS, result, nil, nil)
}

func irgenJumpIfFalse(p *Parser, target string) { irgen.JumpIfFalse(p.emit, target) }
