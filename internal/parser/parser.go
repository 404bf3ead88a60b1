// Package parser implements the IFJ25 recursive-descent statement and
// declaration parser plus a precedence-climbing expression parser (spec
// §4.5/§4.7), driving an ir.Emitter directly as it recognizes each
// construct rather than building an intermediate AST — the same
// single-pass shape the scanner and symbol table are built for.
package parser

import (
	"github.com/cwbudde/ifj25c/internal/cerr"
	"github.com/cwbudde/ifj25c/internal/ir"
	"github.com/cwbudde/ifj25c/internal/lexer"
	"github.com/cwbudde/ifj25c/internal/scope"
	"github.com/cwbudde/ifj25c/internal/symtab"
	"github.com/cwbudde/ifj25c/internal/token"
)

// loopFrame tracks the bookkeeping needed for one enclosing while loop: the
// anchor instruction DEFVARs get hoisted after (spec §4.7), and the DEFVAR
// instructions seen so far inside it.
type loopFrame struct {
	anchor  *ir.Instruction
	defvars []*ir.Instruction
}

// Parser consumes a token stream from a lexer.Scanner and emits IR
// directly through an ir.Emitter, resolving names against a scope.Stack
// as it goes.
type Parser struct {
	lex   *lexer.Scanner
	emit  *ir.Emitter
	scope *scope.Stack
	errs  []*cerr.Error

	cur  token.Token
	peek token.Token

	retVar    ir.Var
	hasRetVar bool

	loops []*loopFrame
}

// New creates a Parser over src, seeded with the builtin symbol table
// (spec §4.2's `Ifj.*` entries).
func New(src string, trace bool) *Parser {
	var opts []lexer.Option
	if trace {
		opts = append(opts, lexer.WithTrace(true))
	}
	p := &Parser{
		lex:   lexer.New(src, opts...),
		emit:  ir.NewEmitter(),
		scope: scope.New(),
	}
	registerBuiltins(p.scope.Global())
	p.advance()
	p.advance()
	return p
}

// Result is everything the driver needs after a parse: the emitted list
// plus any accumulated diagnostics.
type Result struct {
	Emitter *ir.Emitter
	Errors  []*cerr.Error
}

// Parse runs the whole program grammar (spec §4.7's program/prolog/
// classdef/func_list) and returns the emitted IR plus diagnostics.
func (p *Parser) Parse() Result {
	p.parseProlog()
	p.parseClass()
	p.checkUndefinedFunctions()
	return Result{Emitter: p.emit, Errors: p.allErrors()}
}

func (p *Parser) allErrors() []*cerr.Error {
	all := append([]*cerr.Error{}, p.lex.Errors()...)
	all = append(all, p.errs...)
	return all
}

func (p *Parser) checkUndefinedFunctions() {
	p.scope.Global().Walk(func(key string, sym *symtab.Symbol) {
		if sym.Kind == symtab.KindFunc && !sym.Defined && !sym.IsBuiltin {
			p.errs = append(p.errs, cerr.Sem(cerr.UndefinedFunction, cerr.Position{},
				"function %q is called but never defined", key))
		}
	})
}

// --- token cursor -----------------------------------------------------

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) pos() cerr.Position {
	return cerr.Position{Line: p.cur.Pos.Line, Column: p.cur.Pos.Column}
}

func (p *Parser) is(tt token.Type) bool { return p.cur.Type == tt }

func (p *Parser) peekIs(tt token.Type) bool { return p.peek.Type == tt }

// skipEOLs consumes any run of EOL tokens; EOL only terminates a
// statement, it never nests (spec §4.1).
func (p *Parser) skipEOLs() {
	for p.is(token.EOL) {
		p.advance()
	}
}

func (p *Parser) expect(tt token.Type) token.Token {
	if !p.is(tt) {
		p.errorf("expected %s, got %s %q", tt, p.cur.Type, p.cur.Literal)
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) errorf(format string, args ...any) {
	p.errs = append(p.errs, cerr.Syn(p.pos(), format, args...))
}

func (p *Parser) semErrorf(code cerr.Code, format string, args ...any) {
	p.errs = append(p.errs, cerr.Sem(code, p.pos(), format, args...))
}
