// Package cerr carries compiler diagnostics and the exit-code taxonomy of
// spec §6/§7: every error the pipeline can raise is tagged with the exit
// code the CLI must eventually map it to.
package cerr

import "fmt"

// Code enumerates the process exit codes defined by spec §6.
type Code int

const (
	Success              Code = 0
	Lexical              Code = 1
	Syntax               Code = 2
	UndefinedFunction    Code = 3
	Redefinition         Code = 4
	WrongArgumentCount   Code = 5
	TypeIncompatibility  Code = 6
	OtherSemantic        Code = 10
	RuntimeParamType     Code = 25 // emitted into IR only, never returned here
	RuntimeTypeCompat    Code = 26 // emitted into IR only, never returned here
	Internal             Code = 99
)

// Position is the minimal location info attached to a diagnostic. It
// mirrors token.Position without importing the token package, so cerr stays
// a leaf dependency usable from every layer.
type Position struct {
	Line   int
	Column int
}

// Error is a single compiler diagnostic: which phase raised it, where, and
// why, plus the exit code the CLI should surface.
type Error struct {
	Code      Code
	Component string // "SCANNER", "PARSER", "SEMANTIC"
	Pos       Position
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %d:%d: %s", e.Component, e.Pos.Line, e.Pos.Column, e.Message)
}

// New builds an Error for the given phase/code/position.
func New(code Code, component string, pos Position, format string, args ...any) *Error {
	return &Error{
		Code:      code,
		Component: component,
		Pos:       pos,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Lex constructs a lexical-phase error (exit code 1).
func Lex(pos Position, format string, args ...any) *Error {
	return New(Lexical, "SCANNER", pos, format, args...)
}

// Syn constructs a syntax-phase error (exit code 2).
func Syn(pos Position, format string, args ...any) *Error {
	return New(Syntax, "PARSER", pos, format, args...)
}

// Sem constructs a semantic-phase error with an explicit code (3, 4, 5, 6, or 10).
func Sem(code Code, pos Position, format string, args ...any) *Error {
	return New(code, "SEMANTIC", pos, format, args...)
}

// InternalErr constructs an internal-invariant error (exit code 99).
func InternalErr(format string, args ...any) *Error {
	return New(Internal, "INTERNAL", Position{}, format, args...)
}
