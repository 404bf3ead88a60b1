// Package scope implements the lexical scope stack of spec §4.3: a
// last-in-first-out stack of symtab.Table handles, with the bottom table
// always holding the global scope (builtins plus `__`-prefixed globals).
package scope

import "github.com/cwbudde/ifj25c/internal/symtab"

// Stack is the scope stack. The zero value is not usable; call New.
type Stack struct {
	tables []*symtab.Table
}

// New creates a Stack seeded with a single global scope.
func New() *Stack {
	return &Stack{tables: []*symtab.Table{symtab.New()}}
}

// Global returns the bottom (global) table.
func (s *Stack) Global() *symtab.Table {
	return s.tables[0]
}

// Top returns the innermost scope's table.
func (s *Stack) Top() *symtab.Table {
	return s.tables[len(s.tables)-1]
}

// Push opens a new nested scope.
func (s *Stack) Push() *symtab.Table {
	t := symtab.New()
	s.tables = append(s.tables, t)
	return t
}

// Pop closes the innermost scope and discards its table.
func (s *Stack) Pop() {
	s.tables = s.tables[:len(s.tables)-1]
}

// Depth reports how many scopes are currently open, global scope included.
func (s *Stack) Depth() int {
	return len(s.tables)
}

// Resolve walks outward from the innermost scope to the global scope,
// returning the first match. This is the lookup style used for ordinary
// variable name resolution inside a function body; function calls look up
// the global table directly.
func (s *Stack) Resolve(key string) (*symtab.Symbol, bool) {
	for i := len(s.tables) - 1; i >= 0; i-- {
		if sym, ok := s.tables[i].Find(key); ok {
			return sym, true
		}
	}
	return nil, false
}

// ResolveFunction walks outward looking for any arity of a user function
// named bareName, ignoring the current scope's ordinary variables.
func (s *Stack) ResolveFunction(bareName string) (*symtab.Symbol, bool) {
	for i := len(s.tables) - 1; i >= 0; i-- {
		if sym, ok := s.tables[i].FindFunction(bareName); ok {
			return sym, true
		}
	}
	return nil, false
}

// DeclaredInTop reports whether key is already defined in the innermost
// scope only (used to detect illegal re-declaration within one scope).
func (s *Stack) DeclaredInTop(key string) bool {
	_, ok := s.Top().Find(key)
	return ok
}
