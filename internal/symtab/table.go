package symtab

import "strings"

// Table is a single lexical scope's symbol table (spec §4.2).
type Table struct {
	root *node
}

// New creates an empty Table.
func New() *Table {
	return &Table{}
}

// Insert adds key/sym to the table. It returns true if the key was freshly
// inserted, false if key already existed (the existing descriptor is left
// untouched — callers that need to upgrade a forward declaration should
// mutate the descriptor returned by Find instead).
func (t *Table) Insert(key string, sym *Symbol) bool {
	var inserted bool
	t.root, inserted = insert(t.root, key, sym)
	return inserted
}

// Find looks up key in this table only (no outward walk — that's the
// scope stack's job). The returned *Symbol is the live descriptor: callers
// may mutate it in place, e.g. to flip Defined from false to true when a
// forward-referenced function's body is parsed.
func (t *Table) Find(key string) (*Symbol, bool) {
	n := find(t.root, key)
	if n == nil {
		return nil, false
	}
	return n.sym, true
}

// FindFunction reports whether any user function named bareName (at any
// arity) exists in this table, ignoring the `@N` suffix. This lets the
// parser distinguish "undefined function" from "wrong argument count" at
// a call site (spec §4.2).
func (t *Table) FindFunction(bareName string) (*Symbol, bool) {
	prefix := bareName + "@"
	var found *Symbol
	inorder(t.root, func(key string, sym *Symbol) {
		if found != nil {
			return
		}
		if sym.Kind == KindFunc && strings.HasPrefix(key, prefix) && !strings.Contains(key, ":") {
			found = sym
		}
	})
	return found, found != nil
}

// Walk performs an in-order traversal of every entry in the table, used at
// end-of-parse to find any SYM_FUNC left with Defined == false.
func (t *Table) Walk(visit func(key string, sym *Symbol)) {
	inorder(t.root, visit)
}
