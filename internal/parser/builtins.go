package parser

import "github.com/cwbudde/ifj25c/internal/symtab"

// builtinSpec describes one `Ifj.*` builtin's call shape for arity and
// argument-count checking at call sites (spec §4.2/§4.6).
type builtinSpec struct {
	arity      int
	returnType string
}

var builtinTable = map[string]builtinSpec{
	"write":     {arity: -1, returnType: "undefined"}, // variadic
	"read_str":  {arity: 0, returnType: "undefined"},
	"read_num":  {arity: 0, returnType: "undefined"},
	"strcmp":    {arity: 2, returnType: "Num"},
	"length":    {arity: 1, returnType: "Num"},
	"substring": {arity: 3, returnType: "undefined"},
	"ord":       {arity: 2, returnType: "Num"},
	"chr":       {arity: 1, returnType: "String"},
	"floor":     {arity: 1, returnType: "Num"},
	"str":       {arity: 1, returnType: "String"},
}

// registerBuiltins seeds the global scope with every `Ifj.*` entry so
// calls resolve exactly like user functions (spec §4.2: "builtins share
// the function symbol shape, keyed by the Ifj.name mangled form").
func registerBuiltins(global *symtab.Table) {
	for name, spec := range builtinTable {
		global.Insert(symtab.BuiltinKey(name), &symtab.Symbol{
			Kind:       symtab.KindFunc,
			ReturnType: spec.returnType,
			Arity:      spec.arity,
			Defined:    true,
			IsBuiltin:  true,
		})
	}
}
