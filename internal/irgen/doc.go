// Package irgen is the IR lowering pattern library of spec §4.6: each
// exported function emits a fixed instruction template for one polymorphic
// operator or one `Ifj.*` builtin, consuming a known number of already-
// pushed data-stack operands and leaving exactly one result on the stack.
//
// Every stack-variant opcode in this package follows one convention: it
// pops its operand(s) off the data stack and pushes its result. TYPES pops
// one value and pushes a string naming its runtime type (`"int"`,
// `"float"`, `"string"`, `"bool"`, `"nil"`); INT2FLOATS/FLOAT2INTS convert
// in place; CONCAT pops two strings (top is the right operand) and pushes
// their concatenation; ADDS/SUBS/MULS/DIVS require same-typed numeric
// operands (callers promote first); JUMPIFEQS/JUMPIFNEQS pop two values,
// compare, and jump on (in)equality.
//
// Patterns never inspect static types, and the expression parser does no
// compile-time type narrowing either: every polymorphic operator always
// emits the full runtime dispatch below, even for two literals, and a
// mismatched pair exits with runtime code 26 (spec §6/§7).
package irgen
