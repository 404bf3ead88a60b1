package irgen

import "github.com/cwbudde/ifj25c/internal/ir"

// JumpIfFalse lowers the truthiness test shared by `if` and `while` (spec
// §4.6/§4.7): the already-pushed condition value is popped, and control
// jumps to target unless the value is the boolean `true`. A condition
// whose runtime type isn't bool exits with runtime code 26 — the
// language has no implicit truthy/falsy coercion for other types.
func JumpIfFalse(e *ir.Emitter, target string) {
	cond := tempVar(e)
	pops(e, cond)

	tcond := tempVar(e)
	pushs(e, cond)
	typeOf(e)
	pops(e, tcond)

	ok := e.NewLabel("cond")

	pushs(e, tcond)
	pushs(e, ir.ConstString{Value: typeBool})
	jumpIfEqS(e, ok)
	exitRuntime(e, 26)

	label(e, ok)
	pushs(e, cond)
	pushs(e, ir.ConstBool{Value: false})
	jumpIfEqS(e, target)
}
