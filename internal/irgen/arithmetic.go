package irgen

import "github.com/cwbudde/ifj25c/internal/ir"

// Add lowers `+` (spec §4.6): numeric operands are added, same-typed
// int/int or float/float pairs add directly, a lone int is promoted
// against its float partner, and a string/string pair concatenates
// instead. Any other pairing exits with runtime code 26.
//
// Precondition: lhs then rhs are already pushed on the data stack (rhs on
// top). Postcondition: exactly one result value is left on the stack.
func Add(e *ir.Emitter) {
	rhs, lhs := captureOperands(e)
	tlhs, trhs := captureTypes(e, lhs, rhs)

	mismatch := e.NewLabel("add")
	doConcat := e.NewLabel("add")
	done := e.NewLabel("add")

	pushs(e, tlhs)
	pushs(e, trhs)
	jumpIfNeqS(e, mismatch)

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeString})
	jumpIfEqS(e, doConcat)

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeBool})
	jumpIfEqS(e, mismatch) // bool/bool is not addable
	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeNil})
	jumpIfEqS(e, mismatch) // nil/nil is not addable

	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(ir.OpAddS, nil, nil, nil)
	jump(e, done)

	label(e, doConcat)
	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(ir.OpConcat, nil, nil, nil)
	jump(e, done)

	label(e, mismatch)
	promoteAndApply(e, lhs, rhs, tlhs, trhs, ir.OpAddS)
	jump(e, done)

	label(e, done)
}

// Sub, Mul and Div lower `-`, `*`, `/`: numeric-only, no string case.
func Sub(e *ir.Emitter) { arithNumeric(e, ir.OpSubS) }
func Mul(e *ir.Emitter) { arithNumeric(e, ir.OpMulS) }

// Div lowers `/`: the language's only division operator is float
// division (spec §4.6 drops integer division as a distinct operator), so
// both operands are always promoted to float before dividing, and a zero
// divisor exits with runtime code 26 alongside the other incompatible-
// operand cases since no dedicated division-by-zero code is defined.
func Div(e *ir.Emitter) {
	rhs, lhs := captureOperands(e)

	lf := tempVar(e)
	rf := tempVar(e)
	toFloat(e, lhs, lf)
	toFloat(e, rhs, rf)

	zeroOK := e.NewLabel("div")
	pushs(e, rf)
	pushs(e, ir.ConstFloat{Value: 0})
	jumpIfNeqS(e, zeroOK)
	exitRuntime(e, int64(26))
	label(e, zeroOK)

	pushs(e, lf)
	pushs(e, rf)
	e.Emit(ir.OpDivS, nil, nil, nil)
}

func arithNumeric(e *ir.Emitter, op ir.Opcode) {
	rhs, lhs := captureOperands(e)
	tlhs, trhs := captureTypes(e, lhs, rhs)

	mismatch := e.NewLabel("arith")
	done := e.NewLabel("arith")

	pushs(e, tlhs)
	pushs(e, trhs)
	jumpIfNeqS(e, mismatch)

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeString})
	jumpIfEqS(e, mismatch) // same-type strings are not numeric either
	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeBool})
	jumpIfEqS(e, mismatch) // nor are bools
	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeNil})
	jumpIfEqS(e, mismatch) // nor nils

	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(op, nil, nil, nil)
	jump(e, done)

	label(e, mismatch)
	promoteAndApply(e, lhs, rhs, tlhs, trhs, op)
	jump(e, done)

	label(e, done)
}

// captureOperands pops the two already-pushed operands into scratch
// variables, rhs first (it is on top), and returns (rhs, lhs).
func captureOperands(e *ir.Emitter) (rhs, lhs ir.Var) {
	rhs = tempVar(e)
	pops(e, rhs)
	lhs = tempVar(e)
	pops(e, lhs)
	return rhs, lhs
}

// captureTypes stashes the runtime type name of each operand into its own
// scratch variable, leaving lhs/rhs themselves untouched.
func captureTypes(e *ir.Emitter, lhs, rhs ir.Var) (tlhs, trhs ir.Var) {
	tlhs = tempVar(e)
	pushs(e, lhs)
	typeOf(e)
	pops(e, tlhs)

	trhs = tempVar(e)
	pushs(e, rhs)
	typeOf(e)
	pops(e, trhs)
	return tlhs, trhs
}

// promoteAndApply handles the one legal mismatched pairing, one int and
// one float: the int side is promoted to float, op runs on two floats,
// and anything else exits with runtime code 26.
func promoteAndApply(e *ir.Emitter, lhs, rhs, tlhs, trhs ir.Var, op ir.Opcode) {
	lhsIsInt := e.NewLabel("promote")
	lhsIsFloat := e.NewLabel("promote")
	typeErr := e.NewLabel("promote")
	done := e.NewLabel("promote")

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeInt})
	jumpIfEqS(e, lhsIsInt)

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeFloat})
	jumpIfEqS(e, lhsIsFloat)
	jump(e, typeErr)

	label(e, lhsIsInt)
	pushs(e, trhs)
	pushs(e, ir.ConstString{Value: typeFloat})
	jumpIfNeqS(e, typeErr)
	pushs(e, lhs)
	e.Emit(ir.OpInt2FloatS, nil, nil, nil)
	pushs(e, rhs)
	e.Emit(op, nil, nil, nil)
	jump(e, done)

	label(e, lhsIsFloat)
	pushs(e, trhs)
	pushs(e, ir.ConstString{Value: typeInt})
	jumpIfNeqS(e, typeErr)
	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(ir.OpInt2FloatS, nil, nil, nil)
	e.Emit(op, nil, nil, nil)
	jump(e, done)

	label(e, typeErr)
	exitRuntime(e, 26)

	label(e, done)
}

// toFloat pushes v and, if its runtime type is int, converts it, popping
// the (possibly converted) result into dst. Any type other than int or
// float exits with runtime code 26.
func toFloat(e *ir.Emitter, v, dst ir.Var) {
	isFloat := e.NewLabel("tofloat")
	isInt := e.NewLabel("tofloat")
	done := e.NewLabel("tofloat")

	pushs(e, v)
	typeOf(e)
	t := tempVar(e)
	pops(e, t)
	pushs(e, t)
	pushs(e, ir.ConstString{Value: typeFloat})
	jumpIfEqS(e, isFloat)
	pushs(e, t)
	pushs(e, ir.ConstString{Value: typeInt})
	jumpIfEqS(e, isInt)
	exitRuntime(e, 26)

	label(e, isInt)
	pushs(e, v)
	e.Emit(ir.OpInt2FloatS, nil, nil, nil)
	pops(e, dst)
	jump(e, done)

	label(e, isFloat)
	pushs(e, v)
	pops(e, dst)

	label(e, done)
}
