package irgen

import "github.com/cwbudde/ifj25c/internal/ir"

// Less and Greater lower `<` and `>`: numeric pairs (with the usual
// int/float promotion) and string/string pairs compare directly;
// anything else exits with runtime code 26.
func Less(e *ir.Emitter)    { comparison(e, ir.OpLtS) }
func Greater(e *ir.Emitter) { comparison(e, ir.OpGtS) }

// LessEq and GreaterEq lower `<=` and `>=` as the negation of the strict
// opposite comparison, avoiding a third stack opcode.
func LessEq(e *ir.Emitter) {
	Greater(e)
	e.Emit(ir.OpNotS, nil, nil, nil)
}

func GreaterEq(e *ir.Emitter) {
	Less(e)
	e.Emit(ir.OpNotS, nil, nil, nil)
}

func comparison(e *ir.Emitter, op ir.Opcode) {
	rhs, lhs := captureOperands(e)
	tlhs, trhs := captureTypes(e, lhs, rhs)

	mismatch := e.NewLabel("cmp")
	done := e.NewLabel("cmp")

	pushs(e, tlhs)
	pushs(e, trhs)
	jumpIfNeqS(e, mismatch)

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeBool})
	jumpIfEqS(e, mismatch) // bool has no ordering

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeNil})
	jumpIfEqS(e, mismatch) // nil has no ordering

	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(op, nil, nil, nil)
	jump(e, done)

	label(e, mismatch)
	promoteAndApply(e, lhs, rhs, tlhs, trhs, op)
	jump(e, done)

	label(e, done)
}

// Eq and Neq lower `==` and `!=`. Same-typed operands (after the usual
// int/float promotion) compare with EQS; a pairing that can never be
// equal (e.g. string vs bool) is statically known false rather than a
// runtime error, matching the language's dynamic-equality semantics.
func Eq(e *ir.Emitter) {
	rhs, lhs := captureOperands(e)
	tlhs, trhs := captureTypes(e, lhs, rhs)

	mismatch := e.NewLabel("eq")
	done := e.NewLabel("eq")

	pushs(e, tlhs)
	pushs(e, trhs)
	jumpIfNeqS(e, mismatch)

	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(ir.OpEqS, nil, nil, nil)
	jump(e, done)

	label(e, mismatch)
	falseOnMismatch(e, tlhs, trhs, lhs, rhs)
	jump(e, done)

	label(e, done)
}

func Neq(e *ir.Emitter) {
	Eq(e)
	e.Emit(ir.OpNotS, nil, nil, nil)
}

// falseOnMismatch resolves the one legal cross-type equality, int vs
// float, by promotion; any other pairing is simply false.
func falseOnMismatch(e *ir.Emitter, tlhs, trhs, lhs, rhs ir.Var) {
	numericMismatch := e.NewLabel("eqmismatch")
	isFalse := e.NewLabel("eqmismatch")
	promote := e.NewLabel("eqmismatch")
	done := e.NewLabel("eqmismatch")

	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeInt})
	jumpIfEqS(e, numericMismatch)
	pushs(e, tlhs)
	pushs(e, ir.ConstString{Value: typeFloat})
	jumpIfEqS(e, numericMismatch)

	label(e, isFalse)
	pushs(e, ir.ConstBool{Value: false})
	jump(e, done)

	label(e, numericMismatch)
	pushs(e, trhs)
	pushs(e, ir.ConstString{Value: typeInt})
	jumpIfEqS(e, promote)
	pushs(e, trhs)
	pushs(e, ir.ConstString{Value: typeFloat})
	jumpIfEqS(e, promote)
	jump(e, isFalse)

	label(e, promote)
	promoteAndApply(e, lhs, rhs, tlhs, trhs, ir.OpEqS)
	jump(e, done)

	label(e, done)
}
