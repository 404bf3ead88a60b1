package irgen

import "github.com/cwbudde/ifj25c/internal/ir"

const (
	typeInt    = "int"
	typeFloat  = "float"
	typeString = "string"
	typeBool   = "bool"
	typeNil    = "nil"
)

// tempVar allocates a fresh TF@ scratch variable and DEFVARs it.
func tempVar(e *ir.Emitter) ir.Var {
	v := ir.Var{Frame: ir.TempFrame, Name: e.NewTemp()}
	e.Emit(ir.OpDefVar, v, nil, nil)
	return v
}

func pushs(e *ir.Emitter, o ir.Operand) {
	e.Emit(ir.OpPushS, o, nil, nil)
}

func pops(e *ir.Emitter, v ir.Var) {
	e.Emit(ir.OpPopS, v, nil, nil)
}

func label(e *ir.Emitter, name string) {
	e.Emit(ir.OpLabel, ir.LabelOperand{Name: name}, nil, nil)
}

func jump(e *ir.Emitter, name string) {
	e.Emit(ir.OpJump, ir.LabelOperand{Name: name}, nil, nil)
}

func jumpIfEqS(e *ir.Emitter, name string) {
	e.Emit(ir.OpJumpIfEqS, ir.LabelOperand{Name: name}, nil, nil)
}

func jumpIfNeqS(e *ir.Emitter, name string) {
	e.Emit(ir.OpJumpIfNeqS, ir.LabelOperand{Name: name}, nil, nil)
}

// exitRuntime emits the EXIT sequence for a reserved runtime error code
// (25: wrong parameter type to a builtin, 26: incompatible operand types).
func exitRuntime(e *ir.Emitter, code int64) {
	e.Emit(ir.OpExit, ir.ConstInt{Value: code}, nil, nil)
}

// typeOf pops the stack top and pushes a string naming its runtime type,
// leaving the original value popped (callers that still need the value
// must have stashed it in a variable first).
func typeOf(e *ir.Emitter) {
	e.Emit(ir.OpTypeS, nil, nil, nil)
}
