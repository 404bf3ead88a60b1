package ir

// Instruction is a single four-field IR record (spec §3): opcode plus up to
// three optional operands. Instructions live in a doubly-linked list; Prev
// and Next are nil at the respective ends.
type Instruction struct {
	Opcode Opcode
	Result Operand
	Arg1   Operand
	Arg2   Operand

	Prev, Next *Instruction
}

// NewInstruction constructs a detached instruction node (not yet linked
// into any list).
func NewInstruction(op Opcode, result, arg1, arg2 Operand) *Instruction {
	return &Instruction{Opcode: op, Result: result, Arg1: arg1, Arg2: arg2}
}
