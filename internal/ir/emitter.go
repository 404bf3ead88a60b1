package ir

import "fmt"

// Emitter drives a List: it owns the active cursor plus the temporary- and
// label-name generators of spec §4.4. Each Parser constructs and holds its
// own Emitter (spec §9: "avoid module-global mutable state"), rather than
// sharing one behind a package-level singleton.
type Emitter struct {
	list *List

	active *Instruction // insertion cursor; nil means "append at tail"

	tempCounter  int // resets at each function-body boundary
	labelCounter int // monotonic for the whole compilation
	lastLabel    string
}

// NewEmitter creates an Emitter over a fresh, empty List.
func NewEmitter() *Emitter {
	return &Emitter{list: NewList()}
}

// List exposes the underlying instruction list (e.g. for the printer).
func (e *Emitter) List() *List { return e.list }

// Emit appends a new instruction: if the cursor is active, it is inserted
// immediately after the cursor and the cursor advances to the new node;
// otherwise the instruction is appended at the tail and becomes the new
// cursor (spec §4.4).
func (e *Emitter) Emit(op Opcode, result, arg1, arg2 Operand) *Instruction {
	n := NewInstruction(op, result, arg1, arg2)
	if e.active != nil {
		e.list.InsertAfter(e.active, n)
	} else {
		e.list.InsertLast(n)
	}
	e.active = n
	return n
}

// EmitComment emits a COMMENT/NO_OP pseudo-instruction carrying free text,
// rendered by the printer after the comment sigil.
func (e *Emitter) EmitComment(text string) *Instruction {
	return e.Emit(OpComment, CommentText{Text: text}, nil, nil)
}

// EmitBlank emits a NO_OP instruction, rendered by the printer as a blank
// line for visual separation (spec §4.9).
func (e *Emitter) EmitBlank() *Instruction {
	return e.Emit(OpNoOp, nil, nil, nil)
}

// Cursor returns the current active instruction (nil if detached).
func (e *Emitter) Cursor() *Instruction { return e.active }

// SetCursor repositions the active cursor: the next Emit inserts its
// instruction just after n.
func (e *Emitter) SetCursor(n *Instruction) { e.active = n }

// ResetTemps resets the temporary-name counter; called at each function
// body boundary so `t0, t1, ...` restart per function (spec §4.4).
func (e *Emitter) ResetTemps() { e.tempCounter = 0 }

// NewTemp allocates a fresh temporary variable name.
func (e *Emitter) NewTemp() string {
	name := fmt.Sprintf("t%d", e.tempCounter)
	e.tempCounter++
	return name
}

// NewLabel allocates a fresh, globally-unique label name. prefix is
// folded into the name purely for readability in the printed IR (e.g.
// "%while_3"); an empty prefix falls back to a bare counter.
func (e *Emitter) NewLabel(prefix string) string {
	n := e.labelCounter
	e.labelCounter++
	name := fmt.Sprintf("%%L%d", n)
	if prefix != "" {
		name = fmt.Sprintf("%%%s_%d", prefix, n)
	}
	e.lastLabel = name
	return name
}

// CurrentLabel returns the most recently allocated label without
// incrementing the counter (spec §4.4's "helper yields the current label").
func (e *Emitter) CurrentLabel() string {
	return e.lastLabel
}

// DefineGlobal records a DEFVAR (plus its `MOVE ..., nil@nil` initializer)
// for a `__`-prefixed global variable in the side list the printer emits
// ahead of the main program (spec §4.4).
func (e *Emitter) DefineGlobal(name string) {
	e.list.GlobalDefs = append(e.list.GlobalDefs,
		NewInstruction(OpDefVar, Var{Frame: GlobalFrame, Name: name}, nil, nil),
		NewInstruction(OpMove, Var{Frame: GlobalFrame, Name: name}, ConstNil{}, nil),
	)
}

// SpliceAfter unlinks each of nodes from their current position and
// re-inserts them, in order, immediately after anchor. Used by the §4.7
// while-loop DEFVAR hoist: every DEFVAR found inside the loop body is
// unlinked and re-inserted just after the loop-entry anchor.
func (e *Emitter) SpliceAfter(anchor *Instruction, nodes []*Instruction) {
	insertPoint := anchor
	for _, n := range nodes {
		e.list.Unlink(n)
		e.list.InsertAfter(insertPoint, n)
		insertPoint = n
	}
}
