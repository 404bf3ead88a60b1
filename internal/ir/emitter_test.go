package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitAppendsAtTailWithoutCursor(t *testing.T) {
	e := NewEmitter()
	a := e.Emit(OpNoOp, nil, nil, nil)
	b := e.Emit(OpNoOp, nil, nil, nil)

	assert.Equal(t, []Opcode{OpNoOp, OpNoOp}, collect(e.List()))
	assert.Equal(t, b, e.Cursor())
	assert.Equal(t, a, b.Prev)
}

func TestEmitInsertsAfterCursor(t *testing.T) {
	e := NewEmitter()
	e.Emit(OpLabel, LabelOperand{Name: "start"}, nil, nil)
	mid := e.Emit(OpNoOp, nil, nil, nil)
	e.Emit(OpNoOp, nil, nil, nil)

	e.SetCursor(mid)
	inserted := e.Emit(OpComment, CommentText{Text: "x"}, nil, nil)

	assert.Equal(t, mid, inserted.Prev)
	assert.Equal(t, inserted, e.Cursor())
}

func TestNewTempResetsPerFunction(t *testing.T) {
	e := NewEmitter()
	require.Equal(t, "t0", e.NewTemp())
	require.Equal(t, "t1", e.NewTemp())
	e.ResetTemps()
	require.Equal(t, "t0", e.NewTemp())
}

func TestNewLabelIsMonotonicAndUnique(t *testing.T) {
	e := NewEmitter()
	a := e.NewLabel("while")
	b := e.NewLabel("while")
	assert.NotEqual(t, a, b)
	assert.Equal(t, b, e.CurrentLabel())
}

func TestSpliceAfterMovesNodesInOrder(t *testing.T) {
	e := NewEmitter()
	anchor := e.Emit(OpLabel, LabelOperand{Name: "loop"}, nil, nil)
	d1 := e.Emit(OpDefVar, Var{Frame: LocalFrame, Name: "a"}, nil, nil)
	e.Emit(OpNoOp, nil, nil, nil)
	d2 := e.Emit(OpDefVar, Var{Frame: LocalFrame, Name: "b"}, nil, nil)
	e.Emit(OpNoOp, nil, nil, nil)

	e.SpliceAfter(anchor, []*Instruction{d1, d2})

	var names []string
	e.List().Walk(func(n *Instruction) {
		if n.Opcode == OpDefVar {
			names = append(names, n.Result.(Var).Name)
		}
	})
	assert.Equal(t, []string{"a", "b"}, names)

	// Both DEFVARs must now sit immediately after anchor.
	assert.Equal(t, d1, anchor.Next)
	assert.Equal(t, d2, d1.Next)
}

func TestDefineGlobalEmitsDefvarAndMoveToNil(t *testing.T) {
	e := NewEmitter()
	e.DefineGlobal("counter")

	require.Len(t, e.List().GlobalDefs, 2)
	assert.Equal(t, OpDefVar, e.List().GlobalDefs[0].Opcode)
	assert.Equal(t, Var{Frame: GlobalFrame, Name: "counter"}, e.List().GlobalDefs[0].Result)
	assert.Equal(t, OpMove, e.List().GlobalDefs[1].Opcode)
	assert.Equal(t, ConstNil{}, e.List().GlobalDefs[1].Arg1)
}
