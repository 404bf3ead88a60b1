package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(l *List) []Opcode {
	var out []Opcode
	l.Walk(func(n *Instruction) { out = append(out, n.Opcode) })
	return out
}

func TestInsertLastAndFirst(t *testing.T) {
	l := NewList()
	a := NewInstruction(OpLabel, LabelOperand{Name: "a"}, nil, nil)
	b := NewInstruction(OpLabel, LabelOperand{Name: "b"}, nil, nil)
	l.InsertLast(a)
	l.InsertFirst(b)

	assert.Equal(t, b, l.Head)
	assert.Equal(t, a, l.Tail)
	assert.Nil(t, b.Prev)
	assert.Equal(t, a, b.Next)
	assert.Equal(t, b, a.Prev)
	assert.Nil(t, a.Next)
}

func TestInsertAfterAndBefore(t *testing.T) {
	l := NewList()
	a := NewInstruction(OpNoOp, nil, nil, nil)
	c := NewInstruction(OpNoOp, nil, nil, nil)
	l.InsertLast(a)
	l.InsertLast(c)

	b := NewInstruction(OpNoOp, nil, nil, nil)
	l.InsertAfter(a, b)
	assert.Equal(t, []*Instruction{a, b, c}, walkPtrs(l))

	d := NewInstruction(OpNoOp, nil, nil, nil)
	l.InsertBefore(c, d)
	assert.Equal(t, []*Instruction{a, b, d, c}, walkPtrs(l))
}

func TestUnlinkAndResplice(t *testing.T) {
	l := NewList()
	a := NewInstruction(OpDefVar, Var{Frame: LocalFrame, Name: "x"}, nil, nil)
	b := NewInstruction(OpNoOp, nil, nil, nil)
	c := NewInstruction(OpNoOp, nil, nil, nil)
	l.InsertLast(a)
	l.InsertLast(b)
	l.InsertLast(c)

	l.Unlink(b)
	assert.Equal(t, []*Instruction{a, c}, walkPtrs(l))

	l.InsertAfter(c, b)
	assert.Equal(t, []*Instruction{a, c, b}, walkPtrs(l))
	assert.Equal(t, b, l.Tail)
}

func walkPtrs(l *List) []*Instruction {
	var out []*Instruction
	l.Walk(func(n *Instruction) { out = append(out, n) })
	return out
}
