package ir

// List is the doubly-linked IR instruction list of spec §4.4. It exposes
// its Head/Tail nodes and each Instruction's Prev/Next pointers directly,
// plus insertion and unlink primitives; the active cursor lives on the
// Emitter, which the §4.7 while-loop code-motion pass uses to splice nodes.
//
// A parallel GlobalDefs slice holds the `DEFVAR`/`MOVE ..., nil@nil` pairs
// for `__`-prefixed global variables, emitted by the printer ahead of the
// main list (spec §4.4, §4.9).
type List struct {
	Head, Tail *Instruction
	GlobalDefs []*Instruction
}

// NewList returns an empty instruction list.
func NewList() *List {
	return &List{}
}

// InsertFirst inserts n as the new head of the list.
func (l *List) InsertFirst(n *Instruction) {
	n.Prev = nil
	n.Next = l.Head
	if l.Head != nil {
		l.Head.Prev = n
	}
	l.Head = n
	if l.Tail == nil {
		l.Tail = n
	}
}

// InsertLast appends n as the new tail of the list.
func (l *List) InsertLast(n *Instruction) {
	n.Next = nil
	n.Prev = l.Tail
	if l.Tail != nil {
		l.Tail.Next = n
	}
	l.Tail = n
	if l.Head == nil {
		l.Head = n
	}
}

// InsertAfter inserts n immediately after ref. ref must already be linked
// into this list (or be nil, in which case InsertAfter behaves like
// InsertFirst).
func (l *List) InsertAfter(ref, n *Instruction) {
	if ref == nil {
		l.InsertFirst(n)
		return
	}
	n.Prev = ref
	n.Next = ref.Next
	if ref.Next != nil {
		ref.Next.Prev = n
	} else {
		l.Tail = n
	}
	ref.Next = n
}

// InsertBefore inserts n immediately before ref.
func (l *List) InsertBefore(ref, n *Instruction) {
	if ref == nil {
		l.InsertLast(n)
		return
	}
	n.Next = ref
	n.Prev = ref.Prev
	if ref.Prev != nil {
		ref.Prev.Next = n
	} else {
		l.Head = n
	}
	ref.Prev = n
}

// Unlink removes n from the list. n's own Prev/Next are left untouched so
// the caller can immediately re-splice it elsewhere (the §4.7 hoisting
// pass does exactly this).
func (l *List) Unlink(n *Instruction) {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		l.Head = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		l.Tail = n.Prev
	}
}

// Walk calls visit for every instruction from Head to Tail, in order.
func (l *List) Walk(visit func(*Instruction)) {
	for n := l.Head; n != nil; n = n.Next {
		visit(n)
	}
}
