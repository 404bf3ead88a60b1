package irgen

import "github.com/cwbudde/ifj25c/internal/ir"

// Write lowers `Ifj.write(...)`: each of the n already-pushed arguments
// (pushed left to right, so the first argument is deepest) is popped and
// written in argument order, leftmost first. Every expression in this IR
// leaves exactly one stack value, Ifj.write included, so it finishes by
// pushing `nil@nil` as its (discarded) result.
func Write(e *ir.Emitter, n int) {
	args := make([]ir.Var, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = tempVar(e)
		pops(e, args[i])
	}
	for _, a := range args {
		pushs(e, a)
		e.Emit(ir.OpWrite, nil, nil, nil)
	}
	pushs(e, ir.ConstNil{})
}

// ReadStr lowers `Ifj.read_str()`: reads a line of input and pushes it as
// a string, or `nil@nil` on EOF/failure (spec §4.6).
func ReadStr(e *ir.Emitter) {
	e.Emit(ir.OpRead, ir.TypeName{Name: typeString}, nil, nil)
}

// ReadNum lowers `Ifj.read_num()` to a single `READ float`, pushing the
// value read, or `nil@nil` on EOF/failure. No conversion follows: an
// integral value is left as a float, not turned into an int.
func ReadNum(e *ir.Emitter) {
	e.Emit(ir.OpRead, ir.TypeName{Name: typeFloat}, nil, nil)
}

// Strcmp lowers `Ifj.strcmp(a, b)`: pushes -1, 0, or 1 according to
// lexicographic ordering of the two already-pushed string arguments.
func Strcmp(e *ir.Emitter) {
	rhs, lhs := captureOperands(e)

	eqLbl := e.NewLabel("strcmp")
	ltLbl := e.NewLabel("strcmp")
	done := e.NewLabel("strcmp")

	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(ir.OpEqS, nil, nil, nil)
	teq := tempVar(e)
	pops(e, teq)
	pushs(e, teq)
	pushs(e, ir.ConstBool{Value: true})
	jumpIfEqS(e, eqLbl)

	pushs(e, lhs)
	pushs(e, rhs)
	e.Emit(ir.OpLtS, nil, nil, nil)
	tlt := tempVar(e)
	pops(e, tlt)
	pushs(e, tlt)
	pushs(e, ir.ConstBool{Value: true})
	jumpIfEqS(e, ltLbl)

	pushs(e, ir.ConstInt{Value: 1})
	jump(e, done)

	label(e, ltLbl)
	pushs(e, ir.ConstInt{Value: -1})
	jump(e, done)

	label(e, eqLbl)
	pushs(e, ir.ConstInt{Value: 0})

	label(e, done)
}

// Length lowers `Ifj.length(s)`: pushes the byte length of the
// already-pushed string argument.
func Length(e *ir.Emitter) {
	e.Emit(ir.OpStrLen, nil, nil, nil)
}

// Ord lowers `Ifj.ord(s, i)` to a single STRI2INTS, which pushes the
// ordinal value of the byte at index i in s. Arguments are already pushed
// s then i (i on top). No range check is emitted: an out-of-range i is
// passed to STRI2INTS as is and is not turned into 0.
func Ord(e *ir.Emitter) {
	e.Emit(ir.OpStrI2IntS, nil, nil, nil)
}

// Chr lowers `Ifj.chr(i)` to a single INT2CHARS, which pushes the
// one-byte string for code point i. No range check is emitted.
func Chr(e *ir.Emitter) {
	e.Emit(ir.OpInt2CharS, nil, nil, nil)
}

// Floor lowers `Ifj.floor(f)`: truncates the already-pushed float
// argument toward zero and pushes the resulting int.
func Floor(e *ir.Emitter) {
	e.Emit(ir.OpFloat2IntS, nil, nil, nil)
}

// Str lowers `Ifj.str(x)`: stringifies the already-pushed numeric
// argument, dispatching on its runtime type; a string argument passes
// through unchanged and a nil argument becomes the string "null".
func Str(e *ir.Emitter) {
	v := tempVar(e)
	pops(e, v)

	tv := tempVar(e)
	pushs(e, v)
	typeOf(e)
	pops(e, tv)

	isInt := e.NewLabel("str")
	isFloat := e.NewLabel("str")
	isNil := e.NewLabel("str")
	done := e.NewLabel("str")

	pushs(e, tv)
	pushs(e, ir.ConstString{Value: typeInt})
	jumpIfEqS(e, isInt)

	pushs(e, tv)
	pushs(e, ir.ConstString{Value: typeFloat})
	jumpIfEqS(e, isFloat)

	pushs(e, tv)
	pushs(e, ir.ConstString{Value: typeNil})
	jumpIfEqS(e, isNil)

	pushs(e, v) // already a string
	jump(e, done)

	label(e, isNil)
	pushs(e, ir.ConstString{Value: "null"})
	jump(e, done)

	label(e, isInt)
	pushs(e, v)
	e.Emit(ir.OpInt2StrS, nil, nil, nil)
	jump(e, done)

	label(e, isFloat)
	pushs(e, v)
	e.Emit(ir.OpFloat2StrS, nil, nil, nil)

	label(e, done)
}

// Substring lowers `Ifj.substring(s, i, j)`: pushes the substring
// s[i:j), or `nil@nil` if the range is invalid (i<0, j>len(s), or i>j).
// Arguments are already pushed s, i, j (j on top). Built as an explicit
// character-accumulation loop since the IR has no native slice opcode.
func Substring(e *ir.Emitter) {
	j := tempVar(e)
	pops(e, j)
	i := tempVar(e)
	pops(e, i)
	s := tempVar(e)
	pops(e, s)

	result := tempVar(e)
	idx := tempVar(e)
	slen := tempVar(e)

	invalid := e.NewLabel("substr")
	loop := e.NewLabel("substr")
	loopEnd := e.NewLabel("substr")
	done := e.NewLabel("substr")

	pushs(e, s)
	e.Emit(ir.OpStrLen, nil, nil, nil)
	pops(e, slen)

	pushs(e, i)
	pushs(e, ir.ConstInt{Value: 0})
	e.Emit(ir.OpLtS, nil, nil, nil)
	tb := tempVar(e)
	pops(e, tb)
	pushs(e, tb)
	pushs(e, ir.ConstBool{Value: true})
	jumpIfEqS(e, invalid)

	pushs(e, j)
	pushs(e, slen)
	e.Emit(ir.OpGtS, nil, nil, nil)
	pops(e, tb)
	pushs(e, tb)
	pushs(e, ir.ConstBool{Value: true})
	jumpIfEqS(e, invalid)

	pushs(e, i)
	pushs(e, j)
	e.Emit(ir.OpGtS, nil, nil, nil)
	pops(e, tb)
	pushs(e, tb)
	pushs(e, ir.ConstBool{Value: true})
	jumpIfEqS(e, invalid)

	e.Emit(ir.OpMove, result, ir.ConstString{Value: ""}, nil)
	e.Emit(ir.OpMove, idx, i, nil)

	label(e, loop)
	pushs(e, idx)
	pushs(e, j)
	e.Emit(ir.OpLtS, nil, nil, nil)
	pops(e, tb)
	pushs(e, tb)
	pushs(e, ir.ConstBool{Value: false})
	jumpIfEqS(e, loopEnd)

	pushs(e, s)
	pushs(e, idx)
	e.Emit(ir.OpGetChar, nil, nil, nil)
	ch := tempVar(e)
	pops(e, ch)
	pushs(e, result)
	pushs(e, ch)
	e.Emit(ir.OpConcat, nil, nil, nil)
	pops(e, result)

	pushs(e, idx)
	pushs(e, ir.ConstInt{Value: 1})
	e.Emit(ir.OpAddS, nil, nil, nil)
	pops(e, idx)
	jump(e, loop)

	label(e, loopEnd)
	pushs(e, result)
	jump(e, done)

	label(e, invalid)
	pushs(e, ir.ConstNil{})

	label(e, done)
}
