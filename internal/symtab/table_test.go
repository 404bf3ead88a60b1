package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertNeverOverwrites(t *testing.T) {
	tbl := New()

	first := &Symbol{Kind: KindVar, VarType: "Num"}
	require.True(t, tbl.Insert(VarKey("x"), first))

	second := &Symbol{Kind: KindVar, VarType: "String"}
	require.False(t, tbl.Insert(VarKey("x"), second))

	got, ok := tbl.Find(VarKey("x"))
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, "Num", got.VarType)
}

func TestFindMissingKey(t *testing.T) {
	tbl := New()
	_, ok := tbl.Find(VarKey("missing"))
	assert.False(t, ok)
}

func TestFindFunctionIgnoresArity(t *testing.T) {
	tbl := New()
	tbl.Insert(FuncKey("add", 2), &Symbol{Kind: KindFunc, Arity: 2, Defined: true})

	sym, ok := tbl.FindFunction("add")
	require.True(t, ok)
	assert.Equal(t, 2, sym.Arity)

	_, ok = tbl.FindFunction("subtract")
	assert.False(t, ok)
}

func TestFindFunctionSkipsAccessorKeys(t *testing.T) {
	tbl := New()
	tbl.Insert(GetterKey("total"), &Symbol{Kind: KindFunc, Arity: 0, Defined: true})

	_, ok := tbl.FindFunction("total")
	assert.False(t, ok, "getter: keys must not satisfy a plain function lookup")
}

func TestAVLStaysBalancedUnderOrderedInsertion(t *testing.T) {
	tbl := New()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"}
	for _, n := range names {
		tbl.Insert(VarKey(n), &Symbol{Kind: KindVar})
	}

	require.NotNil(t, tbl.root)
	h := height(tbl.root)
	// A balanced tree of 13 nodes has height <= ~4; a degenerate chain
	// from ordered insertion without rebalancing would have height 13.
	assert.LessOrEqual(t, h, 5)

	var seen []string
	tbl.Walk(func(key string, _ *Symbol) { seen = append(seen, key) })
	assert.Equal(t, names, seen, "in-order traversal must yield sorted keys")
}

func TestRebalanceAfterEachCase(t *testing.T) {
	// Left-left
	ll := New()
	for _, n := range []string{"c", "b", "a"} {
		ll.Insert(VarKey(n), &Symbol{})
	}
	assert.LessOrEqual(t, height(ll.root), 2)

	// Right-right
	rr := New()
	for _, n := range []string{"a", "b", "c"} {
		rr.Insert(VarKey(n), &Symbol{})
	}
	assert.LessOrEqual(t, height(rr.root), 2)

	// Left-right
	lr := New()
	for _, n := range []string{"c", "a", "b"} {
		lr.Insert(VarKey(n), &Symbol{})
	}
	assert.LessOrEqual(t, height(lr.root), 2)

	// Right-left
	rl := New()
	for _, n := range []string{"a", "c", "b"} {
		rl.Insert(VarKey(n), &Symbol{})
	}
	assert.LessOrEqual(t, height(rl.root), 2)
}
