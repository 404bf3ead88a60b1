package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ifj25c/internal/symtab"
)

func TestResolveWalksInnerToOuter(t *testing.T) {
	s := New()
	s.Global().Insert(symtab.VarKey("x"), &symtab.Symbol{Kind: symtab.KindVar, UniqueName: "global_x"})

	s.Push()
	s.Top().Insert(symtab.VarKey("x"), &symtab.Symbol{Kind: symtab.KindVar, UniqueName: "inner_x"})

	sym, ok := s.Resolve(symtab.VarKey("x"))
	require.True(t, ok)
	assert.Equal(t, "inner_x", sym.UniqueName)

	s.Pop()
	sym, ok = s.Resolve(symtab.VarKey("x"))
	require.True(t, ok)
	assert.Equal(t, "global_x", sym.UniqueName)
}

func TestResolveMissingReturnsFalse(t *testing.T) {
	s := New()
	_, ok := s.Resolve(symtab.VarKey("nope"))
	assert.False(t, ok)
}

func TestDeclaredInTopOnlyChecksInnermost(t *testing.T) {
	s := New()
	s.Global().Insert(symtab.VarKey("x"), &symtab.Symbol{Kind: symtab.KindVar})
	s.Push()
	assert.False(t, s.DeclaredInTop(symtab.VarKey("x")))
	s.Top().Insert(symtab.VarKey("x"), &symtab.Symbol{Kind: symtab.KindVar})
	assert.True(t, s.DeclaredInTop(symtab.VarKey("x")))
}

func TestDepthTracksPushPop(t *testing.T) {
	s := New()
	assert.Equal(t, 1, s.Depth())
	s.Push()
	s.Push()
	assert.Equal(t, 3, s.Depth())
	s.Pop()
	assert.Equal(t, 2, s.Depth())
}
