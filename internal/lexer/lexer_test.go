package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ifj25c/internal/token"
)

func collectTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	s := New(src)
	var out []token.Type
	for {
		tok := s.NextToken()
		out = append(out, tok.Type)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestScansKeywordsAndIdents(t *testing.T) {
	types := collectTypes(t, "class Program static function")
	assert.Equal(t, []token.Type{token.CLASS, token.IDENT, token.STATIC, token.IDENT, token.EOF}, types)
}

func TestScansGlobalIdentifier(t *testing.T) {
	s := New("__counter")
	tok := s.NextToken()
	require.Equal(t, token.GLOBAL_IDENT, tok.Type)
	assert.Equal(t, "__counter", tok.Literal)
}

func TestRejectsBareDoubleUnderscore(t *testing.T) {
	s := New("__")
	s.NextToken()
	require.Len(t, s.Errors(), 1)
}

func TestScansIntFloatAndHex(t *testing.T) {
	s := New("42 3.14 0x1A 1e10 2.5e-3")
	want := []struct {
		tt  token.Type
		lit string
	}{
		{token.INT, "42"},
		{token.FLOAT, "3.14"},
		{token.INT, "0x1A"},
		{token.FLOAT, "1e10"},
		{token.FLOAT, "2.5e-3"},
	}
	for _, w := range want {
		tok := s.NextToken()
		assert.Equal(t, w.tt, tok.Type)
		assert.Equal(t, w.lit, tok.Literal)
	}
}

func TestScansSimpleStringWithEscapes(t *testing.T) {
	s := New(`"a\nb\"c"`)
	tok := s.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "a\nb\"c", tok.Literal)
}

func TestScansTripleQuotedString(t *testing.T) {
	s := New("\"\"\"line1\nline2\"\"\"")
	tok := s.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "line1\nline2", tok.Literal)
}

func TestUnterminatedStringReportsError(t *testing.T) {
	s := New("\"abc")
	s.NextToken()
	require.Len(t, s.Errors(), 1)
}

func TestNestedBlockComments(t *testing.T) {
	types := collectTypes(t, "/* outer /* inner */ still comment */ IDENT")
	assert.Equal(t, []token.Type{token.IDENT, token.EOF}, types)
}

func TestUnterminatedBlockCommentReportsError(t *testing.T) {
	s := New("/* never closes")
	s.NextToken()
	require.Len(t, s.Errors(), 1)
}

func TestDotDotAndEllipsis(t *testing.T) {
	types := collectTypes(t, ". .. ...")
	assert.Equal(t, []token.Type{token.DOT, token.DOTDOT, token.ELLIPSIS, token.EOF}, types)
}

func TestTwoCharOperators(t *testing.T) {
	types := collectTypes(t, "== != <= >=")
	assert.Equal(t, []token.Type{token.EQ, token.NEQ, token.LE, token.GE, token.EOF}, types)
}

func TestEOLIsSignificant(t *testing.T) {
	types := collectTypes(t, "x\ny")
	assert.Equal(t, []token.Type{token.IDENT, token.EOL, token.IDENT, token.EOF}, types)
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := New("a b")
	first := s.Peek(0)
	require.Equal(t, token.IDENT, first.Type)
	require.Equal(t, "a", first.Literal)

	second := s.Peek(1)
	assert.Equal(t, "b", second.Literal)

	assert.Equal(t, "a", s.NextToken().Literal)
	assert.Equal(t, "b", s.NextToken().Literal)
}

func TestIllegalCharacterReportsError(t *testing.T) {
	s := New("@")
	tok := s.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	require.Len(t, s.Errors(), 1)
}
