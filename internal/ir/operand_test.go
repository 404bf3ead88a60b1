package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeStringEscapesControlHashAndBackslash(t *testing.T) {
	assert.Equal(t, "hello", EscapeString("hello"))
	assert.Equal(t, "a\\010b", EscapeString("a\nb"))
	assert.Equal(t, "a\\035b", EscapeString("a#b"))
	assert.Equal(t, "a\\092b", EscapeString("a\\b"))
	assert.Equal(t, "\\032", EscapeString(" "))
}

func TestOperandRendering(t *testing.T) {
	assert.Equal(t, "int@42", ConstInt{Value: 42}.Render())
	assert.Equal(t, "bool@true", ConstBool{Value: true}.Render())
	assert.Equal(t, "bool@false", ConstBool{Value: false}.Render())
	assert.Equal(t, "nil@nil", ConstNil{}.Render())
	assert.Equal(t, "GF@x", Var{Frame: GlobalFrame, Name: "x"}.Render())
	assert.Equal(t, "LF@y", Var{Frame: LocalFrame, Name: "y"}.Render())
	assert.Equal(t, "TF@t0", Var{Frame: TempFrame, Name: "t0"}.Render())
	assert.Equal(t, "string@hi", ConstString{Value: "hi"}.Render())
}
