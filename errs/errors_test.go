/*
File    : glint/errs/errors_test.go
*/
package errs

import (
	"testing"

	"github.com/akashmaji946/glint/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpan() position.Span {
	p := position.New("<test>", "boom")
	return position.NewSpan(p, p)
}

func TestLookupThrowableResolvesRuntimeKinds(t *testing.T) {
	k, ok := LookupThrowable("RuntimeError")
	require.True(t, ok)
	assert.Equal(t, RuntimeError, k)

	k, ok = LookupThrowable("DictError")
	require.True(t, ok)
	assert.Equal(t, DictError, k)
}

func TestLookupThrowableRejectsPhaseOneAndUnknownKinds(t *testing.T) {
	_, ok := LookupThrowable("InvalidSyntaxError")
	assert.False(t, ok)

	_, ok = LookupThrowable("NotARealKind")
	assert.False(t, ok)
}

func TestNewfFormatsDetails(t *testing.T) {
	err := Newf(MathError, testSpan(), "divide by %d", 0)
	assert.Equal(t, MathError, err.Kind)
	assert.Equal(t, "divide by 0", err.Details)
	assert.Equal(t, "MathError: divide by 0", err.Error())
}

func TestCatchReturnsKindAndDetails(t *testing.T) {
	err := New(VariableError, testSpan(), "identifier not found: x")
	kind, details := err.Catch()
	assert.Equal(t, "VariableError", kind)
	assert.Equal(t, "identifier not found: x", details)
}

func TestRenderIncludesTracebackWhenFramesPresent(t *testing.T) {
	span := testSpan()
	err := New(RuntimeError, span, "boom")
	err.Frames = []Frame{{Span: span, DisplayName: "f"}}

	out := err.Render()
	assert.Contains(t, out, "Traceback (most recent call last):")
	assert.Contains(t, out, "in f")
	assert.Contains(t, out, "RuntimeError: boom")
}

func TestRenderOmitsTracebackWhenNoFrames(t *testing.T) {
	err := New(RuntimeError, testSpan(), "boom")
	out := err.Render()
	assert.NotContains(t, out, "Traceback")
	assert.Contains(t, out, "RuntimeError: boom")
}
