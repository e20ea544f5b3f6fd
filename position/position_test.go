/*
File    : glint/position/position_test.go
*/
package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStartsAtOrigin(t *testing.T) {
	p := New("<test>", "abc")
	assert.Equal(t, 0, p.Index)
	assert.Equal(t, 0, p.Line)
	assert.Equal(t, 0, p.Column)
}

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	p := New("<test>", "ab\ncd")
	p.Advance('a')
	p.Advance('b')
	assert.Equal(t, 2, p.Index)
	assert.Equal(t, 0, p.Line)
	assert.Equal(t, 2, p.Column)

	p.Advance('\n')
	assert.Equal(t, 1, p.Line)
	assert.Equal(t, 0, p.Column)
}

func TestCopyIsIndependent(t *testing.T) {
	p := New("<test>", "abc")
	p.Advance('a')
	cp := p.Copy()
	p.Advance('b')
	assert.Equal(t, 1, cp.Index)
	assert.Equal(t, 2, p.Index)
}

func TestMergeKeepsOuterBounds(t *testing.T) {
	text := "var x = 1"
	start := New("<test>", text)
	end := start.Copy()
	for i := 0; i < len(text); i++ {
		end.Advance(text[i])
	}
	span := Merge(NewSpan(start, start), NewSpan(end, end))
	assert.Equal(t, 0, span.Start.Index)
	assert.Equal(t, len(text), span.End.Index)
}

func TestCaretUnderlineMarksOffendingToken(t *testing.T) {
	text := "var x = 1\nundefinedName\n"
	start := New("<test>", text)
	for i := 0; i < 10; i++ {
		start.Advance(text[i])
	}
	end := start.Copy()
	for i := 10; i < 23; i++ {
		end.Advance(text[i])
	}
	out := CaretUnderline(NewSpan(start, end))
	assert.Contains(t, out, "undefinedName")
	assert.Contains(t, out, "^")
}
