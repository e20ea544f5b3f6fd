/*
File    : glint/position/position.go
*/

// Package position implements the cursor used by the lexer, parser and
// interpreter to track where a token, node or value came from in the
// original source text. Every diagnostic in the language is built on top
// of a pair of Positions (start/end), so this package has no dependency
// on anything else in the module.
package position

import "strings"

// Position is a single point in a source buffer: byte index plus the
// derived line/column, together with the file name and the full text so
// that diagnostics can slice out source context without re-reading disk.
type Position struct {
	Index  int    // byte offset into Text
	Line   int    // 0-indexed line number
	Column int     // 0-indexed column number
	File   string // file name, or "<stdin>"/"<repl>"
	Text   string // full source text this position indexes into
}

// New creates a Position at the start of text.
func New(file, text string) Position {
	return Position{Index: 0, Line: 0, Column: 0, File: file, Text: text}
}

// Advance moves the position forward by one character. When the consumed
// character is a newline the line counter increments and column resets,
// mirroring how the lexer tracks carets for error reporting.
func (p *Position) Advance(current byte) {
	p.Index++
	p.Column++
	if current == '\n' {
		p.Column = 0
		p.Line++
	}
}

// Copy returns an independent copy of the position.
func (p Position) Copy() Position {
	return Position{Index: p.Index, Line: p.Line, Column: p.Column, File: p.File, Text: p.Text}
}

// Span is an immutable (start, end) pair of Positions carried by every
// token, AST node and runtime value for diagnostics.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a Span from two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Merge returns a span covering both a and b, keeping a's start and b's end.
func Merge(a, b Span) Span {
	return Span{Start: a.Start, End: b.End}
}

// CaretUnderline renders the offending source line(s) with a caret
// underline spanning the span, tabs stripped — the format used in
// tracebacks rendered to the user.
func CaretUnderline(span Span) string {
	text := span.Start.Text
	idxStart := 0
	if last := strings.LastIndex(text[:min(span.Start.Index, len(text))], "\n"); last >= 0 {
		idxStart = last
	}
	idxEnd := strings.Index(text[min(idxStart+1, len(text)):], "\n")
	if idxEnd < 0 {
		idxEnd = len(text)
	} else {
		idxEnd += idxStart + 1
	}

	lineCount := span.End.Line - span.Start.Line + 1
	if lineCount < 1 {
		lineCount = 1
	}

	var b strings.Builder
	for i := 0; i < lineCount; i++ {
		if idxStart > len(text) {
			break
		}
		end := idxEnd
		if end > len(text) {
			end = len(text)
		}
		line := text[min(idxStart, len(text)):end]

		colStart := 0
		if i == 0 {
			colStart = span.Start.Column
		}
		colEnd := len(line) - 1
		if i == lineCount-1 {
			colEnd = span.End.Column
		}
		if colEnd < colStart {
			colEnd = colStart
		}

		b.WriteString(line)
		b.WriteByte('\n')
		if colStart > 0 {
			b.WriteString(strings.Repeat(" ", colStart))
		}
		b.WriteString(strings.Repeat("^", colEnd-colStart+1))
		b.WriteByte('\n')

		idxStart = idxEnd
		if idxStart >= len(text) {
			break
		}
		next := strings.Index(text[idxStart+1:], "\n")
		if next < 0 {
			idxEnd = len(text)
		} else {
			idxEnd = idxStart + 1 + next
		}
	}
	return strings.ReplaceAll(b.String(), "\t", "")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
