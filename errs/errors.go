/*
File    : glint/errs/errors.go
*/

// Package errs implements the closed error taxonomy: every diagnostic the
// lexer, parser and interpreter raise is one of these kinds, and the
// textual kind name doubles as the public interface `throw`/`catch` use
// from script code.
package errs

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/glint/position"
)

// Kind names the error taxonomy. These strings are the public contract:
// `throw "MathError", "oops"` and `catch k, d` both speak this vocabulary.
type Kind string

const (
	IllegalCharacterError Kind = "IllegalCharacterError"
	InvalidSyntaxError    Kind = "InvalidSyntaxError"
	OutsideError          Kind = "OutsideError"
	RuntimeError          Kind = "RuntimeError"
	MathError             Kind = "MathError"
	VariableError         Kind = "VariableError"
	FunctionError         Kind = "FunctionError"
	ListError             Kind = "ListError"
	DictError             Kind = "DictError"
	IncludeError          Kind = "IncludeError"
	AssertError           Kind = "AssertError"
	ClassError            Kind = "ClassError"
)

// runtimeKinds is the subset of Kind that may be thrown by name from
// script code via `throw`. Phase-1 kinds (lex/parse) and BaseError are
// excluded; BaseError never existed as a throwable name in the first place.
var runtimeKinds = map[string]Kind{
	"RuntimeError":  RuntimeError,
	"MathError":     MathError,
	"VariableError": VariableError,
	"FunctionError": FunctionError,
	"ListError":     ListError,
	"DictError":     DictError,
	"IncludeError":  IncludeError,
	"AssertError":   AssertError,
	"ClassError":    ClassError,
}

// LookupThrowable resolves a textual error-kind name to a Kind, for the
// `throw` statement. ok is false for unknown names (including BaseError
// and the phase-1-only kinds, which a script can never manufacture).
func LookupThrowable(name string) (Kind, bool) {
	k, ok := runtimeKinds[name]
	return k, ok
}

// Frame is one entry of a traceback: the call site and the display name
// of the frame entered there (a function name, "<module>", a namespace
// name, ...).
type Frame struct {
	Span        position.Span
	DisplayName string
}

// Error is a diagnosed failure: a taxonomy Kind, a human-readable detail
// string, the span where it was raised, and (for runtime errors) the
// call-stack frames active at the time, most-recent-call-last.
type Error struct {
	Kind    Kind
	Details string
	Span    position.Span
	Frames  []Frame
}

func New(kind Kind, span position.Span, details string) *Error {
	return &Error{Kind: kind, Details: details, Span: span}
}

func Newf(kind Kind, span position.Span, format string, args ...interface{}) *Error {
	return New(kind, span, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Details }

// Catch returns the (kind_name, details) pair a `try/catch` binds to its
// two catch names.
func (e *Error) Catch() (string, string) {
	return string(e.Kind), e.Details
}

// Render produces the full user-facing diagnostic: traceback frames
// (most-recent-call-last), the "<Kind>: <details>" line, then the
// offending source line(s) with a caret underline.
func (e *Error) Render() string {
	var b strings.Builder
	if len(e.Frames) > 0 {
		b.WriteString("Traceback (most recent call last):\n")
		for _, f := range e.Frames {
			fmt.Fprintf(&b, "\tFile %s, line %d, in %s\n", f.Span.Start.File, f.Span.Start.Line+1, f.DisplayName)
		}
	}
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Details)
	b.WriteString(position.CaretUnderline(e.Span))
	return b.String()
}
