/*
File    : glint/eval/result.go
*/
package eval

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/objects"
)

// Result is what every node handler returns: a plain value, or one of
// the three structured early-exit signals (return/break/continue), or
// an error. ShouldReturn tells a caller it must stop evaluating
// siblings and propagate Result upward unchanged.
type Result struct {
	Value      objects.Value
	IsReturn   bool
	IsBreak    bool
	IsContinue bool
	Err        *errs.Error

	// IsExit and ExitCode carry script-level exit() calls (spec.md §6):
	// a distinguished signal that only cmd/glint's main acts on, never
	// the REPL loop mid-session.
	IsExit   bool
	ExitCode int
}

func Val(v objects.Value) Result { return Result{Value: v} }

func Fail(err *errs.Error) Result { return Result{Err: err} }

func ReturnResult(v objects.Value) Result { return Result{Value: v, IsReturn: true} }

func BreakResult() Result { return Result{Value: objects.NullValue, IsBreak: true} }

func ContinueResult() Result { return Result{Value: objects.NullValue, IsContinue: true} }

// ExitResult signals a script-level exit() call with the given process
// exit code.
func ExitResult(code int) Result {
	return Result{Value: objects.NullValue, IsExit: true, ExitCode: code}
}

// ShouldReturn reports whether the current handler must short-circuit
// upward rather than keep evaluating its node's siblings.
func (r Result) ShouldReturn() bool {
	return r.Err != nil || r.IsReturn || r.IsBreak || r.IsContinue || r.IsExit
}
