/*
File    : glint/eval/statements.go
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/glint/context"
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/function"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/parser"
	"github.com/akashmaji946/glint/scope"
)

func (it *Interpreter) evalFunctionDef(n *parser.FunctionNode, sc *scope.Scope, ctx *context.Context) Result {
	fn := function.New(n.Name, n.ParamNames, n.Body, n.AutoReturn, sc)
	if n.Name != "" {
		if sc.Has(n.Name) {
			return Fail(errs.Newf(errs.FunctionError, n.Span(), "function redeclared: %s", n.Name))
		}
		sc.Set(n.Name, fn)
	}
	return Val(fn)
}

func (it *Interpreter) evalReturn(n *parser.ReturnNode, sc *scope.Scope, ctx *context.Context) Result {
	if n.Value == nil {
		return ReturnResult(objects.NullValue)
	}
	r := it.Eval(n.Value, sc, ctx)
	if r.ShouldReturn() {
		return r
	}
	return ReturnResult(r.Value)
}

// evalExit implements spec.md §6's exit contract: bare exit terminates
// with code 0; a Number status becomes the exit code; any other value
// is printed as a termination message and exits with code 1.
func (it *Interpreter) evalExit(n *parser.ExitNode, sc *scope.Scope, ctx *context.Context) Result {
	if n.Status == nil {
		return ExitResult(0)
	}
	r := it.Eval(n.Status, sc, ctx)
	if r.ShouldReturn() {
		return r
	}
	if num, ok := r.Value.(*objects.Number); ok {
		return ExitResult(int(asInt(num)))
	}
	fmt.Fprintln(it.Writer, r.Value.String())
	return ExitResult(1)
}

func (it *Interpreter) evalThrow(n *parser.ThrowNode, sc *scope.Scope, ctx *context.Context) Result {
	nameR := it.Eval(n.ErrorName, sc, ctx)
	if nameR.ShouldReturn() {
		return nameR
	}
	nameStr, ok := nameR.Value.(*objects.String)
	if !ok {
		return Fail(errs.New(errs.RuntimeError, n.Span(), "throw requires a string error-kind name"))
	}
	kind, ok := errs.LookupThrowable(nameStr.Value)
	if !ok {
		return Fail(errs.Newf(errs.VariableError, n.Span(), "unknown error kind: %s", nameStr.Value))
	}
	details := ""
	if n.Details != nil {
		d := it.Eval(n.Details, sc, ctx)
		if d.ShouldReturn() {
			return d
		}
		details = d.Value.String()
	}
	return Fail(errs.New(kind, n.Span(), details))
}

// evalTry implements try/catch/else/finally: finally executes exactly
// once regardless of whether try succeeded, raised, or early-exited
// (spec.md §8's Try/finally invariant).
func (it *Interpreter) evalTry(n *parser.TryNode, sc *scope.Scope, ctx *context.Context) Result {
	result := it.Eval(n.TryBody, sc, ctx)

	if result.Err != nil && n.CatchBody != nil {
		kindName, details := result.Err.Catch()
		if n.CatchName != "" {
			sc.Set(n.CatchName, objects.NewString(kindName))
		}
		if n.CatchDetails != "" {
			sc.Set(n.CatchDetails, objects.NewString(details))
		}
		result = it.Eval(n.CatchBody, sc, ctx)
	} else if !result.ShouldReturn() && n.ElseBody != nil {
		result = it.Eval(n.ElseBody, sc, ctx)
	}

	if n.FinallyBody != nil {
		fr := it.Eval(n.FinallyBody, sc, ctx)
		if fr.ShouldReturn() {
			return fr
		}
	}
	return result
}

func (it *Interpreter) evalAssert(n *parser.AssertNode, sc *scope.Scope, ctx *context.Context) Result {
	cond := it.Eval(n.Cond, sc, ctx)
	if cond.ShouldReturn() {
		return cond
	}
	if cond.Value.Truthy() {
		return Val(objects.NullValue)
	}
	details := "assertion failed"
	if n.Details != nil {
		d := it.Eval(n.Details, sc, ctx)
		if d.ShouldReturn() {
			return d
		}
		details = d.Value.String()
	}
	return Fail(errs.New(errs.AssertError, n.Span(), details))
}

// evalDelete removes a local binding, rejecting CONST names per
// spec.md §8's Const-immutability invariant.
func (it *Interpreter) evalDelete(n *parser.DeleteNode, sc *scope.Scope, ctx *context.Context) Result {
	if isConstName(n.Name) {
		return Fail(errs.Newf(errs.VariableError, n.Span(), "cannot delete const name %s", n.Name))
	}
	if !sc.Remove(n.Name) {
		return Fail(errs.Newf(errs.VariableError, n.Span(), "identifier not found: %s", n.Name))
	}
	return Val(objects.NullValue)
}
