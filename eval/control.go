/*
File    : glint/eval/control.go
*/
package eval

import (
	"github.com/akashmaji946/glint/context"
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/parser"
	"github.com/akashmaji946/glint/position"
	"github.com/akashmaji946/glint/scope"
)

func (it *Interpreter) evalIf(n *parser.IfNode, sc *scope.Scope, ctx *context.Context) Result {
	for _, c := range n.Cases {
		cond := it.Eval(c.Cond, sc, ctx)
		if cond.ShouldReturn() {
			return cond
		}
		if cond.Value.Truthy() {
			return it.Eval(c.Body, sc, ctx)
		}
	}
	if n.Else != nil {
		return it.Eval(n.Else.Body, sc, ctx)
	}
	return Val(objects.NullValue)
}

// asLoopBound requires v to be a Number (for-loop start/end/step must be
// numbers, spec.md §4.4; the original raises VariableError here too).
func asLoopBound(v objects.Value, span position.Span) (int64, *errs.Error) {
	n, ok := v.(*objects.Number)
	if !ok {
		return 0, errs.Newf(errs.VariableError, span, "for-loop bound must be a number, got %s", v.Type())
	}
	return asInt(n), nil
}

func asInt(v objects.Value) int64 {
	if n, ok := v.(*objects.Number); ok {
		if n.IsInt {
			return n.IntValue
		}
		return int64(n.FloatValue)
	}
	return 0
}

// evalFor implements `for i = a to b step s then body (else …)`, whose
// direction invariant (spec.md §8) is: iterate while
// (s >= 0 && i < b) || (s < 0 && i > b). In expression form (!n.IsBlock)
// each non-broken iteration's body value is collected into the result List.
func (it *Interpreter) evalFor(n *parser.ForNode, sc *scope.Scope, ctx *context.Context) Result {
	if isConstName(n.VarName) {
		return Fail(errs.Newf(errs.VariableError, n.Span(), "for-loop variable cannot be a const name: %s", n.VarName))
	}

	start := int64(0)
	if n.Start != nil {
		r := it.Eval(n.Start, sc, ctx)
		if r.ShouldReturn() {
			return r
		}
		v, err := asLoopBound(r.Value, n.Start.Span())
		if err != nil {
			return Fail(err)
		}
		start = v
	}
	end := it.Eval(n.End, sc, ctx)
	if end.ShouldReturn() {
		return end
	}
	endVal, err := asLoopBound(end.Value, n.End.Span())
	if err != nil {
		return Fail(err)
	}

	step := int64(1)
	if n.Step != nil {
		r := it.Eval(n.Step, sc, ctx)
		if r.ShouldReturn() {
			return r
		}
		v, err := asLoopBound(r.Value, n.Step.Span())
		if err != nil {
			return Fail(err)
		}
		step = v
	}

	i := start
	broke := false
	var collected []objects.Value
	for (step >= 0 && i < endVal) || (step < 0 && i > endVal) {
		sc.Set(n.VarName, objects.NewNumberInt(i))
		r := it.Eval(n.Body, sc, ctx)
		if r.Err != nil {
			return r
		}
		if r.IsBreak {
			broke = true
			break
		}
		if r.IsReturn {
			return r
		}
		if !n.IsBlock {
			collected = append(collected, r.Value)
		}
		// IsContinue falls through to the next iteration.
		i += step
	}
	if !broke && n.ElseBody != nil {
		return it.Eval(n.ElseBody, sc, ctx)
	}
	if !n.IsBlock && !broke {
		return Val(objects.NewList(collected))
	}
	return Val(objects.NullValue)
}

func (it *Interpreter) evalWhile(n *parser.WhileNode, sc *scope.Scope, ctx *context.Context) Result {
	broke := false
	var collected []objects.Value
	for {
		cond := it.Eval(n.Cond, sc, ctx)
		if cond.ShouldReturn() {
			return cond
		}
		if !cond.Value.Truthy() {
			break
		}
		r := it.Eval(n.Body, sc, ctx)
		if r.Err != nil {
			return r
		}
		if r.IsBreak {
			broke = true
			break
		}
		if r.IsReturn {
			return r
		}
		if !n.IsBlock {
			collected = append(collected, r.Value)
		}
	}
	if !broke && n.ElseBody != nil {
		return it.Eval(n.ElseBody, sc, ctx)
	}
	if !n.IsBlock && !broke {
		return Val(objects.NewList(collected))
	}
	return Val(objects.NullValue)
}

// evalSwitch: "at most one case body executes per switch evaluation"
// (spec.md §8). The scrutinee is evaluated once; cases are tried top to
// bottom, each requiring a value match; a matching case whose `unless`
// guard is truthy is skipped.
func (it *Interpreter) evalSwitch(n *parser.SwitchNode, sc *scope.Scope, ctx *context.Context) Result {
	cond := it.Eval(n.Cond, sc, ctx)
	if cond.ShouldReturn() {
		return cond
	}
	for _, c := range n.Cases {
		match := it.Eval(c.Match, sc, ctx)
		if match.ShouldReturn() {
			return match
		}
		if !objects.Equal(cond.Value, match.Value) {
			continue
		}
		if c.Guard != nil {
			g := it.Eval(c.Guard, sc, ctx)
			if g.ShouldReturn() {
				return g
			}
			if g.Value.Truthy() {
				continue
			}
		}
		return it.Eval(c.Body, sc, ctx)
	}
	if n.Default != nil {
		return it.Eval(n.Default, sc, ctx)
	}
	return Val(objects.NullValue)
}
