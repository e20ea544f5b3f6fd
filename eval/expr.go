/*
File    : glint/eval/expr.go
*/
package eval

import (
	"github.com/akashmaji946/glint/context"
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/function"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/parser"
	"github.com/akashmaji946/glint/position"
	"github.com/akashmaji946/glint/scope"
)

// binaryOpTable and unaryOpTable map the lexer's operator token kinds to the
// objects.Op tags BinaryOp/UnaryOp dispatch on. `and`/`or` have no
// entry: they are handled directly by evalAnd/evalOr, never delegated
// to a value's BinaryOp, per spec.md's operator semantics summary.
var binaryOpTable = map[lexer.Kind]objects.Op{
	lexer.PLUS: objects.OpAdd, lexer.MINUS: objects.OpSub,
	lexer.MUL: objects.OpMul, lexer.DIV: objects.OpDiv,
	lexer.FLOOR: objects.OpFloor, lexer.MOD: objects.OpMod, lexer.POW: objects.OpPow,
	lexer.BITAND: objects.OpAmp, lexer.BITOR: objects.OpPipe, lexer.BITXOR: objects.OpCaret,
	lexer.LSHIFT: objects.OpLShift, lexer.RSHIFT: objects.OpRShift,
	lexer.LT: objects.OpLT, lexer.LTE: objects.OpLE, lexer.GT: objects.OpGT, lexer.GTE: objects.OpGE,
	lexer.EE: objects.OpEq, lexer.NE: objects.OpNe,
	lexer.ARROW: objects.OpArrow, lexer.QUESTION: objects.OpQuest,
	lexer.DOUBLE: objects.OpMember,
}

var unaryOpTable = map[lexer.Kind]objects.Op{
	lexer.PLUS: objects.OpPos, lexer.MINUS: objects.OpNeg,
	lexer.NOT: objects.OpNot, lexer.XAT: objects.OpXAt, lexer.INVERT: objects.OpInvert,
}

func (it *Interpreter) evalUnary(n *parser.UnaryNode, sc *scope.Scope, ctx *context.Context) Result {
	r := it.Eval(n.Operand, sc, ctx)
	if r.ShouldReturn() {
		return r
	}
	op, ok := unaryOpTable[n.Op]
	if !ok {
		return Fail(errs.Newf(errs.InvalidSyntaxError, n.Span(), "unknown unary operator %s", n.Op))
	}
	v, err := r.Value.UnaryOp(op, n.Span())
	if err != nil {
		return Fail(err)
	}
	return Val(v)
}

// evalBinary handles every operator that is delegated to the left
// operand's BinaryOp - i.e. every operator except and/or. Two
// exceptions within this set are special-cased here: `@` (map) requires
// call capability, and `::` (membership) asks the right operand's
// Contains rather than the left operand's BinaryOp.
func (it *Interpreter) evalBinary(n *parser.BinaryNode, sc *scope.Scope, ctx *context.Context) Result {
	left := it.Eval(n.Left, sc, ctx)
	if left.ShouldReturn() {
		return left
	}
	right := it.Eval(n.Right, sc, ctx)
	if right.ShouldReturn() {
		return right
	}
	if n.Op == lexer.AT {
		return it.evalMap(left.Value, right.Value, n.Span(), ctx)
	}
	op, ok := binaryOpTable[n.Op]
	if !ok {
		return Fail(errs.Newf(errs.InvalidSyntaxError, n.Span(), "unknown binary operator %s", n.Op))
	}
	if op == objects.OpMember {
		ok, err := right.Value.Contains(left.Value, n.Span())
		if err != nil {
			return Fail(err)
		}
		return Val(objects.NewBool(ok))
	}
	v, err := left.Value.BinaryOp(op, right.Value, n.Span())
	if err != nil {
		return Fail(err)
	}
	return Val(v)
}

// evalMap implements `iterable @ function`: apply fn to each element of
// the iterable's Iter(), propagating the first callee error.
func (it *Interpreter) evalMap(iterable, callee objects.Value, span position.Span, ctx *context.Context) Result {
	items, err := iterable.Iter(span)
	if err != nil {
		return Fail(err)
	}
	out := make([]objects.Value, 0, len(items))
	for _, item := range items {
		r := it.invoke(callee, []objects.Value{item}, span, ctx)
		if r.ShouldReturn() {
			return r
		}
		out = append(out, r.Value)
	}
	return Val(objects.NewList(out))
}

func (it *Interpreter) evalAnd(n *parser.AndNode, sc *scope.Scope, ctx *context.Context) Result {
	left := it.Eval(n.Left, sc, ctx)
	if left.ShouldReturn() {
		return left
	}
	if !left.Value.Truthy() {
		return left
	}
	return it.Eval(n.Right, sc, ctx)
}

func (it *Interpreter) evalOr(n *parser.OrNode, sc *scope.Scope, ctx *context.Context) Result {
	left := it.Eval(n.Left, sc, ctx)
	if left.ShouldReturn() {
		return left
	}
	if left.Value.Truthy() {
		return left
	}
	return it.Eval(n.Right, sc, ctx)
}

func (it *Interpreter) evalVarAccess(n *parser.VarAccessNode, sc *scope.Scope, ctx *context.Context) Result {
	v, ok := sc.Get(n.Name)
	if !ok {
		return Fail(errs.Newf(errs.VariableError, n.Span(), "identifier not found: %s%s", n.Name, it.suggest(n.Name, sc)))
	}
	return Val(v)
}

// isConstName reports whether name follows the CONST write-once
// convention spec.md's glossary and Const-immutability invariant name:
// any identifier whose text begins with "CONST".
func isConstName(name string) bool {
	return len(name) >= 5 && name[:5] == "CONST"
}

func (it *Interpreter) evalVarAssign(n *parser.VarAssignNode, sc *scope.Scope, ctx *context.Context) Result {
	r := it.Eval(n.Expr, sc, ctx)
	if r.ShouldReturn() {
		return r
	}
	if isConstName(n.Name) && sc.Has(n.Name) {
		return Fail(errs.Newf(errs.VariableError, n.Span(), "cannot reassign const name %s", n.Name))
	}
	sc.Set(n.Name, r.Value)
	return Val(r.Value)
}

func (it *Interpreter) evalAttrAccess(n *parser.AttrAccessNode, sc *scope.Scope, ctx *context.Context) Result {
	r := it.Eval(n.Target, sc, ctx)
	if r.ShouldReturn() {
		return r
	}
	if v, ok := r.Value.Attrs()[n.Name]; ok {
		return Val(bindMember(r.Value, v))
	}
	return Fail(errs.Newf(errs.ClassError, n.Span(), "no attribute %s on %s", n.Name, r.Value.Type()))
}

// bindMember wraps attr in a MemberFunction that prepends recv to its
// argument list, unless recv is a Namespace (namespace attribute access
// never wraps) or attr isn't callable.
func bindMember(recv, attr objects.Value) objects.Value {
	if _, isNamespace := recv.(*objects.Namespace); isNamespace {
		return attr
	}
	switch fn := attr.(type) {
	case *function.Function:
		return function.NewMember(recv, fn)
	case *function.NativeFunction:
		return function.NewMember(recv, fn)
	default:
		return attr
	}
}

func (it *Interpreter) evalAttrAssign(n *parser.AttrAssignNode, sc *scope.Scope, ctx *context.Context) Result {
	recv := it.Eval(n.Receiver, sc, ctx)
	if recv.ShouldReturn() {
		return recv
	}
	val := it.Eval(n.Expr, sc, ctx)
	if val.ShouldReturn() {
		return val
	}
	recv.Value.Attrs()[n.Attr] = val.Value
	return Val(val.Value)
}

func (it *Interpreter) evalIndex(n *parser.IndexNode, sc *scope.Scope, ctx *context.Context) Result {
	target := it.Eval(n.Target, sc, ctx)
	if target.ShouldReturn() {
		return target
	}
	idx := it.Eval(n.Index, sc, ctx)
	if idx.ShouldReturn() {
		return idx
	}
	v, err := target.Value.Index(idx.Value, n.Span())
	if err != nil {
		return Fail(err)
	}
	return Val(v)
}

// invoke calls any callable value (Function, NativeFunction,
// MemberFunction) with already-evaluated args. Non-callables produce a
// FunctionError.
func (it *Interpreter) invoke(callee objects.Value, args []objects.Value, span position.Span, ctx *context.Context) Result {
	switch fn := callee.(type) {
	case *function.MemberFunction:
		return it.invoke(fn.Inner, fn.Bind(args), span, ctx)
	case *function.NativeFunction:
		v, err := fn.Fn(args)
		if err != nil {
			if e, ok := err.(*errs.Error); ok {
				return Fail(e)
			}
			return Fail(errs.Newf(errs.FunctionError, span, "%s", err.Error()))
		}
		return Val(v)
	case *function.Function:
		return it.callFunction(fn, args, span, ctx)
	default:
		return Fail(errs.Newf(errs.FunctionError, span, "%s is not callable", callee.Type()))
	}
}

func (it *Interpreter) callFunction(fn *function.Function, args []objects.Value, span position.Span, ctx *context.Context) Result {
	if len(args) != fn.Arity() {
		return Fail(errs.Newf(errs.FunctionError, span, "wrong number of arguments: expected %d, got %d", fn.Arity(), len(args)))
	}
	it.depth++
	defer func() { it.depth-- }()
	if int64(it.depth) > it.maxRecursion() {
		return Fail(errs.Newf(errs.RuntimeError, span, "maximum recursion depth exceeded"))
	}
	callScope := scope.New(fn.Closure)
	for i, name := range fn.ParamNames {
		callScope.Set(name, args[i])
	}
	childCtx := ctx.Child(fn.String(), span)
	r := it.Eval(fn.Body, callScope, childCtx)
	if r.Err != nil {
		if r.Err.Frames == nil {
			r.Err.Frames = childCtx.Frames()
		}
		return r
	}
	if r.IsReturn {
		return Val(r.Value)
	}
	if r.IsBreak || r.IsContinue {
		return Fail(errs.New(errs.OutsideError, span, "break/continue outside loop"))
	}
	if fn.AutoReturn {
		return Val(r.Value)
	}
	return Val(objects.NullValue)
}

func (it *Interpreter) evalCall(n *parser.CallNode, sc *scope.Scope, ctx *context.Context) Result {
	calleeR := it.Eval(n.Callee, sc, ctx)
	if calleeR.ShouldReturn() {
		return calleeR
	}
	args := make([]objects.Value, 0, len(n.Args))
	for _, a := range n.Args {
		r := it.Eval(a, sc, ctx)
		if r.ShouldReturn() {
			return r
		}
		args = append(args, r.Value)
	}
	return it.invoke(calleeR.Value, args, n.Span(), ctx)
}
