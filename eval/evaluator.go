/*
File    : glint/eval/evaluator.go
*/

// Package eval implements the tree-walking interpreter: one handler per
// AST node variant, dispatched by a type switch over parser.Node, each
// returning a Result that the caller must check via ShouldReturn before
// continuing to a sibling node. This is the visitor spec.md §4.4
// describes, rendered as a Go type switch rather than double dispatch.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/glint/context"
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/parser"
	"github.com/akashmaji946/glint/position"
	"github.com/akashmaji946/glint/scope"
)

// MaxRecursionName is the top-level binding that overrides the default
// recursion ceiling, per spec.md §5.
const MaxRecursionName = "__System_maxrecursion"

const defaultMaxRecursion = 1000

// Interpreter holds everything a running program needs beyond the
// current node: where output goes, where input comes from, the
// registered plugin namespaces, and the recursion depth counter
// spec.md §5 calls for. Grounded on the teacher's Evaluator struct,
// trimmed to the new Value/Result model.
type Interpreter struct {
	Global  *scope.Scope
	Writer  io.Writer
	Reader  *bufio.Reader
	Plugins map[string]*objects.Namespace

	depth    int
	filePath string
}

// New builds an Interpreter with a fresh global scope, stdout/stdin as
// the default I/O, and no plugins registered. Callers run std.Register
// against Global themselves so eval has no import on std (std imports
// eval's sibling packages, not the other way round).
func New(filePath string) *Interpreter {
	return &Interpreter{
		Global:   scope.New(nil),
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
		Plugins:  map[string]*objects.Namespace{},
		filePath: filePath,
	}
}

func (it *Interpreter) SetWriter(w io.Writer)     { it.Writer = w }
func (it *Interpreter) SetReader(r *bufio.Reader) { it.Reader = r }
func (it *Interpreter) FilePath() string          { return it.filePath }

// InputReader satisfies std.Runtime, giving input()/scanln() builtins
// the same reader the REPL and script-file runner already share.
func (it *Interpreter) InputReader() *bufio.Reader { return it.Reader }

// Call satisfies std.Runtime: it lets builtins like map/filter/reduce
// invoke a script-level function value with already-evaluated args,
// using the top-level context since a native builtin has no AST span
// or call-site context of its own to hand back.
func (it *Interpreter) Call(fn objects.Value, args []objects.Value) (objects.Value, error) {
	r := it.invoke(fn, args, position.Span{}, context.New("<native>"))
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Value, nil
}

func (it *Interpreter) maxRecursion() int64 {
	if v, ok := it.Global.Get(MaxRecursionName); ok {
		if n, ok := v.(*objects.Number); ok {
			return n.IntValue
		}
	}
	return defaultMaxRecursion
}

// Run evaluates a whole program in the global scope under a fresh
// top-level context.
func (it *Interpreter) Run(program *parser.ListNode) Result {
	ctx := context.New("<module>")
	return it.Eval(program, it.Global, ctx)
}

// Eval dispatches a single node to its handler. Every handler that
// recurses into a sub-node must check Result.ShouldReturn() before
// continuing to the next sibling.
func (it *Interpreter) Eval(node parser.Node, sc *scope.Scope, ctx *context.Context) Result {
	switch n := node.(type) {

	case *parser.NumberNode:
		if n.IsFloat {
			return Val(objects.NewNumberFloat(n.Float))
		}
		return Val(objects.NewNumberInt(n.Int))
	case *parser.StringNode:
		return Val(objects.NewString(n.Value))
	case *parser.BoolNode:
		return Val(objects.NewBool(n.Value))
	case *parser.NullNode:
		return Val(objects.NullValue)

	case *parser.ListNode:
		return it.evalListNode(n, sc, ctx)
	case *parser.DictNode:
		return it.evalDictNode(n, sc, ctx)

	case *parser.UnaryNode:
		return it.evalUnary(n, sc, ctx)
	case *parser.BinaryNode:
		return it.evalBinary(n, sc, ctx)
	case *parser.AndNode:
		return it.evalAnd(n, sc, ctx)
	case *parser.OrNode:
		return it.evalOr(n, sc, ctx)

	case *parser.VarAccessNode:
		return it.evalVarAccess(n, sc, ctx)
	case *parser.VarAssignNode:
		return it.evalVarAssign(n, sc, ctx)
	case *parser.AttrAccessNode:
		return it.evalAttrAccess(n, sc, ctx)
	case *parser.AttrAssignNode:
		return it.evalAttrAssign(n, sc, ctx)

	case *parser.CallNode:
		return it.evalCall(n, sc, ctx)
	case *parser.IndexNode:
		return it.evalIndex(n, sc, ctx)

	case *parser.IfNode:
		return it.evalIf(n, sc, ctx)
	case *parser.ForNode:
		return it.evalFor(n, sc, ctx)
	case *parser.WhileNode:
		return it.evalWhile(n, sc, ctx)
	case *parser.SwitchNode:
		return it.evalSwitch(n, sc, ctx)

	case *parser.FunctionNode:
		return it.evalFunctionDef(n, sc, ctx)
	case *parser.ReturnNode:
		return it.evalReturn(n, sc, ctx)
	case *parser.BreakNode:
		return BreakResult()
	case *parser.ContinueNode:
		return ContinueResult()
	case *parser.ExitNode:
		return it.evalExit(n, sc, ctx)

	case *parser.ThrowNode:
		return it.evalThrow(n, sc, ctx)
	case *parser.TryNode:
		return it.evalTry(n, sc, ctx)
	case *parser.AssertNode:
		return it.evalAssert(n, sc, ctx)
	case *parser.DeleteNode:
		return it.evalDelete(n, sc, ctx)

	case *parser.NamespaceNode:
		return it.evalNamespace(n, sc, ctx)
	case *parser.UsingNode:
		return it.evalUsing(n, sc, ctx)
	case *parser.IncludeNode:
		return it.evalInclude(n, sc, ctx)

	default:
		return Fail(errs.Newf(errs.RuntimeError, node.Span(), "unhandled node type %T", node))
	}
}

// evalListNode handles both parse shapes ListNode doubles for: a
// statement block (IsBlock true, yields null unless a child early-exits)
// and a list literal (yields a List of each item's value).
func (it *Interpreter) evalListNode(n *parser.ListNode, sc *scope.Scope, ctx *context.Context) Result {
	if !n.IsBlock {
		items := make([]objects.Value, 0, len(n.Items))
		for _, item := range n.Items {
			r := it.Eval(item, sc, ctx)
			if r.ShouldReturn() {
				return r
			}
			items = append(items, r.Value)
		}
		return Val(objects.NewList(items))
	}
	for _, stmt := range n.Items {
		r := it.Eval(stmt, sc, ctx)
		if r.ShouldReturn() {
			return r
		}
	}
	return Val(objects.NullValue)
}

func (it *Interpreter) evalDictNode(n *parser.DictNode, sc *scope.Scope, ctx *context.Context) Result {
	d := objects.NewDict()
	for i := range n.Keys {
		kr := it.Eval(n.Keys[i], sc, ctx)
		if kr.ShouldReturn() {
			return kr
		}
		vr := it.Eval(n.Values[i], sc, ctx)
		if vr.ShouldReturn() {
			return vr
		}
		d.Set(kr.Value, vr.Value)
	}
	return Val(d)
}
