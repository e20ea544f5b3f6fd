/*
File    : glint/function/function.go
*/

// Package function holds the three callable runtime values: Function
// (user-defined, closes over its defining scope), NativeFunction (a
// host-provided Go callback, used to register builtins) and
// MemberFunction (a Function or NativeFunction bound to a receiver,
// produced by attribute access). None of them perform invocation
// themselves - that needs the evaluator, which this package cannot
// import without a cycle - they only carry the data invocation needs.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/parser"
	"github.com/akashmaji946/glint/scope"
)

// Function is a user-defined function: its parameter names, its body
// (an expression or a statement-list ListNode), whether the body's
// value auto-returns, and the scope it closed over at definition time.
type Function struct {
	objects.Base
	Name       string
	ParamNames []string
	Body       parser.Node
	AutoReturn bool
	Closure    *scope.Scope
}

func New(name string, params []string, body parser.Node, autoReturn bool, closure *scope.Scope) *Function {
	f := &Function{Name: name, ParamNames: params, Body: body, AutoReturn: autoReturn, Closure: closure}
	f.SetKind(objects.FunctionKind)
	return f
}

func (f *Function) Type() objects.Kind { return objects.FunctionKind }
func (f *Function) Truthy() bool       { return true }

func (f *Function) displayName() string {
	if f.Name == "" {
		return "<anonymous>"
	}
	return f.Name
}

func (f *Function) String() string {
	return fmt.Sprintf("function(%s)", f.displayName())
}

func (f *Function) Inspect() string {
	return fmt.Sprintf("<function[%s(%s)]>", f.displayName(), strings.Join(f.ParamNames, ", "))
}

// Arity is the number of positional parameters this function accepts.
func (f *Function) Arity() int { return len(f.ParamNames) }

// NativeFn is the Go-side implementation behind a NativeFunction.
type NativeFn func(args []objects.Value) (objects.Value, error)

// NativeFunction wraps a host-provided Go callback as a callable
// value, used by every builtin registered in the std package.
type NativeFunction struct {
	objects.Base
	Name string
	Fn   NativeFn
}

func NewNative(name string, fn NativeFn) *NativeFunction {
	n := &NativeFunction{Name: name, Fn: fn}
	n.SetKind(objects.NativeKind)
	return n
}

func (n *NativeFunction) Type() objects.Kind  { return objects.NativeKind }
func (n *NativeFunction) Truthy() bool        { return true }
func (n *NativeFunction) String() string      { return fmt.Sprintf("native_function(%s)", n.Name) }
func (n *NativeFunction) Inspect() string     { return fmt.Sprintf("<native_function(%s)>", n.Name) }

// Callable is satisfied by Function and NativeFunction: anything the
// evaluator can invoke directly, before MemberFunction receiver
// prepending is considered.
type Callable interface {
	objects.Value
}

// MemberFunction is produced by attribute access of a Function or
// NativeFunction through a non-Namespace receiver: at call time the
// receiver is prepended to the argument list.
type MemberFunction struct {
	objects.Base
	Receiver objects.Value
	Inner    Callable
}

func NewMember(receiver objects.Value, inner Callable) *MemberFunction {
	m := &MemberFunction{Receiver: receiver, Inner: inner}
	m.SetKind(objects.MemberKind)
	return m
}

func (m *MemberFunction) Type() objects.Kind { return objects.MemberKind }
func (m *MemberFunction) Truthy() bool       { return true }
func (m *MemberFunction) String() string {
	return fmt.Sprintf("member_function(%s)", m.Inner.String())
}
func (m *MemberFunction) Inspect() string {
	return fmt.Sprintf("<member_function(%s)>", m.Inner.Inspect())
}

// Bind prepends the receiver to an argument list, the rule every
// MemberFunction call follows.
func (m *MemberFunction) Bind(args []objects.Value) []objects.Value {
	return append([]objects.Value{m.Receiver}, args...)
}
