/*
File    : glint/objects/singletons.go
*/
package objects

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// Null is the one null value. Every comparison node that would
// otherwise allocate a fresh Null should use the NullValue singleton
// instead so `null == null` holds by identity as well as by value.
type Null struct{ Base }

func newNull() *Null {
	n := &Null{}
	n.kind = NullKind
	return n
}

// NullValue is the shared singleton null.
var NullValue = newNull()

func (n *Null) Type() Kind    { return NullKind }
func (n *Null) String() string  { return "null" }
func (n *Null) Inspect() string { return "<null()>" }
func (n *Null) Truthy() bool    { return false }

func (n *Null) BinaryOp(op Op, other Value, span position.Span) (Value, *errs.Error) {
	switch op {
	case OpEq:
		return NewBool(other.Type() == NullKind), nil
	case OpNe:
		return NewBool(other.Type() != NullKind), nil
	}
	return n.Base.BinaryOp(op, other, span)
}

// Bool is a boolean value.
type Bool struct {
	Base
	Value bool
}

func NewBool(v bool) *Bool {
	b := &Bool{Value: v}
	b.kind = BoolKind
	return b
}

var (
	True  = NewBool(true)
	False = NewBool(false)
)

func (b *Bool) Type() Kind   { return BoolKind }
func (b *Bool) Truthy() bool { return b.Value }
func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Bool) Inspect() string { return "<bool(" + b.String() + ")>" }

func (b *Bool) UnaryOp(op Op, span position.Span) (Value, *errs.Error) {
	if op == OpInvert || op == OpNot {
		return NewBool(!b.Value), nil
	}
	return b.Base.UnaryOp(op, span)
}

func (b *Bool) BinaryOp(op Op, other Value, span position.Span) (Value, *errs.Error) {
	switch op {
	case OpEq:
		return NewBool(Equal(b, other)), nil
	case OpNe:
		return NewBool(!Equal(b, other)), nil
	}
	return b.Base.BinaryOp(op, other, span)
}
