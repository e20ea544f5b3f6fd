/*
File    : glint/objects/list.go
*/
package objects

import (
	"strings"

	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// List is an ordered, mutable sequence.
type List struct {
	Base
	Items []Value
}

func NewList(items []Value) *List {
	l := &List{Items: items}
	l.kind = ListKind
	return l
}

func (l *List) Type() Kind   { return ListKind }
func (l *List) Truthy() bool { return len(l.Items) > 0 }

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.Inspect()
	}
	return "list(" + strings.Join(parts, ", ") + ")"
}

func (l *List) Inspect() string { return "<" + l.String() + ">" }

func (l *List) UnaryOp(op Op, span position.Span) (Value, *errs.Error) {
	if op == OpInvert {
		rev := make([]Value, len(l.Items))
		for i, v := range l.Items {
			rev[len(l.Items)-1-i] = v
		}
		return NewList(rev), nil
	}
	return l.Base.UnaryOp(op, span)
}

func (l *List) indexAt(idx Value, span position.Span) (Value, *errs.Error) {
	n, ok := asNumber(idx)
	if !ok {
		return nil, errs.New(errs.ListError, span, "list index must be a number")
	}
	i := n.asInt()
	if i < 0 {
		i += int64(len(l.Items))
	}
	if i < 0 || i >= int64(len(l.Items)) {
		return nil, errs.New(errs.ListError, span, "index out of range")
	}
	return l.Items[i], nil
}

func (l *List) Index(key Value, span position.Span) (Value, *errs.Error) {
	return l.indexAt(key, span)
}

func (l *List) Contains(v Value, span position.Span) (bool, *errs.Error) {
	for _, item := range l.Items {
		if Equal(item, v) {
			return true, nil
		}
	}
	return false, nil
}

func (l *List) Iter(span position.Span) ([]Value, *errs.Error) {
	return l.Items, nil
}

func (l *List) BinaryOp(op Op, other Value, span position.Span) (Value, *errs.Error) {
	switch op {
	case OpAdd:
		ol, ok := other.(*List)
		if !ok {
			return nil, errs.Newf(errs.ListError, span, "cannot concatenate list with %s", other.Type())
		}
		out := make([]Value, 0, len(l.Items)+len(ol.Items))
		out = append(out, l.Items...)
		out = append(out, ol.Items...)
		return NewList(out), nil
	case OpMul:
		n, ok := asNumber(other)
		if !ok {
			return nil, errs.New(errs.ListError, span, "list repetition requires a number")
		}
		times := int(n.asInt())
		out := make([]Value, 0, len(l.Items)*max(times, 0))
		for i := 0; i < times; i++ {
			out = append(out, l.Items...)
		}
		return NewList(out), nil
	case OpArrow:
		return l.indexAt(other, span)
	case OpQuest:
		return NewList([]Value{l, other}), nil
	case OpEq:
		return NewBool(Equal(l, other)), nil
	case OpNe:
		return NewBool(!Equal(l, other)), nil
	}
	return l.Base.BinaryOp(op, other, span)
}
