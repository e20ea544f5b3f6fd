/*
File    : glint/objects/string.go
*/
package objects

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// String is an immutable text value.
type String struct {
	Base
	Value string
}

func NewString(v string) *String {
	s := &String{Value: v}
	s.kind = StringKind
	return s
}

func (s *String) Type() Kind    { return StringKind }
func (s *String) String() string  { return s.Value }
func (s *String) Truthy() bool    { return s.Value != "" }
func (s *String) Inspect() string { return fmt.Sprintf("<string(%s)>", s.Value) }

func (s *String) UnaryOp(op Op, span position.Span) (Value, *errs.Error) {
	if op == OpInvert || op == OpNeg {
		runes := []rune(s.Value)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return NewString(string(runes)), nil
	}
	if op == OpNot {
		return NewBool(!s.Truthy()), nil
	}
	return s.Base.UnaryOp(op, span)
}

func (s *String) indexAt(idx Value, span position.Span) (Value, *errs.Error) {
	n, ok := asNumber(idx)
	if !ok {
		return nil, errs.New(errs.RuntimeError, span, "string index must be a number")
	}
	runes := []rune(s.Value)
	i := n.asInt()
	if i < 0 {
		i += int64(len(runes))
	}
	if i < 0 || i >= int64(len(runes)) {
		return nil, errs.New(errs.RuntimeError, span, "string index out of range")
	}
	return NewString(string(runes[i])), nil
}

func (s *String) Index(key Value, span position.Span) (Value, *errs.Error) {
	return s.indexAt(key, span)
}

func (s *String) Contains(v Value, span position.Span) (bool, *errs.Error) {
	sub, ok := v.(*String)
	if !ok {
		return false, errs.New(errs.RuntimeError, span, "membership test against string requires a string")
	}
	return strings.Contains(s.Value, sub.Value), nil
}

func (s *String) Iter(span position.Span) ([]Value, *errs.Error) {
	runes := []rune(s.Value)
	out := make([]Value, len(runes))
	for i, r := range runes {
		out[i] = NewString(string(r))
	}
	return out, nil
}

func (s *String) BinaryOp(op Op, other Value, span position.Span) (Value, *errs.Error) {
	switch op {
	case OpAdd:
		os, ok := other.(*String)
		if !ok {
			return nil, errs.Newf(errs.RuntimeError, span, "cannot concatenate string with %s", other.Type())
		}
		return NewString(s.Value + os.Value), nil
	case OpMul:
		n, ok := asNumber(other)
		if !ok {
			return nil, errs.New(errs.RuntimeError, span, "string repetition requires a number")
		}
		return NewString(strings.Repeat(s.Value, int(n.asInt()))), nil
	case OpDiv, OpArrow:
		return s.indexAt(other, span)
	case OpEq:
		return NewBool(Equal(s, other)), nil
	case OpNe:
		return NewBool(!Equal(s, other)), nil
	case OpLT, OpLE, OpGT, OpGE:
		os, ok := other.(*String)
		if !ok {
			return nil, errs.Newf(errs.RuntimeError, span, "cannot compare string with %s", other.Type())
		}
		return NewBool(compareOp(op, strings.Compare(s.Value, os.Value))), nil
	}
	return s.Base.BinaryOp(op, other, span)
}

func compareOp(op Op, cmp int) bool {
	switch op {
	case OpLT:
		return cmp < 0
	case OpLE:
		return cmp <= 0
	case OpGT:
		return cmp > 0
	case OpGE:
		return cmp >= 0
	}
	return false
}
