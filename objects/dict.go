/*
File    : glint/objects/dict.go
*/
package objects

import (
	"strings"

	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// Dict is an insertion-ordered mapping. Keys are the display form of
// whatever value indexed them (Number/String/Bool), so lookups are
// by value rather than by reference.
type Dict struct {
	Base
	Pairs map[string]Value
	Keys  []string // insertion order, mirrors Pairs' keys
}

func NewDict() *Dict {
	d := &Dict{Pairs: make(map[string]Value)}
	d.kind = DictKind
	return d
}

func keyOf(v Value) string {
	return v.String()
}

// Set inserts or updates key->value, appending to Keys only on first
// insertion so iteration order matches insertion order.
func (d *Dict) Set(key Value, value Value) {
	k := keyOf(key)
	if _, exists := d.Pairs[k]; !exists {
		d.Keys = append(d.Keys, k)
	}
	d.Pairs[k] = value
}

func (d *Dict) Type() Kind   { return DictKind }
func (d *Dict) Truthy() bool { return len(d.Keys) > 0 }

func (d *Dict) String() string {
	parts := make([]string, len(d.Keys))
	for i, k := range d.Keys {
		parts[i] = k + ": " + d.Pairs[k].Inspect()
	}
	return "dict{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) Inspect() string { return "<" + d.String() + ">" }

func (d *Dict) UnaryOp(op Op, span position.Span) (Value, *errs.Error) {
	if op == OpInvert {
		inv := NewDict()
		for _, k := range d.Keys {
			inv.Set(d.Pairs[k], NewString(k))
		}
		return inv, nil
	}
	return d.Base.UnaryOp(op, span)
}

func (d *Dict) Index(key Value, span position.Span) (Value, *errs.Error) {
	k := keyOf(key)
	v, ok := d.Pairs[k]
	if !ok {
		return nil, errs.Newf(errs.DictError, span, "key %s not in dict", k)
	}
	return v, nil
}

func (d *Dict) Contains(v Value, span position.Span) (bool, *errs.Error) {
	_, ok := d.Pairs[keyOf(v)]
	return ok, nil
}

func (d *Dict) Iter(span position.Span) ([]Value, *errs.Error) {
	out := make([]Value, len(d.Keys))
	for i, k := range d.Keys {
		out[i] = NewList([]Value{NewString(k), d.Pairs[k]})
	}
	return out, nil
}

func (d *Dict) BinaryOp(op Op, other Value, span position.Span) (Value, *errs.Error) {
	switch op {
	case OpPipe:
		od, ok := other.(*Dict)
		if !ok {
			return nil, errs.New(errs.DictError, span, "not a dictionary")
		}
		merged := NewDict()
		for _, k := range d.Keys {
			merged.Set(NewString(k), d.Pairs[k])
		}
		for _, k := range od.Keys {
			merged.Set(NewString(k), od.Pairs[k])
		}
		return merged, nil
	case OpArrow:
		return d.Index(other, span)
	case OpEq:
		return NewBool(Equal(d, other)), nil
	case OpNe:
		return NewBool(!Equal(d, other)), nil
	}
	return d.Base.BinaryOp(op, other, span)
}
