/*
File    : glint/objects/number.go
*/
package objects

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// Number unifies integer and floating-point values: IsInt tags which
// of IntValue/FloatValue is authoritative, and Float always yields a
// usable float64 regardless of which one is set.
type Number struct {
	Base
	IsInt      bool
	IntValue   int64
	FloatValue float64
}

func NewNumberInt(v int64) *Number {
	n := &Number{IsInt: true, IntValue: v}
	n.kind = NumberKind
	return n
}

func NewNumberFloat(v float64) *Number {
	n := &Number{IsInt: false, FloatValue: v}
	n.kind = NumberKind
	return n
}

func (n *Number) Float() float64 {
	if n.IsInt {
		return float64(n.IntValue)
	}
	return n.FloatValue
}

func (n *Number) Type() Kind   { return NumberKind }
func (n *Number) Truthy() bool { return n.Float() != 0 }

func (n *Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(n.IntValue, 10)
	}
	return strconv.FormatFloat(n.FloatValue, 'g', -1, 64)
}

func (n *Number) Inspect() string {
	if n.IsInt {
		return fmt.Sprintf("<int(%d)>", n.IntValue)
	}
	return fmt.Sprintf("<float(%s)>", n.String())
}

func (n *Number) UnaryOp(op Op, span position.Span) (Value, *errs.Error) {
	switch op {
	case OpPos:
		return n, nil
	case OpNeg:
		if n.IsInt {
			return NewNumberInt(-n.IntValue), nil
		}
		return NewNumberFloat(-n.FloatValue), nil
	case OpNot:
		return NewBool(!n.Truthy()), nil
	case OpXAt:
		return NewNumberInt(int64(reflect.ValueOf(n).Pointer())), nil
	}
	return n.Base.UnaryOp(op, span)
}

func asNumber(v Value) (*Number, bool) {
	num, ok := v.(*Number)
	return num, ok
}

func (n *Number) arith(op Op, other *Number, span position.Span) (Value, *errs.Error) {
	bothInt := n.IsInt && other.IsInt
	switch op {
	case OpAdd:
		if bothInt {
			return NewNumberInt(n.IntValue + other.IntValue), nil
		}
		return NewNumberFloat(n.Float() + other.Float()), nil
	case OpSub:
		if bothInt {
			return NewNumberInt(n.IntValue - other.IntValue), nil
		}
		return NewNumberFloat(n.Float() - other.Float()), nil
	case OpMul:
		if bothInt {
			return NewNumberInt(n.IntValue * other.IntValue), nil
		}
		return NewNumberFloat(n.Float() * other.Float()), nil
	case OpDiv:
		if other.Float() == 0 {
			return nil, errs.New(errs.MathError, span, "division by zero")
		}
		return NewNumberFloat(n.Float() / other.Float()), nil
	case OpFloor:
		if other.Float() == 0 {
			return nil, errs.New(errs.MathError, span, "division by zero")
		}
		if bothInt {
			q := n.IntValue / other.IntValue
			if (n.IntValue%other.IntValue != 0) && ((n.IntValue < 0) != (other.IntValue < 0)) {
				q--
			}
			return NewNumberInt(q), nil
		}
		return NewNumberFloat(math.Floor(n.Float() / other.Float())), nil
	case OpMod:
		if other.Float() == 0 {
			return nil, errs.New(errs.MathError, span, "division by zero")
		}
		if bothInt {
			m := n.IntValue % other.IntValue
			if m != 0 && (m < 0) != (other.IntValue < 0) {
				m += other.IntValue
			}
			return NewNumberInt(m), nil
		}
		return NewNumberFloat(math.Mod(n.Float(), other.Float())), nil
	case OpPow:
		if bothInt && other.IntValue >= 0 {
			res := int64(1)
			for i := int64(0); i < other.IntValue; i++ {
				res *= n.IntValue
			}
			return NewNumberInt(res), nil
		}
		return NewNumberFloat(math.Pow(n.Float(), other.Float())), nil
	case OpAmp:
		return NewNumberInt(n.asInt() & other.asInt()), nil
	case OpPipe:
		return NewNumberInt(n.asInt() | other.asInt()), nil
	case OpCaret:
		return NewNumberInt(n.asInt() ^ other.asInt()), nil
	case OpLShift:
		return NewNumberInt(n.asInt() << uint(other.asInt())), nil
	case OpRShift:
		return NewNumberInt(n.asInt() >> uint(other.asInt())), nil
	case OpLT:
		return NewBool(n.Float() < other.Float()), nil
	case OpLE:
		return NewBool(n.Float() <= other.Float()), nil
	case OpGT:
		return NewBool(n.Float() > other.Float()), nil
	case OpGE:
		return NewBool(n.Float() >= other.Float()), nil
	case OpEq:
		return NewBool(n.Float() == other.Float()), nil
	case OpNe:
		return NewBool(n.Float() != other.Float()), nil
	case OpQuest:
		return NewList([]Value{n, other}), nil
	}
	return nil, errs.Newf(errs.MathError, span, "invalid operation %s for number", op)
}

func (n *Number) asInt() int64 {
	if n.IsInt {
		return n.IntValue
	}
	return int64(n.FloatValue)
}

func (n *Number) BinaryOp(op Op, other Value, span position.Span) (Value, *errs.Error) {
	if op == OpEq || op == OpNe {
		if ov, ok := asNumber(other); ok {
			return n.arith(op, ov, span)
		}
		return NewBool(op == OpNe), nil
	}
	ov, ok := asNumber(other)
	if !ok {
		return nil, errs.Newf(errs.MathError, span, "cannot apply %s between number and %s", op, other.Type())
	}
	return n.arith(op, ov, span)
}
