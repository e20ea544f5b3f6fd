/*
File    : glint/objects/value.go
*/

// Package objects implements the runtime value family: Null, Bool,
// Number, String, List, Dict, Namespace and Single. Function,
// NativeFunction and MemberFunction live in the function package but
// satisfy Value the same way. Every value owns an attribute map and
// answers to a small set of operator methods that the evaluator
// dispatches binary/unary operations to, keyed by the same operator
// tag the lexer assigns a token.
package objects

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// Kind names a runtime value's dynamic type.
type Kind string

const (
	NullKind      Kind = "null"
	BoolKind      Kind = "bool"
	NumberKind    Kind = "number"
	StringKind    Kind = "string"
	ListKind      Kind = "list"
	DictKind      Kind = "dict"
	FunctionKind  Kind = "function"
	NativeKind    Kind = "native_function"
	MemberKind    Kind = "member_function"
	NamespaceKind Kind = "namespace"
	SingleKind    Kind = "single"
)

// Op identifies an operator method. The evaluator maps a lexer token
// kind to one of these before dispatching to the left operand.
type Op string

const (
	OpAdd    Op = "+"
	OpSub    Op = "-"
	OpMul    Op = "*"
	OpDiv    Op = "/"
	OpFloor  Op = "//"
	OpMod    Op = "%"
	OpPow    Op = "**"
	OpAmp    Op = "&"
	OpPipe   Op = "|"
	OpCaret  Op = "^"
	OpLShift Op = "<<"
	OpRShift Op = ">>"
	OpLT     Op = "<"
	OpLE     Op = "<="
	OpGT     Op = ">"
	OpGE     Op = ">="
	OpEq     Op = "=="
	OpNe     Op = "!="
	OpArrow  Op = "->"
	OpQuest  Op = "?"
	OpAt     Op = "@"
	OpMember Op = "::"

	OpPos    Op = "unary+"
	OpNeg    Op = "unary-"
	OpNot    Op = "not"
	OpXAt    Op = "*@"
	OpInvert Op = "~"
)

// Value is implemented by every runtime value. Operator methods that
// a kind does not support fall back to Base's defaults, which report
// an invalid-operation MathError - mirroring the base-class dispatch
// of the language this evaluator generalizes.
type Value interface {
	Type() Kind
	String() string  // display form, as `print` shows it
	Inspect() string // debug form, e.g. "<int(3)>"
	Truthy() bool
	Attrs() map[string]Value

	BinaryOp(op Op, other Value, span position.Span) (Value, *errs.Error)
	UnaryOp(op Op, span position.Span) (Value, *errs.Error)
	Index(key Value, span position.Span) (Value, *errs.Error)
	Contains(v Value, span position.Span) (bool, *errs.Error)
	Iter(span position.Span) ([]Value, *errs.Error)
}

// Base is embedded by every concrete value: it owns the attribute map
// and the invalid-operation fallbacks for whichever operator methods
// the embedding type does not override. kind is recorded so the
// fallback error messages can name the offending type.
type Base struct {
	kind  Kind
	attrs map[string]Value
}

func (b *Base) Attrs() map[string]Value {
	if b.attrs == nil {
		b.attrs = make(map[string]Value)
	}
	return b.attrs
}

// SetKind records the embedding type's Kind, so Base's fallback
// operator errors can name it. Types defined outside this package
// (function.Function and friends) call this from their constructors
// since they cannot reach the unexported kind field directly.
func (b *Base) SetKind(k Kind) { b.kind = k }

func (b *Base) BinaryOp(op Op, _ Value, span position.Span) (Value, *errs.Error) {
	return nil, errs.Newf(errs.MathError, span, "invalid operation %s for %s", op, b.kind)
}

func (b *Base) UnaryOp(op Op, span position.Span) (Value, *errs.Error) {
	return nil, errs.Newf(errs.MathError, span, "invalid operation %s for %s", op, b.kind)
}

func (b *Base) Index(_ Value, span position.Span) (Value, *errs.Error) {
	return nil, errs.Newf(errs.MathError, span, "%s is not indexable", b.kind)
}

func (b *Base) Contains(_ Value, span position.Span) (bool, *errs.Error) {
	return false, errs.Newf(errs.MathError, span, "%s does not support membership testing", b.kind)
}

func (b *Base) Iter(span position.Span) ([]Value, *errs.Error) {
	return nil, errs.Newf(errs.MathError, span, "%s is not iterable", b.kind)
}

// Equal reports value equality, used by ==/!= and by List membership
// tests (Dict membership compares normalized keys instead).
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *Null:
		return true
	case *Bool:
		return av.Value == b.(*Bool).Value
	case *Number:
		return av.Float() == b.(*Number).Float()
	case *String:
		return av.Value == b.(*String).Value
	case *List:
		bv := b.(*List)
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv := b.(*Dict)
		if len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			bvv, ok := bv.Pairs[k]
			if !ok || !Equal(av.Pairs[k], bvv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
