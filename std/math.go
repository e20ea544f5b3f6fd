/*
File    : glint/std/math.go
*/

// This file defines math builtins: absolute value, min/max, rounding,
// power/root, trigonometry, and logarithms, plus the random-number and
// arbitrary-precision decimal builtins SPEC_FULL.md's domain stack
// calls for. Grounded on the teacher's math.go, generalized to accept
// any Number (the closed Value family doesn't distinguish Integer and
// Float types the way the teacher did) and to preserve integer-ness
// where the operation is exact.
package std

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/akashmaji946/glint/function"
	"github.com/akashmaji946/glint/objects"
	"github.com/shopspring/decimal"
)

func init() {
	simple("abs", absFn)
	simple("min", minFn)
	simple("max", maxFn)
	simple("floor", floorFn)
	simple("ceil", ceilFn)
	simple("round", roundFn)
	simple("sqrt", sqrtFn)
	simple("pow", powFn)
	simple("sin", sinFn)
	simple("cos", cosFn)
	simple("tan", tanFn)
	simple("asin", asinFn)
	simple("acos", acosFn)
	simple("atan", atanFn)
	simple("atan2", atan2Fn)
	simple("log", logFn)
	simple("log10", log10Fn)
	simple("exp", expFn)

	simple("random", randomFn)
	simple("randint", randintFn)
	simple("choice", choiceFn)

	simple("decimal", decimalFn)
}

func asFloatArg(v objects.Value) (float64, error) {
	n, ok := v.(*objects.Number)
	if !ok {
		return 0, fmt.Errorf("expected a number, got %s", v.Type())
	}
	return n.Float(), nil
}

func absFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("abs expects 1 argument, got %d", len(args))
	}
	n, ok := args[0].(*objects.Number)
	if !ok {
		return nil, fmt.Errorf("abs expects a number, got %s", args[0].Type())
	}
	if n.IsInt {
		if n.IntValue < 0 {
			return objects.NewNumberInt(-n.IntValue), nil
		}
		return n, nil
	}
	return objects.NewNumberFloat(math.Abs(n.FloatValue)), nil
}

func minFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("min expects 2 arguments, got %d", len(args))
	}
	a, ok1 := args[0].(*objects.Number)
	b, ok2 := args[1].(*objects.Number)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("min expects numbers, got %s and %s", args[0].Type(), args[1].Type())
	}
	if a.Float() <= b.Float() {
		return a, nil
	}
	return b, nil
}

func maxFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("max expects 2 arguments, got %d", len(args))
	}
	a, ok1 := args[0].(*objects.Number)
	b, ok2 := args[1].(*objects.Number)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("max expects numbers, got %s and %s", args[0].Type(), args[1].Type())
	}
	if a.Float() >= b.Float() {
		return a, nil
	}
	return b, nil
}

func floorFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberInt(int64(math.Floor(f))), nil
}

func ceilFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberInt(int64(math.Ceil(f))), nil
}

// roundFn rounds to an optional number of decimal places, defaulting
// to 0 (a whole number), matching the teacher's round(value, [precision]).
func roundFn(args []objects.Value) (objects.Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("round expects 1 or 2 arguments, got %d", len(args))
	}
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	precision := 0
	if len(args) == 2 {
		precision = int(asIntArg(args[1]))
	}
	factor := math.Pow(10, float64(precision))
	rounded := math.Round(f*factor) / factor
	if precision <= 0 {
		return objects.NewNumberInt(int64(rounded)), nil
	}
	return objects.NewNumberFloat(rounded), nil
}

func sqrtFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	if f < 0 {
		return nil, fmt.Errorf("cannot compute square root of a negative number")
	}
	return objects.NewNumberFloat(math.Sqrt(f)), nil
}

func powFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
	}
	base, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asFloatArg(args[1])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Pow(base, exp)), nil
}

func sinFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Sin(f)), nil
}

func cosFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Cos(f)), nil
}

func tanFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Tan(f)), nil
}

func asinFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Asin(f)), nil
}

func acosFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Acos(f)), nil
}

func atanFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Atan(f)), nil
}

func atan2Fn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("atan2 expects 2 arguments, got %d", len(args))
	}
	y, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	x, err := asFloatArg(args[1])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Atan2(y, x)), nil
}

func logFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Log(f)), nil
}

func log10Fn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Log10(f)), nil
}

func expFn(args []objects.Value) (objects.Value, error) {
	f, err := asFloatArg(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberFloat(math.Exp(f)), nil
}

// randomFn returns a float64 in [0.0, 1.0), grounded on
// original_source/KittenScript/lib/randoms.py's random(). math/rand/v2
// is used directly rather than a pack dependency: no library in the
// retrieval pack covers pseudo-random number generation.
func randomFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("random expects 0 arguments, got %d", len(args))
	}
	return objects.NewNumberFloat(rand.Float64()), nil
}

func randintFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("randint expects 2 arguments (min, max), got %d", len(args))
	}
	lo := asIntArg(args[0])
	hi := asIntArg(args[1])
	if lo > hi {
		return nil, fmt.Errorf("randint: min cannot be greater than max")
	}
	return objects.NewNumberInt(lo + rand.Int64N(hi-lo+1)), nil
}

func choiceFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("choice expects 1 argument (list), got %d", len(args))
	}
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, fmt.Errorf("choice: list is empty")
	}
	return l.Items[rand.IntN(len(l.Items))], nil
}

// decimalFn builds an arbitrary-precision decimal from a number or
// numeral string, wiring github.com/shopspring/decimal into the
// standard library per SPEC_FULL.md's domain-stack section. The
// language's Number model stays float64/int64-backed; decimal() is an
// opt-in precision tool for scripts that need it, not a replacement
// for the core numeric type. The result is a Single wrapping the
// decimal.Decimal, carrying add/sub/mul/div/round member functions
// bound to their receiver by attribute access (eval.bindMember).
func decimalFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("decimal expects 1 argument, got %d", len(args))
	}
	d, err := asDecimal(args[0])
	if err != nil {
		return nil, err
	}
	return newDecimalSingle(d), nil
}

// asDecimal coerces a Number, numeral String, or decimal-wrapped Single
// into a decimal.Decimal.
func asDecimal(v objects.Value) (decimal.Decimal, error) {
	switch t := v.(type) {
	case *objects.Single:
		if d, ok := t.Native.(decimal.Decimal); ok {
			return d, nil
		}
	case *objects.Number:
		if t.IsInt {
			return decimal.NewFromInt(t.IntValue), nil
		}
		return decimal.NewFromFloat(t.FloatValue), nil
	case *objects.String:
		d, err := decimal.NewFromString(t.Value)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("decimal: %w", err)
		}
		return d, nil
	}
	return decimal.Decimal{}, fmt.Errorf("expected a decimal, number, or numeral string, got %s", v.Type())
}

func newDecimalSingle(d decimal.Decimal) *objects.Single {
	s := objects.NewSingle("decimal", d)
	s.Attrs()["add"] = function.NewNative("add", decimalBinaryOp(decimal.Decimal.Add))
	s.Attrs()["sub"] = function.NewNative("sub", decimalBinaryOp(decimal.Decimal.Sub))
	s.Attrs()["mul"] = function.NewNative("mul", decimalBinaryOp(decimal.Decimal.Mul))
	s.Attrs()["div"] = function.NewNative("div", decimalDivFn)
	s.Attrs()["round"] = function.NewNative("round", decimalRoundFn)
	return s
}

// decimalReceiver extracts the decimal.Decimal an add/sub/mul/div/round
// member function was called on (args[0], prepended by MemberFunction.Bind).
func decimalReceiver(args []objects.Value) (decimal.Decimal, error) {
	if len(args) == 0 {
		return decimal.Decimal{}, fmt.Errorf("decimal method called with no receiver")
	}
	single, ok := args[0].(*objects.Single)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("decimal method called on non-decimal receiver")
	}
	d, ok := single.Native.(decimal.Decimal)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("decimal method called on non-decimal receiver")
	}
	return d, nil
}

// decimalBinaryOp adapts a decimal.Decimal method (Add/Sub/Mul) into a
// two-argument (receiver, operand) NativeFn.
func decimalBinaryOp(op func(a, b decimal.Decimal) decimal.Decimal) function.NativeFn {
	return func(args []objects.Value) (objects.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("decimal method expects 1 argument, got %d", len(args)-1)
		}
		self, err := decimalReceiver(args)
		if err != nil {
			return nil, err
		}
		other, err := asDecimal(args[1])
		if err != nil {
			return nil, err
		}
		return newDecimalSingle(op(self, other)), nil
	}
}

func decimalDivFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("div expects 1 argument, got %d", len(args)-1)
	}
	self, err := decimalReceiver(args)
	if err != nil {
		return nil, err
	}
	other, err := asDecimal(args[1])
	if err != nil {
		return nil, err
	}
	if other.IsZero() {
		return nil, fmt.Errorf("decimal: division by zero")
	}
	return newDecimalSingle(self.Div(other)), nil
}

// decimalRoundFn backs the round(places) member function: places is the
// number of decimal digits to round to, same convention as
// decimal.Decimal.Round.
func decimalRoundFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("round expects 1 argument, got %d", len(args)-1)
	}
	self, err := decimalReceiver(args)
	if err != nil {
		return nil, err
	}
	places, ok := args[1].(*objects.Number)
	if !ok {
		return nil, fmt.Errorf("round expects an integer number of places, got %s", args[1].Type())
	}
	return newDecimalSingle(self.Round(int32(asIntArg(places)))), nil
}
