/*
File    : glint/std/format.go
*/

// This file defines the type conversion builtins: to_int, to_float,
// to_bool (to_string lives in common.go). Grounded on the teacher's format.go, rebuilt
// against objects.Value - there is no separate Char kind in the closed
// Value family (a "character" is just a one-rune String), so to_char
// has no counterpart here.
package std

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("to_int", toIntFn)
	simple("to_float", toFloatFn)
	simple("to_bool", toBoolFn)
}

func toIntFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("to_int expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *objects.Number:
		if v.IsInt {
			return v, nil
		}
		return objects.NewNumberInt(int64(v.FloatValue)), nil
	case *objects.Bool:
		if v.Value {
			return objects.NewNumberInt(1), nil
		}
		return objects.NewNumberInt(0), nil
	case *objects.String:
		n, err := strconv.ParseInt(v.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert string to int: %w", err)
		}
		return objects.NewNumberInt(n), nil
	}
	return nil, fmt.Errorf("cannot convert %s to int", args[0].Type())
}

func toFloatFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("to_float expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *objects.Number:
		return objects.NewNumberFloat(v.Float()), nil
	case *objects.Bool:
		if v.Value {
			return objects.NewNumberFloat(1.0), nil
		}
		return objects.NewNumberFloat(0.0), nil
	case *objects.String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert string to float: %w", err)
		}
		return objects.NewNumberFloat(f), nil
	}
	return nil, fmt.Errorf("cannot convert %s to float", args[0].Type())
}

func toBoolFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("to_bool expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *objects.Bool:
		return v, nil
	case *objects.Number:
		return objects.NewBool(v.Float() != 0), nil
	case *objects.String:
		b, err := strconv.ParseBool(v.Value)
		if err != nil {
			return nil, fmt.Errorf("could not convert string to bool: %w", err)
		}
		return objects.NewBool(b), nil
	}
	return objects.NewBool(args[0].Truthy()), nil
}
