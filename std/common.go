/*
File    : glint/std/common.go
*/

// This file defines the small set of builtins every program gets for
// free: output, identity/introspection, and the range() constructor
// for inclusive numeric sequences. Grounded on the teacher's
// common.go, rebuilt against objects.Value instead of GoMixObject.
package std

import (
	"fmt"
	"reflect"

	"github.com/akashmaji946/glint/objects"
	"github.com/google/uuid"
)

func init() {
	simple("print", printFn)
	simple("println", printlnFn)
	simple("printf", printfFn)

	simple("length", lengthFn)
	simple("size", lengthFn)
	simple("to_string", toStringFn)
	simple("typeof", typeofFn)
	simple("range", rangeFn)

	simple("addr", addrFn)
	simple("is_same_ref", isSameRefFn)
	simple("uuid", uuidFn)
}

// output goes through a package-level hook the interpreter points at
// its own Writer once at startup (SetOutput), since builtins are
// registered once but must honor a REPL's redirected writer too.
var output = func(s string) { fmt.Print(s) }

// SetOutput redirects print/println/printf output.
func SetOutput(w func(string)) { output = w }

func printFn(args []objects.Value) (objects.Value, error) {
	for _, a := range args {
		output(a.String())
	}
	return objects.NullValue, nil
}

func printlnFn(args []objects.Value) (objects.Value, error) {
	for _, a := range args {
		output(a.String())
	}
	output("\n")
	return objects.NullValue, nil
}

func printfFn(args []objects.Value) (objects.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("printf requires a format string")
	}
	format, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("printf requires a string format")
	}
	rest := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		rest[i] = a.String()
	}
	output(fmt.Sprintf(format.Value, rest...))
	return objects.NullValue, nil
}

func lengthFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("length expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *objects.String:
		return objects.NewNumberInt(int64(len([]rune(v.Value)))), nil
	case *objects.List:
		return objects.NewNumberInt(int64(len(v.Items))), nil
	case *objects.Dict:
		return objects.NewNumberInt(int64(len(v.Keys))), nil
	}
	return nil, fmt.Errorf("length not supported for %s", args[0].Type())
}

func toStringFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("to_string expects 1 argument")
	}
	return objects.NewString(args[0].String()), nil
}

func typeofFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("typeof expects 1 argument")
	}
	return objects.NewString(string(args[0].Type())), nil
}

// rangeFn builds an inclusive [start, end] List of Numbers, matching
// the teacher's inclusive range() builtin (distinct from `for`'s
// exclusive-end direction rule, which the evaluator handles directly).
func rangeFn(args []objects.Value) (objects.Value, error) {
	var start, end, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		end = asIntArg(args[0])
	case 2:
		start, end = asIntArg(args[0]), asIntArg(args[1])
	case 3:
		start, end, step = asIntArg(args[0]), asIntArg(args[1]), asIntArg(args[2])
	default:
		return nil, fmt.Errorf("range expects 1 to 3 arguments, got %d", len(args))
	}
	if step == 0 {
		return nil, fmt.Errorf("range step cannot be 0")
	}
	var items []objects.Value
	if step > 0 {
		for i := start; i <= end; i += step {
			items = append(items, objects.NewNumberInt(i))
		}
	} else {
		for i := start; i >= end; i += step {
			items = append(items, objects.NewNumberInt(i))
		}
	}
	return objects.NewList(items), nil
}

func asIntArg(v objects.Value) int64 {
	if n, ok := v.(*objects.Number); ok {
		if n.IsInt {
			return n.IntValue
		}
		return int64(n.FloatValue)
	}
	return 0
}

// addrFn exposes object identity the same way *@ (OpXAt) does, grounded
// on the Python original's id(self).
func addrFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("addr expects 1 argument")
	}
	return objects.NewNumberInt(int64(reflect.ValueOf(args[0]).Pointer())), nil
}

func isSameRefFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("is_same_ref expects 2 arguments")
	}
	return objects.NewBool(reflect.ValueOf(args[0]).Pointer() == reflect.ValueOf(args[1]).Pointer()), nil
}

// uuidFn backs the uuid() builtin, wiring github.com/google/uuid into
// the standard library per SPEC_FULL.md's domain-stack section.
func uuidFn(args []objects.Value) (objects.Value, error) {
	return objects.NewString(uuid.NewString()), nil
}
