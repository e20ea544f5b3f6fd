/*
File    : glint/std/map.go
*/

// This file implements the dict builtins: construction and the
// mutation/query methods a script calls on a Dict value. Folds in the
// teacher's former maps.go (duplicate map-manipulation concern - the
// closed Value family has one mapping kind, Dict, where the teacher
// had Map and a second "maps" helper file for the same thing).
package std

import (
	"fmt"

	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/position"
)

func init() {
	simple("dict", dictFn)
	simple("keys", keysFn)
	simple("values", valuesFn)
	simple("items", itemsFn)
	simple("insert", insertFn)
	simple("remove", removeFn)
	simple("has_key", hasKeyFn)
	simple("merge", mergeFn)
}

func asDict(v objects.Value) (*objects.Dict, error) {
	d, ok := v.(*objects.Dict)
	if !ok {
		return nil, fmt.Errorf("expected a dict, got %s", v.Type())
	}
	return d, nil
}

// dictFn builds a Dict from an even-length argument list of
// alternating key, value pairs.
func dictFn(args []objects.Value) (objects.Value, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("dict expects an even number of key/value arguments")
	}
	d := objects.NewDict()
	for i := 0; i < len(args); i += 2 {
		d.Set(args[i], args[i+1])
	}
	return d, nil
}

func keysFn(args []objects.Value) (objects.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(d.Keys))
	for i, k := range d.Keys {
		out[i] = objects.NewString(k)
	}
	return objects.NewList(out), nil
}

func valuesFn(args []objects.Value) (objects.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(d.Keys))
	for i, k := range d.Keys {
		out[i] = d.Pairs[k]
	}
	return objects.NewList(out), nil
}

func itemsFn(args []objects.Value) (objects.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(d.Keys))
	for i, k := range d.Keys {
		out[i] = objects.NewList([]objects.Value{objects.NewString(k), d.Pairs[k]})
	}
	return objects.NewList(out), nil
}

func insertFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("insert expects (dict, key, value)")
	}
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	d.Set(args[1], args[2])
	return d, nil
}

func removeFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("remove expects (dict, key)")
	}
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	k := args[1].String()
	v, ok := d.Pairs[k]
	if !ok {
		return objects.NullValue, nil
	}
	delete(d.Pairs, k)
	for i, kk := range d.Keys {
		if kk == k {
			d.Keys = append(d.Keys[:i], d.Keys[i+1:]...)
			break
		}
	}
	return v, nil
}

func hasKeyFn(args []objects.Value) (objects.Value, error) {
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	ok, err := d.Contains(args[1], position.Span{})
	if err != nil {
		return nil, err
	}
	return objects.NewBool(ok), nil
}

func mergeFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("merge expects (dict, dict)")
	}
	v, err := args[0].BinaryOp(objects.OpPipe, args[1], position.Span{})
	if err != nil {
		return nil, fmt.Errorf("%s", err.Details)
	}
	return v, nil
}
