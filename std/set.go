/*
File    : glint/std/set.go
*/

// This file implements set builtins on top of Dict: the closed Value
// family has no separate Set kind, so a "set" is a Dict whose values
// are all null and whose keys are the set's members - the same
// encoding the teacher's set.go used conceptually, adapted onto Dict
// instead of a dedicated Set GoMixObject.
package std

import (
	"fmt"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("set", setFn)
	simple("set_add", setAddFn)
	simple("set_remove", setRemoveFn)
	simple("set_contains", setContainsFn)
	simple("set_values", valuesFn)
	simple("set_union", setUnionFn)
	simple("set_intersect", setIntersectFn)
}

func setFn(args []objects.Value) (objects.Value, error) {
	d := objects.NewDict()
	for _, a := range args {
		d.Set(a, objects.NullValue)
	}
	return d, nil
}

func setAddFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("set_add expects (set, value)")
	}
	d, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	d.Set(args[1], objects.NullValue)
	return d, nil
}

func setRemoveFn(args []objects.Value) (objects.Value, error) {
	return removeFn(args)
}

func setContainsFn(args []objects.Value) (objects.Value, error) {
	return hasKeyFn(args)
}

// setUnionFn returns a new set containing every member of either set.
func setUnionFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("set_union expects (set, set)")
	}
	a, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asDict(args[1])
	if err != nil {
		return nil, err
	}
	out := objects.NewDict()
	for _, k := range a.Keys {
		out.Set(objects.NewString(k), objects.NullValue)
	}
	for _, k := range b.Keys {
		out.Set(objects.NewString(k), objects.NullValue)
	}
	return out, nil
}

// setIntersectFn returns a new set containing only members present in
// both sets.
func setIntersectFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("set_intersect expects (set, set)")
	}
	a, err := asDict(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asDict(args[1])
	if err != nil {
		return nil, err
	}
	out := objects.NewDict()
	for _, k := range a.Keys {
		if _, ok := b.Pairs[k]; ok {
			out.Set(objects.NewString(k), objects.NullValue)
		}
	}
	return out, nil
}
