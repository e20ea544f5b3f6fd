/*
File    : glint/std/list.go
*/

// This file implements the list builtins: construction and the
// mutation/query methods a script calls on a List value. Folds in the
// teacher's former arrays.go (the closed Value family has one ordered
// sequence kind, List, where the teacher had separate Array/List
// concerns) and tuple.go (a "tuple" is just a List built by this
// constructor - spec.md's Value family has no separate immutable-tuple
// kind, so tuple() is a naming convenience, not a new type).
package std

import (
	"fmt"
	"sort"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("list", listFn)
	simple("tuple", listFn)

	simple("push", pushFn)
	simple("pop", popFn)
	simple("shift", shiftFn)
	simple("unshift", unshiftFn)
	simple("reverse", reverseFn)
	simple("contains", containsFn)
	simple("index", indexFn)
	simple("clone", cloneFn)
	simple("flatten", flattenFn)
	simple("join", joinFn)

	register("sort", sortFn)
	register("sorted", sortedFn)
	register("map", mapFn)
	register("filter", filterFn)
	register("reduce", reduceFn)
	register("find", findFn)
	register("some", someFn)
	register("every", everyFn)
}

func listFn(args []objects.Value) (objects.Value, error) {
	items := make([]objects.Value, len(args))
	copy(items, args)
	return objects.NewList(items), nil
}

func asList(v objects.Value) (*objects.List, error) {
	l, ok := v.(*objects.List)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %s", v.Type())
	}
	return l, nil
}

func pushFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("push expects (list, value)")
	}
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	l.Items = append(l.Items, args[1])
	return l, nil
}

func popFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, fmt.Errorf("pop from empty list")
	}
	last := l.Items[len(l.Items)-1]
	l.Items = l.Items[:len(l.Items)-1]
	return last, nil
}

func shiftFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, fmt.Errorf("shift from empty list")
	}
	first := l.Items[0]
	l.Items = l.Items[1:]
	return first, nil
}

func unshiftFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("unshift expects (list, value)")
	}
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	l.Items = append([]objects.Value{args[1]}, l.Items...)
	return l, nil
}

func reverseFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(l.Items))
	for i, v := range l.Items {
		out[len(l.Items)-1-i] = v
	}
	return objects.NewList(out), nil
}

func containsFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	for _, item := range l.Items {
		if objects.Equal(item, args[1]) {
			return objects.NewBool(true), nil
		}
	}
	return objects.NewBool(false), nil
}

func indexFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	for i, item := range l.Items {
		if objects.Equal(item, args[1]) {
			return objects.NewNumberInt(int64(i)), nil
		}
	}
	return objects.NewNumberInt(-1), nil
}

func cloneFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(l.Items))
	copy(out, l.Items)
	return objects.NewList(out), nil
}

func flattenFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	var out []objects.Value
	for _, item := range l.Items {
		if sub, ok := item.(*objects.List); ok {
			out = append(out, sub.Items...)
		} else {
			out = append(out, item)
		}
	}
	return objects.NewList(out), nil
}

func joinFn(args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	sep := ""
	if len(args) > 1 {
		if s, ok := args[1].(*objects.String); ok {
			sep = s.Value
		}
	}
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return objects.NewString(out), nil
}

// sortWith orders items in place via fn(a, b) -> bool ("a before b"),
// called back through rt the same way the teacher's csort used its
// Runtime.CallFunction hook.
func sortWith(rt Runtime, items []objects.Value, fn objects.Value) error {
	var sortErr error
	sort.SliceStable(items, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		res, err := rt.Call(fn, []objects.Value{items[i], items[j]})
		if err != nil {
			sortErr = err
			return false
		}
		return res.Truthy()
	})
	return sortErr
}

func defaultLess(items []objects.Value) func(i, j int) bool {
	return func(i, j int) bool {
		switch a := items[i].(type) {
		case *objects.Number:
			return a.Float() < items[j].(*objects.Number).Float()
		case *objects.String:
			return a.Value < items[j].(*objects.String).Value
		default:
			return a.String() < items[j].String()
		}
	}
}

func sortFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) > 1 {
		if err := sortWith(rt, l.Items, args[1]); err != nil {
			return nil, err
		}
		return l, nil
	}
	sort.SliceStable(l.Items, defaultLess(l.Items))
	return l, nil
}

func sortedFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(l.Items))
	copy(out, l.Items)
	if len(args) > 1 {
		if err := sortWith(rt, out, args[1]); err != nil {
			return nil, err
		}
		return objects.NewList(out), nil
	}
	sort.SliceStable(out, defaultLess(out))
	return objects.NewList(out), nil
}

func mapFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("map expects (list, function)")
	}
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, 0, len(l.Items))
	for _, item := range l.Items {
		v, err := rt.Call(args[1], []objects.Value{item})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return objects.NewList(out), nil
}

func filterFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("filter expects (list, function)")
	}
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	var out []objects.Value
	for _, item := range l.Items {
		v, err := rt.Call(args[1], []objects.Value{item})
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			out = append(out, item)
		}
	}
	return objects.NewList(out), nil
}

func reduceFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("reduce expects (list, function, initial)")
	}
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	acc := args[2]
	for _, item := range l.Items {
		acc, err = rt.Call(args[1], []objects.Value{acc, item})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func findFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	for _, item := range l.Items {
		v, err := rt.Call(args[1], []objects.Value{item})
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			return item, nil
		}
	}
	return objects.NullValue, nil
}

func someFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	for _, item := range l.Items {
		v, err := rt.Call(args[1], []objects.Value{item})
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			return objects.NewBool(true), nil
		}
	}
	return objects.NewBool(false), nil
}

func everyFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	for _, item := range l.Items {
		v, err := rt.Call(args[1], []objects.Value{item})
		if err != nil {
			return nil, err
		}
		if !v.Truthy() {
			return objects.NewBool(false), nil
		}
	}
	return objects.NewBool(true), nil
}
