/*
File    : glint/std/list_test.go
*/
package std

import (
	"bufio"
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numList(vals ...int64) *objects.List {
	items := make([]objects.Value, len(vals))
	for i, v := range vals {
		items[i] = objects.NewNumberInt(v)
	}
	return objects.NewList(items)
}

func TestPushPop(t *testing.T) {
	l := numList(1, 2)
	v, err := pushFn([]objects.Value{l, objects.NewNumberInt(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, len(v.(*objects.List).Items))

	popped, err := popFn([]objects.Value{l})
	require.NoError(t, err)
	assert.Equal(t, int64(3), popped.(*objects.Number).IntValue)
	assert.Equal(t, 2, len(l.Items))
}

func TestPopEmptyListErrors(t *testing.T) {
	_, err := popFn([]objects.Value{numList()})
	assert.Error(t, err)
}

func TestShiftUnshift(t *testing.T) {
	l := numList(1, 2, 3)
	first, err := shiftFn([]objects.Value{l})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.(*objects.Number).IntValue)

	v, err := unshiftFn([]objects.Value{l, objects.NewNumberInt(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.(*objects.List).Items[0].(*objects.Number).IntValue)
}

func TestReverse(t *testing.T) {
	v, err := reverseFn([]objects.Value{numList(1, 2, 3)})
	require.NoError(t, err)
	items := v.(*objects.List).Items
	assert.Equal(t, int64(3), items[0].(*objects.Number).IntValue)
	assert.Equal(t, int64(1), items[2].(*objects.Number).IntValue)
}

func TestContainsAndIndex(t *testing.T) {
	l := numList(10, 20, 30)
	v, err := containsFn([]objects.Value{l, objects.NewNumberInt(20)})
	require.NoError(t, err)
	assert.True(t, v.Truthy())

	idx, err := indexFn([]objects.Value{l, objects.NewNumberInt(30)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), idx.(*objects.Number).IntValue)

	idx, err = indexFn([]objects.Value{l, objects.NewNumberInt(99)})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), idx.(*objects.Number).IntValue)
}

func TestFlatten(t *testing.T) {
	inner := numList(2, 3)
	outer := objects.NewList([]objects.Value{objects.NewNumberInt(1), inner, objects.NewNumberInt(4)})
	v, err := flattenFn([]objects.Value{outer})
	require.NoError(t, err)
	assert.Equal(t, 4, len(v.(*objects.List).Items))
}

func TestJoin(t *testing.T) {
	l := objects.NewList([]objects.Value{objects.NewString("a"), objects.NewString("b"), objects.NewString("c")})
	v, err := joinFn([]objects.Value{l, objects.NewString("-")})
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", v.String())
}

func TestSortFnDefaultOrder(t *testing.T) {
	l := numList(3, 1, 2)
	v, err := sortFn(nil, []objects.Value{l})
	require.NoError(t, err)
	items := v.(*objects.List).Items
	assert.Equal(t, int64(1), items[0].(*objects.Number).IntValue)
	assert.Equal(t, int64(3), items[2].(*objects.Number).IntValue)
}

// fakeRuntime satisfies Runtime for builtins that call back into script
// functions (map/filter/reduce/sort-with-comparator); Call just applies a
// plain Go func so tests don't need a full interpreter.
type fakeRuntime struct {
	call func(fn objects.Value, args []objects.Value) (objects.Value, error)
}

func (f *fakeRuntime) Call(fn objects.Value, args []objects.Value) (objects.Value, error) {
	return f.call(fn, args)
}
func (f *fakeRuntime) InputReader() *bufio.Reader { return nil }

func TestMapFilterReduce(t *testing.T) {
	double := &fakeRuntime{call: func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		n := args[0].(*objects.Number)
		return objects.NewNumberInt(n.IntValue * 2), nil
	}}
	v, err := mapFn(double, []objects.Value{numList(1, 2, 3), objects.NullValue})
	require.NoError(t, err)
	items := v.(*objects.List).Items
	assert.Equal(t, int64(2), items[0].(*objects.Number).IntValue)
	assert.Equal(t, int64(6), items[2].(*objects.Number).IntValue)

	isEven := &fakeRuntime{call: func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		n := args[0].(*objects.Number)
		return objects.NewBool(n.IntValue%2 == 0), nil
	}}
	v, err = filterFn(isEven, []objects.Value{numList(1, 2, 3, 4), objects.NullValue})
	require.NoError(t, err)
	assert.Equal(t, 2, len(v.(*objects.List).Items))

	sum := &fakeRuntime{call: func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		acc := args[0].(*objects.Number)
		n := args[1].(*objects.Number)
		return objects.NewNumberInt(acc.IntValue + n.IntValue), nil
	}}
	v, err = reduceFn(sum, []objects.Value{numList(1, 2, 3), objects.NullValue, objects.NewNumberInt(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(6), v.(*objects.Number).IntValue)
}
