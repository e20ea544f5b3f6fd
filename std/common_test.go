/*
File    : glint/std/common_test.go
*/
package std

import (
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthFn(t *testing.T) {
	v, err := lengthFn([]objects.Value{objects.NewString("hello")})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*objects.Number).IntValue)

	v, err = lengthFn([]objects.Value{objects.NewList([]objects.Value{objects.NewNumberInt(1), objects.NewNumberInt(2)})})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*objects.Number).IntValue)
}

func TestTypeofFn(t *testing.T) {
	v, err := typeofFn([]objects.Value{objects.NewNumberInt(1)})
	require.NoError(t, err)
	assert.Equal(t, "number", v.String())
}

func TestRangeFnInclusiveAndStep(t *testing.T) {
	v, err := rangeFn([]objects.Value{objects.NewNumberInt(1), objects.NewNumberInt(5)})
	require.NoError(t, err)
	lst := v.(*objects.List)
	assert.Equal(t, 5, len(lst.Items))
	assert.Equal(t, int64(5), lst.Items[4].(*objects.Number).IntValue)

	_, err = rangeFn([]objects.Value{objects.NewNumberInt(0), objects.NewNumberInt(5), objects.NewNumberInt(0)})
	assert.Error(t, err)
}

func TestIsSameRefFn(t *testing.T) {
	l := objects.NewList(nil)
	v, err := isSameRefFn([]objects.Value{l, l})
	require.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = isSameRefFn([]objects.Value{l, objects.NewList(nil)})
	require.NoError(t, err)
	assert.False(t, v.Truthy())
}

func TestUUIDFnProducesDistinctStrings(t *testing.T) {
	a, err := uuidFn(nil)
	require.NoError(t, err)
	b, err := uuidFn(nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), b.String())
}
