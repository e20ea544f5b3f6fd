/*
File    : glint/std/map_test.go
*/
package std

import (
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictFnBuildsFromPairs(t *testing.T) {
	v, err := dictFn([]objects.Value{objects.NewString("a"), objects.NewNumberInt(1), objects.NewString("b"), objects.NewNumberInt(2)})
	require.NoError(t, err)
	d := v.(*objects.Dict)
	assert.Equal(t, []string{"a", "b"}, d.Keys)

	_, err = dictFn([]objects.Value{objects.NewString("a")})
	assert.Error(t, err)
}

func TestKeysValuesItems(t *testing.T) {
	d := objects.NewDict()
	d.Set(objects.NewString("a"), objects.NewNumberInt(1))
	d.Set(objects.NewString("b"), objects.NewNumberInt(2))

	ks, err := keysFn([]objects.Value{d})
	require.NoError(t, err)
	assert.Equal(t, 2, len(ks.(*objects.List).Items))

	vs, err := valuesFn([]objects.Value{d})
	require.NoError(t, err)
	assert.Equal(t, int64(1), vs.(*objects.List).Items[0].(*objects.Number).IntValue)

	its, err := itemsFn([]objects.Value{d})
	require.NoError(t, err)
	pair := its.(*objects.List).Items[0].(*objects.List)
	assert.Equal(t, "a", pair.Items[0].String())
}

func TestInsertRemoveHasKey(t *testing.T) {
	d := objects.NewDict()
	_, err := insertFn([]objects.Value{d, objects.NewString("x"), objects.NewNumberInt(5)})
	require.NoError(t, err)

	has, err := hasKeyFn([]objects.Value{d, objects.NewString("x")})
	require.NoError(t, err)
	assert.True(t, has.Truthy())

	removed, err := removeFn([]objects.Value{d, objects.NewString("x")})
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed.(*objects.Number).IntValue)

	has, err = hasKeyFn([]objects.Value{d, objects.NewString("x")})
	require.NoError(t, err)
	assert.False(t, has.Truthy())
}

func TestMergeIsRightBiased(t *testing.T) {
	a := objects.NewDict()
	a.Set(objects.NewString("x"), objects.NewNumberInt(1))
	b := objects.NewDict()
	b.Set(objects.NewString("x"), objects.NewNumberInt(9))
	b.Set(objects.NewString("y"), objects.NewNumberInt(2))

	v, err := mergeFn([]objects.Value{a, b})
	require.NoError(t, err)
	merged := v.(*objects.Dict)
	assert.Equal(t, int64(9), merged.Pairs["x"].(*objects.Number).IntValue)
	assert.Equal(t, int64(2), merged.Pairs["y"].(*objects.Number).IntValue)
}
