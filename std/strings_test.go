/*
File    : glint/std/strings_test.go
*/
package std

import (
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpperLowerTrim(t *testing.T) {
	v, err := upperFn([]objects.Value{objects.NewString("abc")})
	require.NoError(t, err)
	assert.Equal(t, "ABC", v.String())

	v, err = lowerFn([]objects.Value{objects.NewString("ABC")})
	require.NoError(t, err)
	assert.Equal(t, "abc", v.String())

	v, err = trimFn([]objects.Value{objects.NewString("  hi  ")})
	require.NoError(t, err)
	assert.Equal(t, "hi", v.String())
}

func TestSplitAndReplace(t *testing.T) {
	v, err := splitFn([]objects.Value{objects.NewString("a,b,c"), objects.NewString(",")})
	require.NoError(t, err)
	assert.Equal(t, 3, len(v.(*objects.List).Items))

	v, err = replaceFn([]objects.Value{objects.NewString("foo bar"), objects.NewString("bar"), objects.NewString("baz")})
	require.NoError(t, err)
	assert.Equal(t, "foo baz", v.String())
}

func TestStartsEndsWith(t *testing.T) {
	v, err := startsWithFn([]objects.Value{objects.NewString("hello"), objects.NewString("he")})
	require.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = endsWithFn([]objects.Value{objects.NewString("hello"), objects.NewString("lo")})
	require.NoError(t, err)
	assert.True(t, v.Truthy())
}

func TestSubstringAndCapitalize(t *testing.T) {
	v, err := substringFn([]objects.Value{objects.NewString("hello"), objects.NewNumberInt(1), objects.NewNumberInt(2)})
	require.NoError(t, err)
	assert.Equal(t, "el", v.String())

	v, err = capitalizeFn([]objects.Value{objects.NewString("hello")})
	require.NoError(t, err)
	assert.Equal(t, "Hello", v.String())
}

func TestOrdChr(t *testing.T) {
	v, err := ordFn([]objects.Value{objects.NewString("A")})
	require.NoError(t, err)
	assert.Equal(t, int64(65), v.(*objects.Number).IntValue)

	v, err = chrFn([]objects.Value{objects.NewNumberInt(65)})
	require.NoError(t, err)
	assert.Equal(t, "A", v.String())
}

func TestIsDigitIsAlpha(t *testing.T) {
	v, err := isDigitFn([]objects.Value{objects.NewString("123")})
	require.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = isAlphaFn([]objects.Value{objects.NewString("abc")})
	require.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = isAlphaFn([]objects.Value{objects.NewString("abc1")})
	require.NoError(t, err)
	assert.False(t, v.Truthy())
}
