/*
File    : glint/std/math_test.go
*/
package std

import (
	"testing"

	"github.com/akashmaji946/glint/function"
	"github.com/akashmaji946/glint/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsPreservesIntegerness(t *testing.T) {
	v, err := absFn([]objects.Value{objects.NewNumberInt(-5)})
	require.NoError(t, err)
	n := v.(*objects.Number)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(5), n.IntValue)

	v, err = absFn([]objects.Value{objects.NewNumberFloat(-2.5)})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.(*objects.Number).FloatValue)
}

func TestMinMax(t *testing.T) {
	v, err := minFn([]objects.Value{objects.NewNumberInt(3), objects.NewNumberInt(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*objects.Number).IntValue)

	v, err = maxFn([]objects.Value{objects.NewNumberInt(3), objects.NewNumberInt(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.(*objects.Number).IntValue)
}

func TestFloorCeilRound(t *testing.T) {
	v, err := floorFn([]objects.Value{objects.NewNumberFloat(3.7)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*objects.Number).IntValue)

	v, err = ceilFn([]objects.Value{objects.NewNumberFloat(3.2)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.(*objects.Number).IntValue)

	v, err = roundFn([]objects.Value{objects.NewNumberFloat(3.14159), objects.NewNumberInt(2)})
	require.NoError(t, err)
	assert.InDelta(t, 3.14, v.(*objects.Number).FloatValue, 0.001)
}

func TestSqrtRejectsNegative(t *testing.T) {
	_, err := sqrtFn([]objects.Value{objects.NewNumberInt(-1)})
	assert.Error(t, err)

	v, err := sqrtFn([]objects.Value{objects.NewNumberInt(16)})
	require.NoError(t, err)
	assert.Equal(t, 4.0, v.(*objects.Number).FloatValue)
}

func TestPow(t *testing.T) {
	v, err := powFn([]objects.Value{objects.NewNumberInt(2), objects.NewNumberInt(10)})
	require.NoError(t, err)
	assert.Equal(t, 1024.0, v.(*objects.Number).FloatValue)
}

func TestRandintWithinBounds(t *testing.T) {
	for i := 0; i < 20; i++ {
		v, err := randintFn([]objects.Value{objects.NewNumberInt(1), objects.NewNumberInt(3)})
		require.NoError(t, err)
		n := v.(*objects.Number).IntValue
		assert.GreaterOrEqual(t, n, int64(1))
		assert.LessOrEqual(t, n, int64(3))
	}

	_, err := randintFn([]objects.Value{objects.NewNumberInt(5), objects.NewNumberInt(1)})
	assert.Error(t, err)
}

func TestDecimalFromIntAndString(t *testing.T) {
	v, err := decimalFn([]objects.Value{objects.NewNumberInt(10)})
	require.NoError(t, err)
	single, ok := v.(*objects.Single)
	require.True(t, ok)
	assert.Equal(t, "decimal", single.Label)
	assert.Equal(t, "decimal(10)", single.String())

	v, err = decimalFn([]objects.Value{objects.NewString("3.50")})
	require.NoError(t, err)
	assert.Equal(t, "decimal(3.5)", v.String())

	_, err = decimalFn([]objects.Value{objects.NewString("not-a-number")})
	assert.Error(t, err)
}

func TestDecimalMemberFunctions(t *testing.T) {
	a, err := decimalFn([]objects.Value{objects.NewString("1.5")})
	require.NoError(t, err)
	b, err := decimalFn([]objects.Value{objects.NewString("2.25")})
	require.NoError(t, err)
	single := a.(*objects.Single)

	addFn := single.Attrs()["add"].(*function.NativeFunction)
	sum, err := addFn.Fn([]objects.Value{a, b})
	require.NoError(t, err)
	assert.Equal(t, "decimal(3.75)", sum.String())

	subFn := single.Attrs()["sub"].(*function.NativeFunction)
	diff, err := subFn.Fn([]objects.Value{b, a})
	require.NoError(t, err)
	assert.Equal(t, "decimal(0.75)", diff.String())

	mulFn := single.Attrs()["mul"].(*function.NativeFunction)
	prod, err := mulFn.Fn([]objects.Value{a, objects.NewNumberInt(2)})
	require.NoError(t, err)
	assert.Equal(t, "decimal(3)", prod.String())

	divFn := single.Attrs()["div"].(*function.NativeFunction)
	_, err = divFn.Fn([]objects.Value{a, objects.NewNumberInt(0)})
	assert.Error(t, err)

	roundFnAttr := single.Attrs()["round"].(*function.NativeFunction)
	rounded, err := roundFnAttr.Fn([]objects.Value{b, objects.NewNumberInt(1)})
	require.NoError(t, err)
	assert.Equal(t, "decimal(2.3)", rounded.String())
}
