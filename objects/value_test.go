/*
File    : glint/objects/value_test.go
*/
package objects

import (
	"testing"

	"github.com/akashmaji946/glint/position"
	"github.com/stretchr/testify/assert"
)

func TestNumber_Arithmetic(t *testing.T) {
	sum, err := NewNumberInt(2).BinaryOp(OpAdd, NewNumberInt(3), position.Span{})
	assert.Nil(t, err)
	assert.Equal(t, int64(5), sum.(*Number).IntValue)

	_, divErr := NewNumberInt(1).BinaryOp(OpDiv, NewNumberInt(0), position.Span{})
	assert.NotNil(t, divErr)
	assert.Equal(t, "division by zero", divErr.Details)
}

func TestNumber_FloorDivNegative(t *testing.T) {
	q, err := NewNumberInt(-7).BinaryOp(OpFloor, NewNumberInt(2), position.Span{})
	assert.Nil(t, err)
	assert.Equal(t, int64(-4), q.(*Number).IntValue)
}

func TestString_ConcatAndRepeat(t *testing.T) {
	v, err := NewString("ab").BinaryOp(OpAdd, NewString("cd"), position.Span{})
	assert.Nil(t, err)
	assert.Equal(t, "abcd", v.(*String).Value)

	v, err = NewString("ab").BinaryOp(OpMul, NewNumberInt(3), position.Span{})
	assert.Nil(t, err)
	assert.Equal(t, "ababab", v.(*String).Value)
}

func TestString_IndexViaDiv(t *testing.T) {
	v, err := NewString("hello").BinaryOp(OpDiv, NewNumberInt(1), position.Span{})
	assert.Nil(t, err)
	assert.Equal(t, "e", v.(*String).Value)
}

func TestList_ConcatRepeatIndexInvert(t *testing.T) {
	l := NewList([]Value{NewNumberInt(1), NewNumberInt(2)})
	other := NewList([]Value{NewNumberInt(3)})
	v, err := l.BinaryOp(OpAdd, other, position.Span{})
	assert.Nil(t, err)
	assert.Len(t, v.(*List).Items, 3)

	v, err = l.BinaryOp(OpArrow, NewNumberInt(-1), position.Span{})
	assert.Nil(t, err)
	assert.Equal(t, int64(2), v.(*Number).IntValue)

	inv, uerr := l.UnaryOp(OpInvert, position.Span{})
	assert.Nil(t, uerr)
	assert.Equal(t, int64(2), inv.(*List).Items[0].(*Number).IntValue)
}

func TestDict_MergeAndIndex(t *testing.T) {
	d1 := NewDict()
	d1.Set(NewString("a"), NewNumberInt(1))
	d2 := NewDict()
	d2.Set(NewString("b"), NewNumberInt(2))

	merged, err := d1.BinaryOp(OpPipe, d2, position.Span{})
	assert.Nil(t, err)
	md := merged.(*Dict)
	assert.Len(t, md.Keys, 2)

	v, err := d1.Index(NewString("a"), position.Span{})
	assert.Nil(t, err)
	assert.Equal(t, int64(1), v.(*Number).IntValue)

	_, err = d1.Index(NewString("missing"), position.Span{})
	assert.NotNil(t, err)
}

func TestDict_Invert(t *testing.T) {
	d := NewDict()
	d.Set(NewString("a"), NewNumberInt(1))
	inv, err := d.UnaryOp(OpInvert, position.Span{})
	assert.Nil(t, err)
	v, ok := inv.(*Dict).Pairs["1"]
	assert.True(t, ok)
	assert.Equal(t, "a", v.(*String).Value)
}

func TestMembership(t *testing.T) {
	l := NewList([]Value{NewNumberInt(1), NewString("x")})
	ok, err := l.Contains(NewString("x"), position.Span{})
	assert.Nil(t, err)
	assert.True(t, ok)
}

func TestNull_Equality(t *testing.T) {
	v, err := NullValue.BinaryOp(OpEq, NullValue, position.Span{})
	assert.Nil(t, err)
	assert.True(t, v.(*Bool).Value)
}

func TestBase_InvalidOperationFallback(t *testing.T) {
	_, err := True.BinaryOp(OpAdd, NewNumberInt(1), position.Span{})
	assert.NotNil(t, err)
	assert.Equal(t, "MathError", string(err.Kind))
}
