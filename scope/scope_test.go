/*
File    : glint/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/stretchr/testify/assert"
)

func TestScope_GetWalksParents(t *testing.T) {
	outer := New(nil)
	outer.Set("x", objects.NewNumberInt(1))
	inner := New(outer)

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, objects.NewNumberInt(1), v)

	_, ok = inner.Get("missing")
	assert.False(t, ok)
}

func TestScope_SetShadowsOuter(t *testing.T) {
	outer := New(nil)
	outer.Set("x", objects.NewNumberInt(1))
	inner := New(outer)
	inner.Set("x", objects.NewNumberInt(2))

	v, _ := inner.Get("x")
	assert.Equal(t, objects.NewNumberInt(2), v)
	outerV, _ := outer.Get("x")
	assert.Equal(t, objects.NewNumberInt(1), outerV)
}

func TestScope_AssignUpdatesDefiningScope(t *testing.T) {
	outer := New(nil)
	outer.Set("x", objects.NewNumberInt(1))
	inner := New(outer)

	ok := inner.Assign("x", objects.NewNumberInt(9))
	assert.True(t, ok)
	assert.False(t, inner.Has("x"))
	v, _ := outer.Get("x")
	assert.Equal(t, objects.NewNumberInt(9), v)

	assert.False(t, inner.Assign("never", objects.NullValue))
}

func TestScope_RemoveOnlyLocal(t *testing.T) {
	outer := New(nil)
	outer.Set("x", objects.NewNumberInt(1))
	inner := New(outer)

	assert.False(t, inner.Remove("x"))
	assert.True(t, outer.Remove("x"))
	_, ok := outer.Get("x")
	assert.False(t, ok)
}

func TestScope_CopyIsIndependentButSharesParent(t *testing.T) {
	outer := New(nil)
	s := New(outer)
	s.Set("x", objects.NewNumberInt(1))
	clone := s.Copy()
	clone.Set("y", objects.NewNumberInt(2))

	assert.False(t, s.Has("y"))
	assert.True(t, clone.Has("x"))
	assert.Same(t, outer, clone.Parent)
}
