/*
File    : glint/context/context_test.go
*/
package context

import (
	"testing"

	"github.com/akashmaji946/glint/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasNoParent(t *testing.T) {
	c := New("<module>")
	assert.Equal(t, "<module>", c.DisplayName)
	assert.Nil(t, c.Parent)
}

func TestChildLinksToParent(t *testing.T) {
	root := New("<module>")
	span := position.NewSpan(position.New("<test>", "f()"), position.New("<test>", "f()"))
	child := root.Child("f", span)

	assert.Equal(t, "f", child.DisplayName)
	require.NotNil(t, child.Parent)
	assert.Same(t, root, child.Parent)
}

func TestFramesOrdersOldestCallFirst(t *testing.T) {
	root := New("<module>")
	span := position.NewSpan(position.New("<test>", "g()"), position.New("<test>", "g()"))
	mid := root.Child("g", span)
	leaf := mid.Child("h", span)

	frames := leaf.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "g", frames[0].DisplayName)
	assert.Equal(t, "h", frames[1].DisplayName)
}

func TestFramesOnRootIsEmpty(t *testing.T) {
	root := New("<module>")
	assert.Empty(t, root.Frames())
}
