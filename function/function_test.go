/*
File    : glint/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/scope"
	"github.com/stretchr/testify/assert"
)

func TestFunction_Arity(t *testing.T) {
	f := New("add", []string{"a", "b"}, nil, true, scope.New(nil))
	assert.Equal(t, 2, f.Arity())
	assert.Equal(t, objects.FunctionKind, f.Type())
}

func TestNativeFunction_Invoke(t *testing.T) {
	n := NewNative("double", func(args []objects.Value) (objects.Value, error) {
		return objects.NewNumberInt(2 * args[0].(*objects.Number).IntValue), nil
	})
	out, err := n.Fn([]objects.Value{objects.NewNumberInt(21)})
	assert.Nil(t, err)
	assert.Equal(t, int64(42), out.(*objects.Number).IntValue)
}

func TestMemberFunction_BindPrependsReceiver(t *testing.T) {
	receiver := objects.NewString("hi")
	n := NewNative("len", func(args []objects.Value) (objects.Value, error) { return objects.NullValue, nil })
	m := NewMember(receiver, n)
	bound := m.Bind([]objects.Value{objects.NewNumberInt(1)})
	assert.Len(t, bound, 2)
	assert.Same(t, receiver, bound[0])
}
