/*
File    : glint/std/builtins_test.go
*/
package std

import (
	"bufio"
	"testing"

	"github.com/akashmaji946/glint/function"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRuntime struct{}

func (testRuntime) Call(fn objects.Value, args []objects.Value) (objects.Value, error) {
	return objects.NullValue, nil
}
func (testRuntime) InputReader() *bufio.Reader { return nil }

func TestRegisterBindsBuiltinsAndPlugins(t *testing.T) {
	sc := scope.New(nil)
	Register(sc, testRuntime{})

	v, ok := sc.Get("print")
	require.True(t, ok)
	_, isNative := v.(*function.NativeFunction)
	assert.True(t, isNative)

	v, ok = sc.Get("push")
	require.True(t, ok)
	_, isNative = v.(*function.NativeFunction)
	assert.True(t, isNative)

	v, ok = sc.Get("sys")
	require.True(t, ok)
	ns, isNamespace := v.(*objects.Namespace)
	require.True(t, isNamespace)
	assert.Equal(t, "sys", ns.Name)

	v, ok = sc.Get("fopen")
	require.True(t, ok)
	_, isNative = v.(*function.NativeFunction)
	assert.True(t, isNative)
}

func TestRegisteredLengthCallable(t *testing.T) {
	sc := scope.New(nil)
	Register(sc, testRuntime{})

	v, _ := sc.Get("length")
	fn := v.(*function.NativeFunction)
	result, err := fn.Fn([]objects.Value{objects.NewString("abcd")})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.(*objects.Number).IntValue)
}
