/*
File    : glint/eval/evaluator_test.go
*/
package eval

import (
	"strings"
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and evaluates source against a fresh Interpreter, failing
// the test immediately on a parse error.
func run(t *testing.T, source string) Result {
	t.Helper()
	program, perr := parser.Parse("<test>", source)
	require.Nil(t, perr, "parse error: %v", perr)
	it := New("<test>")
	var out strings.Builder
	it.SetWriter(&out)
	return it.Run(program)
}

func TestEval_Arithmetic(t *testing.T) {
	r := run(t, "2 + 3 * 4")
	require.Nil(t, r.Err)
	n, ok := r.Value.(*objects.Number)
	require.True(t, ok)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(14), n.IntValue)
}

func TestEval_DivisionByZero(t *testing.T) {
	r := run(t, "1 / 0")
	require.NotNil(t, r.Err)
}

func TestEval_VarAssignAndAccess(t *testing.T) {
	r := run(t, "var x = 10\nvar x += 5\nx")
	require.Nil(t, r.Err)
	n := r.Value.(*objects.Number)
	assert.Equal(t, int64(15), n.IntValue)
}

func TestEval_IfElif(t *testing.T) {
	r := run(t, `
var x = 2
if x == 1 then
    var y = "one"
elif x == 2 then
    var y = "two"
else
    var y = "other"
end
`)
	require.Nil(t, r.Err)
}

func TestEval_WhileLoop(t *testing.T) {
	r := run(t, `
var i = 0
var total = 0
while i < 5 then
    var total += i
    var i += 1
end
total
`)
	require.Nil(t, r.Err)
	n := r.Value.(*objects.Number)
	assert.Equal(t, int64(10), n.IntValue)
}

func TestEval_ForLoop(t *testing.T) {
	r := run(t, `
var total = 0
for i = 0 to 5 then
    var total += i
end
total
`)
	require.Nil(t, r.Err)
	n := r.Value.(*objects.Number)
	assert.Equal(t, int64(10), n.IntValue)
}

func TestEval_FunctionCallAndReturn(t *testing.T) {
	r := run(t, `
function add(a, b) do
    return a + b
end
add(3, 4)
`)
	require.Nil(t, r.Err)
	n := r.Value.(*objects.Number)
	assert.Equal(t, int64(7), n.IntValue)
}

func TestEval_RecursiveFunction(t *testing.T) {
	r := run(t, `
function fact(n) do
    if n <= 1 then
        return 1
    end
    return n * fact(n - 1)
end
fact(6)
`)
	require.Nil(t, r.Err)
	n := r.Value.(*objects.Number)
	assert.Equal(t, int64(720), n.IntValue)
}

func TestEval_BreakInLoop(t *testing.T) {
	r := run(t, `
var total = 0
for i = 0 to 10 then
    if i == 5 then
        break
    end
    var total += i
end
total
`)
	require.Nil(t, r.Err)
	n := r.Value.(*objects.Number)
	assert.Equal(t, int64(10), n.IntValue)
}

func TestEval_ListAndIndex(t *testing.T) {
	r := run(t, "var xs = [1, 2, 3]\nxs")
	require.Nil(t, r.Err)
	lst, ok := r.Value.(*objects.List)
	require.True(t, ok)
	assert.Equal(t, 3, len(lst.Items))
}

func TestEval_DictLiteral(t *testing.T) {
	r := run(t, `var d = {"a": 1, "b": 2}
d`)
	require.Nil(t, r.Err)
	d, ok := r.Value.(*objects.Dict)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, d.Keys)
}

func TestEval_TryCatch(t *testing.T) {
	r := run(t, `
var result = "none"
try then
    throw "RuntimeError", "boom"
catch kind then
    var result = kind
end
result
`)
	require.Nil(t, r.Err)
	s, ok := r.Value.(*objects.String)
	require.True(t, ok)
	assert.Equal(t, "RuntimeError", s.Value)
}

func TestEval_AssertFailureProducesError(t *testing.T) {
	r := run(t, "assert 1 == 2")
	require.NotNil(t, r.Err)
}

func TestEval_ExitProducesExitResult(t *testing.T) {
	r := run(t, "exit(3)")
	require.Nil(t, r.Err)
	assert.True(t, r.IsExit)
	assert.Equal(t, 3, r.ExitCode)
}

func TestEval_SwitchStatement(t *testing.T) {
	r := run(t, `
var x = 2
var out = 0
switch x
case 1 then
    var out = 10
case 2 then
    var out = 20
default
    var out = 0
end
out
`)
	require.Nil(t, r.Err)
	n := r.Value.(*objects.Number)
	assert.Equal(t, int64(20), n.IntValue)
}

func TestEval_NamespaceBindsAttrs(t *testing.T) {
	r := run(t, `
namespace geo do
    var x = 1
    var y = 2
end
geo
`)
	require.Nil(t, r.Err)
	ns, ok := r.Value.(*objects.Namespace)
	require.True(t, ok)
	assert.Equal(t, "geo", ns.Name)
}

func TestEval_UnknownVariableIsError(t *testing.T) {
	r := run(t, "nonexistent_name")
	require.NotNil(t, r.Err)
}
