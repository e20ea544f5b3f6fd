/*
File    : glint/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/glint/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) *ListNode {
	t.Helper()
	program, err := Parse("<test>", source)
	require.Nil(t, err, "parse error: %v", err)
	return program
}

func TestParseArithmeticPrecedence(t *testing.T) {
	program := mustParse(t, "2 + 3 * 4")
	require.Len(t, program.Items, 1)
	bin, ok := program.Items[0].(*BinaryNode)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Op)
	_, rightIsMul := bin.Right.(*BinaryNode)
	assert.True(t, rightIsMul)
}

func TestParseVarStatement(t *testing.T) {
	program := mustParse(t, "var x = 10")
	require.Len(t, program.Items, 1)
	assign, ok := program.Items[0].(*VarAssignNode)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParseIfElifElse(t *testing.T) {
	program := mustParse(t, `
if x == 1 then
    var y = 1
elif x == 2 then
    var y = 2
else
    var y = 3
end
`)
	require.Len(t, program.Items, 1)
	ifNode, ok := program.Items[0].(*IfNode)
	require.True(t, ok)
	assert.Len(t, ifNode.Cases, 2)
	assert.NotNil(t, ifNode.Else)
}

func TestParseFunctionDeclaration(t *testing.T) {
	program := mustParse(t, `
function add(a, b) do
    return a + b
end
`)
	require.Len(t, program.Items, 1)
	fn, ok := program.Items[0].(*FunctionNode)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.ParamNames)
}

func TestParseListAndDictLiterals(t *testing.T) {
	program := mustParse(t, "[1, 2, 3]")
	lst, ok := program.Items[0].(*ListNode)
	require.True(t, ok)
	assert.Len(t, lst.Items, 3)

	program = mustParse(t, `{"a": 1, "b": 2}`)
	dict, ok := program.Items[0].(*DictNode)
	require.True(t, ok)
	assert.Len(t, dict.Keys, 2)
}

func TestParseTrailingCommaRejected(t *testing.T) {
	_, err := Parse("<test>", "[1, 2, ]")
	assert.NotNil(t, err)
}

func TestParseSwitchStatement(t *testing.T) {
	program := mustParse(t, `
switch x
case 1 then
    var y = 1
default
    var y = 0
end
`)
	sw, ok := program.Items[0].(*SwitchNode)
	require.True(t, ok)
	assert.Len(t, sw.Cases, 1)
	assert.NotNil(t, sw.Default)
}
