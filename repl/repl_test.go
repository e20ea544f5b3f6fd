/*
File    : glint/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/glint/eval"
	"github.com/akashmaji946/glint/std"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(out *bytes.Buffer) *eval.Interpreter {
	it := eval.New("<repl>")
	it.SetWriter(out)
	std.SetOutput(func(s string) { out.WriteString(s) })
	std.Register(it.Global, it)
	return it
}

func TestExecuteWithRecoveryEvaluatesExpression(t *testing.T) {
	r := NewRepl("", "1.0", "", "", "", ">>> ")
	var out bytes.Buffer
	it := newTestInterpreter(&out)

	shouldExit := r.executeWithRecovery(&out, "2 + 2", it)
	assert.False(t, shouldExit)
	assert.Contains(t, out.String(), "4")
}

func TestExecuteWithRecoveryKeepsStateAcrossLines(t *testing.T) {
	r := NewRepl("", "1.0", "", "", "", ">>> ")
	var out bytes.Buffer
	it := newTestInterpreter(&out)

	require.False(t, r.executeWithRecovery(&out, "var x = 10", it))
	out.Reset()
	require.False(t, r.executeWithRecovery(&out, "x + 5", it))
	assert.Contains(t, out.String(), "15")
}

func TestExecuteWithRecoveryReportsParseError(t *testing.T) {
	r := NewRepl("", "1.0", "", "", "", ">>> ")
	var out bytes.Buffer
	it := newTestInterpreter(&out)

	shouldExit := r.executeWithRecovery(&out, "var = = =", it)
	assert.False(t, shouldExit)
	assert.True(t, strings.Contains(out.String(), "Error") || out.Len() > 0)
}

func TestExecuteWithRecoveryHonorsExit(t *testing.T) {
	r := NewRepl("", "1.0", "", "", "", ">>> ")
	var out bytes.Buffer
	it := newTestInterpreter(&out)

	shouldExit := r.executeWithRecovery(&out, "exit(0)", it)
	assert.True(t, shouldExit)
}
