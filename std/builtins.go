/*
File    : glint/std/builtins.go
*/

// Package std implements the builtin function registry: a side table of
// name -> native function injected into the top-level scope at startup
// (spec.md §9's "Builtins registration" design note), rebuilt against
// the new objects.Value/function.NativeFunction model in place of the
// teacher's GoMixObject/CallbackFunc pair.
package std

import (
	"bufio"

	"github.com/akashmaji946/glint/file"
	"github.com/akashmaji946/glint/function"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/scope"
)

// Runtime is what a builtin needs back from the interpreter: the
// ability to call a script-level function value (used by map/filter/
// reduce/sort-with-key) and the shared input reader for `input()`.
// Satisfied by *eval.Interpreter without std importing eval (which
// would cycle); the interpreter hands itself in as this interface.
type Runtime interface {
	Call(fn objects.Value, args []objects.Value) (objects.Value, error)
	InputReader() *bufio.Reader
}

// entry is one registrable builtin: a name and the Go function behind
// it.
type entry struct {
	name string
	fn   func(rt Runtime, args []objects.Value) (objects.Value, error)
}

var registry []entry

func register(name string, fn func(rt Runtime, args []objects.Value) (objects.Value, error)) {
	registry = append(registry, entry{name: name, fn: fn})
}

// simple registers a builtin that needs no Runtime capability, the
// common case (pure functions over already-evaluated values).
func simple(name string, fn func(args []objects.Value) (objects.Value, error)) {
	register(name, func(_ Runtime, args []objects.Value) (objects.Value, error) { return fn(args) })
}

// Register binds every builtin into sc as a *function.NativeFunction,
// closing over rt so callback-capable builtins (map, sort-with-key,
// input) can call back into the running interpreter, then binds every
// registered plugin namespace by name (the fixed FFI manifest spec.md's
// host-plugin include Open Question resolves to).
func Register(sc *scope.Scope, rt Runtime) {
	for _, e := range registry {
		fn := e.fn
		sc.Set(e.name, function.NewNative(e.name, func(args []objects.Value) (objects.Value, error) {
			return fn(rt, args)
		}))
	}
	for name, ns := range Plugins() {
		sc.Set(name, ns)
	}
	file.Register(sc)
}
