/*
File    : glint/std/io.go
*/

// This file defines the I/O builtins: reading from stdin and writing
// to stderr/formatted strings. Grounded on the teacher's io.go, but
// input reading goes through Runtime.InputReader() instead of a
// package-level stdin reader, since the interpreter owns the reader
// it was constructed with (a REPL and a script runner may not agree on
// stdin framing).
package std

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	register("scanln", scanlnFn)
	register("input", inputFn)
	register("getchar", getcharFn)

	simple("eprintln", eprintlnFn)
	simple("eprintf", eprintfFn)
	simple("sprintf", sprintfFn)
}

func scanlnFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("scanln expects 0 arguments, got %d", len(args))
	}
	r := rt.InputReader()
	text, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return objects.NewString(strings.TrimRight(text, "\r\n")), nil
}

// inputFn prints an optional prompt before reading a line, the same
// two-argument-shapes-in-one-builtin convenience the teacher's input()
// offered.
func inputFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) > 0 {
		for _, a := range args {
			output(a.String())
		}
	}
	return scanlnFn(rt, nil)
}

func getcharFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("getchar expects 0 arguments, got %d", len(args))
	}
	b, err := rt.InputReader().ReadByte()
	if err != nil {
		if err == io.EOF {
			return objects.NullValue, nil
		}
		return nil, fmt.Errorf("getchar failed: %w", err)
	}
	return objects.NewString(string(b)), nil
}

func eprintlnFn(args []objects.Value) (objects.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(os.Stderr, strings.Join(parts, " "))
	return objects.NullValue, nil
}

func eprintfFn(args []objects.Value) (objects.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("eprintf requires a format string")
	}
	format, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("eprintf requires a string format")
	}
	rest := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		rest[i] = a.String()
	}
	fmt.Fprintf(os.Stderr, format.Value, rest...)
	return objects.NullValue, nil
}

func sprintfFn(args []objects.Value) (objects.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("sprintf requires a format string")
	}
	format, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("sprintf requires a string format")
	}
	rest := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		rest[i] = a.String()
	}
	return objects.NewString(fmt.Sprintf(format.Value, rest...)), nil
}
