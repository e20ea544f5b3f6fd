/*
File    : glint/file/file.go
*/

// Package file implements stateful file-handle builtins (fopen/fclose/
// fread/fwrite/fseek/ftell) on top of objects.Single, the closed Value
// family's opaque host-object wrapper - grounded on the teacher's
// file.go, whose own FileObject played the same role under the old
// GoMixObject model. A Single with Label "file" carries the *os.File
// directly; these builtins are the only code that ever type-asserts
// its Native field.
package file

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/glint/function"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/scope"
)

const fileLabel = "file"

func asFile(v objects.Value) (*os.File, error) {
	s, ok := v.(*objects.Single)
	if !ok || s.Label != fileLabel {
		return nil, fmt.Errorf("expected a file handle, got %s", v.Type())
	}
	f, ok := s.Native.(*os.File)
	if !ok {
		return nil, fmt.Errorf("file handle has no underlying os.File")
	}
	return f, nil
}

func asInt(v objects.Value) (int64, error) {
	n, ok := v.(*objects.Number)
	if !ok {
		return 0, fmt.Errorf("expected a number")
	}
	if n.IsInt {
		return n.IntValue, nil
	}
	return int64(n.FloatValue), nil
}

// Namespace builds the "file" plugin namespace listed in std.Plugins,
// which std.Register binds as the global name `file`.
func Namespace() *objects.Namespace {
	ns := objects.NewNamespace("file", nil)
	ns.Attrs()["open"] = builtin("fopen", fopen)
	ns.Attrs()["close"] = builtin("fclose", fclose)
	ns.Attrs()["read"] = builtin("fread", fread)
	ns.Attrs()["write"] = builtin("fwrite", fwrite)
	ns.Attrs()["seek"] = builtin("fseek", fseek)
	ns.Attrs()["tell"] = builtin("ftell", ftell)
	return ns
}

// Register binds the same builtins as bare top-level names too, so
// scripts can call fopen(...)/fclose(...) directly without `using file`.
func Register(sc *scope.Scope) {
	for name, fn := range map[string]func([]objects.Value) (objects.Value, error){
		"fopen": fopen, "fclose": fclose, "fread": fread,
		"fwrite": fwrite, "fseek": fseek, "ftell": ftell,
	} {
		sc.Set(name, builtin(name, fn))
	}
}

func builtin(name string, fn func([]objects.Value) (objects.Value, error)) objects.Value {
	return function.NewNative(name, fn)
}

// fopen opens a file with the given mode ("r", "w", "a", "r+", "w+")
// and returns a Single-wrapped handle.
func fopen(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("fopen expects 2 arguments (path, mode)")
	}
	path := args[0].String()
	mode := args[1].String()

	var flag int
	switch mode {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	case "w+":
		flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return nil, fmt.Errorf("invalid file mode %q", mode)
	}

	handle, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open file %q: %w", path, err)
	}
	return objects.NewSingle(fileLabel, handle), nil
}

func fclose(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("fclose expects 1 argument")
	}
	f, err := asFile(args[0])
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return objects.NullValue, nil
}

func fread(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("fread expects 2 arguments (handle, size)")
	}
	f, err := asFile(args[0])
	if err != nil {
		return nil, err
	}
	size, err := asInt(args[1])
	if err != nil {
		return nil, fmt.Errorf("second argument to fread must be an integer (size)")
	}
	buf := make([]byte, size)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	return objects.NewString(string(buf[:n])), nil
}

func fwrite(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("fwrite expects 2 arguments (handle, content)")
	}
	f, err := asFile(args[0])
	if err != nil {
		return nil, err
	}
	n, err := f.WriteString(args[1].String())
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	return objects.NewNumberInt(int64(n)), nil
}

// fseek sets the offset for the next read or write. whence: 0 (start),
// 1 (current), 2 (end).
func fseek(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("fseek expects 3 arguments (handle, offset, whence)")
	}
	f, err := asFile(args[0])
	if err != nil {
		return nil, err
	}
	offset, err := asInt(args[1])
	if err != nil {
		return nil, fmt.Errorf("second argument to fseek must be an integer (offset)")
	}
	whence, err := asInt(args[2])
	if err != nil {
		return nil, fmt.Errorf("third argument to fseek must be an integer (whence)")
	}
	newPos, err := f.Seek(offset, int(whence))
	if err != nil {
		return nil, fmt.Errorf("seek failed: %w", err)
	}
	return objects.NewNumberInt(newPos), nil
}

func ftell(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("ftell expects 1 argument")
	}
	f, err := asFile(args[0])
	if err != nil {
		return nil, err
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("ftell failed: %w", err)
	}
	return objects.NewNumberInt(pos), nil
}
