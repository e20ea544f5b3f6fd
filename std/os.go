/*
File    : glint/std/os.go
*/

// This file defines operating-system interaction builtins: environment
// variables, process info, and command execution. Grounded on the
// teacher's os.go; its own exit()/assert()/assert_equal()/assert_true()/
// assert_false() builtins were dropped since the language already has
// exit and assert as statement forms (spec.md §6, §8) - a same-named
// builtin function would only shadow the keyword's behavior.
package std

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"time"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("getenv", getenvFn)
	simple("setenv", setenvFn)
	simple("unsetenv", unsetenvFn)
	simple("exec_cmd", execCmdFn)
	simple("args", argsFn)
	simple("sleep", sleepFn)

	simple("getcwd", getcwdFn)
	simple("getpid", getpidFn)
	simple("hostname", hostnameFn)
	simple("user", userFn)
	simple("platform", platformFn)
	simple("arch", archFn)
}

func getenvFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("getenv expects 1 argument (key)")
	}
	return objects.NewString(os.Getenv(args[0].String())), nil
}

func setenvFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("setenv expects 2 arguments (key, value)")
	}
	if err := os.Setenv(args[0].String(), args[1].String()); err != nil {
		return nil, fmt.Errorf("setenv failed: %w", err)
	}
	return objects.NullValue, nil
}

func unsetenvFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("unsetenv expects 1 argument (key)")
	}
	if err := os.Unsetenv(args[0].String()); err != nil {
		return nil, fmt.Errorf("unsetenv failed: %w", err)
	}
	return objects.NullValue, nil
}

// execCmdFn runs an external program and returns its combined
// stdout/stderr. Named exec_cmd, not exec, since `exec` collides with
// no keyword but reads as an unpleasantly broad verb for a sandboxed
// scripting language's default namespace.
func execCmdFn(args []objects.Value) (objects.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("exec_cmd expects at least 1 argument (command)")
	}
	name := args[0].String()
	cmdArgs := make([]string, len(args)-1)
	for i, a := range args[1:] {
		cmdArgs[i] = a.String()
	}
	out, err := exec.Command(name, cmdArgs...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("command execution failed: %w\noutput: %s", err, string(out))
	}
	return objects.NewString(string(out)), nil
}

func argsFn(args []objects.Value) (objects.Value, error) {
	items := make([]objects.Value, len(os.Args))
	for i, a := range os.Args {
		items[i] = objects.NewString(a)
	}
	return objects.NewList(items), nil
}

func sleepFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sleep expects 1 argument (milliseconds)")
	}
	time.Sleep(time.Duration(asIntArg(args[0])) * time.Millisecond)
	return objects.NullValue, nil
}

func getcwdFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("getcwd expects 0 arguments")
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not get current working directory: %w", err)
	}
	return objects.NewString(dir), nil
}

func getpidFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("getpid expects 0 arguments")
	}
	return objects.NewNumberInt(int64(os.Getpid())), nil
}

func hostnameFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("hostname expects 0 arguments")
	}
	name, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}
	return objects.NewString(name), nil
}

func userFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("user expects 0 arguments")
	}
	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("could not get current user: %w", err)
	}
	return objects.NewString(u.Username), nil
}

func platformFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("platform expects 0 arguments")
	}
	return objects.NewString(runtime.GOOS), nil
}

func archFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("arch expects 0 arguments")
	}
	return objects.NewString(runtime.GOARCH), nil
}
