/*
File    : glint/std/plugins.go
*/

// This file defines the fixed FFI manifest the host-plugin `include`
// Open Question resolves to: a small table of namespaces bound into
// the global scope by std.Register under their manifest names.
// Grounded on original_source/KittenScript/src/constants.py's
// `__System_*` builtin names and version.py's version tuple, which the
// teacher's own std package never carried a counterpart for.
package std

import (
	"fmt"
	"math"
	"runtime"

	"github.com/akashmaji946/glint/file"
	"github.com/akashmaji946/glint/objects"
)

const (
	versionMajor = 1
	versionMinor = 0
	versionMicro = 0
)

// Plugins returns the fixed set of namespaces std.Register binds as
// globals. Called once per Register, never mutated afterward.
func Plugins() map[string]*objects.Namespace {
	sys := objects.NewNamespace("sys", nil)
	sys.Attrs()["version"] = objects.NewString(sysVersion())
	sys.Attrs()["platform"] = objects.NewString(runtime.GOOS)
	sys.Attrs()["arch"] = objects.NewString(runtime.GOARCH)
	sys.Attrs()["maxrecursion"] = objects.NewNumberInt(defaultMaxRecursionConst)

	constants := objects.NewNamespace("constants", nil)
	constants.Attrs()["inf"] = objects.NewNumberFloat(math.Inf(1))
	constants.Attrs()["neg_inf"] = objects.NewNumberFloat(math.Inf(-1))
	constants.Attrs()["nan"] = objects.NewNumberFloat(math.NaN())
	constants.Attrs()["pi"] = objects.NewNumberFloat(math.Pi)
	constants.Attrs()["e"] = objects.NewNumberFloat(math.E)

	return map[string]*objects.Namespace{
		"sys":       sys,
		"constants": constants,
		"file":      file.Namespace(),
	}
}

// defaultMaxRecursionConst mirrors eval.defaultMaxRecursion; duplicated
// here rather than imported since std cannot import eval (cycle) and
// this is only ever surfaced as an informational sys.maxrecursion
// value, not the enforced ceiling itself.
const defaultMaxRecursionConst = 1000

func sysVersion() string {
	return fmt.Sprintf("%d.%d.%d", versionMajor, versionMinor, versionMicro)
}
