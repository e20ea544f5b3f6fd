/*
File    : glint/eval/namespace.go
*/
package eval

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akashmaji946/glint/context"
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/objects"
	"github.com/akashmaji946/glint/parser"
	"github.com/akashmaji946/glint/scope"
)

// evalNamespace runs the body in a fresh child scope; its final direct
// bindings become the Namespace's attrs (spec.md glossary).
func (it *Interpreter) evalNamespace(n *parser.NamespaceNode, sc *scope.Scope, ctx *context.Context) Result {
	inner := scope.New(sc)
	childCtx := ctx.Child(n.Name, n.Span())
	r := it.Eval(n.Body, inner, childCtx)
	if r.ShouldReturn() {
		return r
	}
	ns := objects.NewNamespace(n.Name, inner.Names())
	sc.Set(n.Name, ns)
	return Val(ns)
}

// evalUsing implements `using NS.*` (merge all attributes into the
// current scope) and `using NS.member` (bind one), requiring the named
// binding be a Namespace, else ClassError per spec.md's taxonomy.
func (it *Interpreter) evalUsing(n *parser.UsingNode, sc *scope.Scope, ctx *context.Context) Result {
	v, ok := sc.Get(n.NamespaceName)
	if !ok {
		return Fail(errs.Newf(errs.VariableError, n.Span(), "identifier not found: %s", n.NamespaceName))
	}
	ns, ok := v.(*objects.Namespace)
	if !ok {
		return Fail(errs.Newf(errs.ClassError, n.Span(), "using requires a namespace, got %s", v.Type()))
	}
	if n.Member == "*" {
		sc.Update(ns.Attrs())
		return Val(objects.NullValue)
	}
	member, ok := ns.Attrs()[n.Member]
	if !ok {
		return Fail(errs.Newf(errs.ClassError, n.Span(), "no attribute %s on namespace %s", n.Member, n.NamespaceName))
	}
	sc.Set(n.Member, member)
	return Val(member)
}

// evalInclude resolves a module: for a name registered in Plugins, that
// Namespace's attributes are merged into the current scope (the fixed
// FFI manifest spec.md's Open Question resolves `include` to); New
// leaves Plugins empty, so only names a caller adds there take this
// path. Otherwise the path is resolved
// against $CWD then the interpreter's lib dir, lexed, parsed and
// evaluated in a fresh scope whose bindings are merged into the current
// one.
func (it *Interpreter) evalInclude(n *parser.IncludeNode, sc *scope.Scope, ctx *context.Context) Result {
	nameR := it.Eval(n.Module, sc, ctx)
	if nameR.ShouldReturn() {
		return nameR
	}
	nameStr, ok := nameR.Value.(*objects.String)
	if !ok {
		return Fail(errs.New(errs.IncludeError, n.Span(), "include requires a string module name"))
	}

	if plugin, ok := it.Plugins[nameStr.Value]; ok {
		sc.Update(plugin.Attrs())
		return Val(plugin)
	}

	path, err := it.resolveModule(nameStr.Value)
	if err != nil {
		return Fail(errs.Newf(errs.IncludeError, n.Span(), "%s", err.Error()))
	}
	src, rerr := os.ReadFile(path)
	if rerr != nil {
		return Fail(errs.Newf(errs.IncludeError, n.Span(), "cannot read module %s: %s", path, rerr.Error()))
	}
	program, perr := parser.Parse(path, string(src))
	if perr != nil {
		return Fail(errs.Newf(errs.IncludeError, n.Span(), "module %s: %s", path, perr.Error()))
	}
	moduleScope := scope.New(nil)
	moduleCtx := ctx.Child(nameStr.Value, n.Span())
	r := it.Eval(program, moduleScope, moduleCtx)
	if r.Err != nil {
		return r
	}
	sc.Update(moduleScope.Names())
	return Val(objects.NullValue)
}

// resolveModule implements spec.md §6's module search path: $CWD first,
// then <interpreter_install>/lib.
func (it *Interpreter) resolveModule(name string) (string, error) {
	candidates := []string{name, name + ".kst"}
	cwd, _ := os.Getwd()
	for _, c := range candidates {
		p := filepath.Join(cwd, c)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		libDir := filepath.Join(filepath.Dir(exe), "lib")
		for _, c := range candidates {
			p := filepath.Join(libDir, c)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("module not found: %s", name)
}
