/*
File    : glint/objects/namespace.go
*/
package objects

// Namespace is a named attribute bag. Its attrs map is its entire
// observable state - built once from the final bindings of the block
// it was declared with, then read via attribute access or merged into
// a scope with `using`.
type Namespace struct {
	Base
	Name string
}

func NewNamespace(name string, attrs map[string]Value) *Namespace {
	ns := &Namespace{Name: name}
	ns.kind = NamespaceKind
	ns.attrs = attrs
	return ns
}

func (n *Namespace) Type() Kind    { return NamespaceKind }
func (n *Namespace) Truthy() bool  { return true }
func (n *Namespace) String() string  { return "<namespace " + n.Name + ">" }
func (n *Namespace) Inspect() string { return n.String() }
