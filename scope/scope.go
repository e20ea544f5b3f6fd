/*
File    : glint/scope/scope.go
*/

// Package scope implements the symbol table: a chain of name->value
// bindings with lexical parent lookup, used for every evaluation frame
// (global, function call, namespace construction).
package scope

import "github.com/akashmaji946/glint/objects"

// Scope is one lexical binding frame. Lookup walks the parent chain;
// writes through Set always land in the current frame.
type Scope struct {
	vars   map[string]objects.Value
	Parent *Scope
}

// New creates a scope nested under parent (nil for the global scope).
func New(parent *Scope) *Scope {
	return &Scope{
		vars:   make(map[string]objects.Value),
		Parent: parent,
	}
}

// Get walks this scope and its parents for name. ok is false if the
// name is bound nowhere in the chain.
func (s *Scope) Get(name string) (objects.Value, bool) {
	if v, ok := s.vars[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	return nil, false
}

// Set binds name to val in this scope, shadowing any outer binding.
func (s *Scope) Set(name string, val objects.Value) {
	s.vars[name] = val
}

// Assign updates name in whichever scope along the chain already
// binds it, without creating a new binding. It returns false if name
// is unbound anywhere in the chain.
func (s *Scope) Assign(name string, val objects.Value) bool {
	if _, ok := s.vars[name]; ok {
		s.vars[name] = val
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, val)
	}
	return false
}

// Remove deletes name from this scope only. It returns false if name
// was not bound here (parents are never searched).
func (s *Scope) Remove(name string) bool {
	if _, ok := s.vars[name]; !ok {
		return false
	}
	delete(s.vars, name)
	return true
}

// Update merges a batch of bindings into this scope.
func (s *Scope) Update(mapping map[string]objects.Value) {
	for k, v := range mapping {
		s.vars[k] = v
	}
}

// Has reports whether name is bound in this scope only (not parents).
func (s *Scope) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Names returns the names bound directly in this scope, used to turn
// a namespace body's final bindings into attributes.
func (s *Scope) Names() map[string]objects.Value {
	return s.vars
}

// Copy clones this scope: the binding map is duplicated (so further
// writes to either copy are independent) but the bound values
// themselves are shared, and the parent pointer is carried over
// unchanged. Function invocation and namespace construction do not
// use it; they open a child scope with New instead.
func (s *Scope) Copy() *Scope {
	clone := &Scope{
		vars:   make(map[string]objects.Value, len(s.vars)),
		Parent: s.Parent,
	}
	for k, v := range s.vars {
		clone.vars[k] = v
	}
	return clone
}
