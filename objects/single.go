/*
File    : glint/objects/single.go
*/
package objects

import "fmt"

// Single is an opaque wrapper around a host-provided object, as
// returned by a plugin's include loader. The interpreter never
// inspects Native directly; it only flows the value around and lets
// the plugin's own native functions operate on it via Native's
// concrete type.
type Single struct {
	Base
	Label  string
	Native interface{}
}

func NewSingle(label string, native interface{}) *Single {
	s := &Single{Label: label, Native: native}
	s.kind = SingleKind
	return s
}

func (s *Single) Type() Kind    { return SingleKind }
func (s *Single) Truthy() bool  { return s.Native != nil }
func (s *Single) String() string  { return fmt.Sprintf("%s(%v)", s.Label, s.Native) }
func (s *Single) Inspect() string { return fmt.Sprintf("<%s(%v)>", s.Label, s.Native) }
