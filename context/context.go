/*
File    : glint/context/context.go
*/

// Package context implements the evaluation-frame stack: one Context
// per call into a function, namespace body, or included module, each
// carrying the call-site span and a display name, linked to its
// parent. Walking the chain produces a traceback.
package context

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// Context is one evaluation frame.
type Context struct {
	DisplayName string
	CallSite    position.Span
	Parent      *Context
}

// New starts a fresh top-level context (the module/REPL frame).
func New(displayName string) *Context {
	return &Context{DisplayName: displayName}
}

// Child opens a nested frame for a call at callSite.
func (c *Context) Child(displayName string, callSite position.Span) *Context {
	return &Context{DisplayName: displayName, CallSite: callSite, Parent: c}
}

// Frames renders the chain as a traceback, oldest call first (the
// order errs.Error.Render expects for "most recent call last"). The
// parentless top-level frame has no call site and is not included.
func (c *Context) Frames() []errs.Frame {
	var chain []*Context
	for f := c; f != nil && f.Parent != nil; f = f.Parent {
		chain = append(chain, f)
	}
	frames := make([]errs.Frame, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		frames = append(frames, errs.Frame{Span: chain[i].CallSite, DisplayName: chain[i].DisplayName})
	}
	return frames
}
