// Package context carries the transient state shared across semantic
// actions during one analysis run. It exists so no part of the analyzer
// relies on process-wide mutable state: every check reads and writes one
// analysis context value threaded through it instead.
package context

import (
	"github.com/hassan/semalyzer/internal/diag"
	"github.com/hassan/semalyzer/internal/symtab"
)

// PendingArg is one call argument collected while an argument_list is being
// reduced: its rendered text (for diagnostic messages) and its propagated
// data type.
type PendingArg struct {
	Text string
	Type symtab.DataType
}

// Context is the single value threaded through every semantic action.
// PendingFormals and PendingArguments are kept as two separate buffers
// (rather than one shared buffer reused for both formal parameters and
// call arguments), so collecting call arguments never touches a function
// header's formals. PendingArguments is shared by all calls: a nested call
// (`f(g(x))`) clears it when its own check is done.
type Context struct {
	Table *symtab.Table
	Sink  *diag.Sink

	CurrentType     symtab.DataType
	CurrentFuncName string

	PendingFormals   []symtab.Parameter
	PendingArguments []PendingArg

	LineNumber int
}

// New builds a Context bound to the given symbol table and diagnostic sink.
func New(table *symtab.Table, sink *diag.Sink) *Context {
	return &Context{Table: table, Sink: sink}
}

// ClearFormals empties the pending-formals buffer. Called once a function
// definition, header and body, has been analyzed.
func (c *Context) ClearFormals() {
	c.PendingFormals = nil
}

// ClearArguments empties the pending-arguments buffer. Called once a call
// has been checked.
func (c *Context) ClearArguments() {
	c.PendingArguments = nil
}

// HasDuplicateFormal reports whether name already appears in
// PendingFormals, used while a parameter list is being built to check
// for a duplicate parameter name.
func (c *Context) HasDuplicateFormal(name string) bool {
	for _, f := range c.PendingFormals {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Error records an Error-kind diagnostic at the context's current line.
func (c *Context) Error(detail string) {
	c.Sink.Record(diag.Error, c.LineNumber, detail)
}

// Warning records a Warning-kind diagnostic at the context's current line.
func (c *Context) Warning(detail string) {
	c.Sink.Record(diag.Warning, c.LineNumber, detail)
}
