package context

import (
	"bytes"
	"testing"

	"github.com/hassan/semalyzer/internal/diag"
	"github.com/hassan/semalyzer/internal/symtab"
)

func newTestContext() *Context {
	return New(symtab.New(&bytes.Buffer{}, 0), diag.NewSink())
}

func TestContext_HasDuplicateFormal(t *testing.T) {
	c := newTestContext()
	c.PendingFormals = append(c.PendingFormals, symtab.Parameter{Type: symtab.TypeInt, Name: "a"})

	if !c.HasDuplicateFormal("a") {
		t.Error("expected a to be reported as a duplicate formal")
	}
	if c.HasDuplicateFormal("b") {
		t.Error("b was never added, should not be a duplicate")
	}
}

func TestContext_ClearFormalsAndArguments(t *testing.T) {
	c := newTestContext()
	c.PendingFormals = []symtab.Parameter{{Type: symtab.TypeInt, Name: "a"}}
	c.PendingArguments = []PendingArg{{Text: "1", Type: symtab.TypeInt}}

	c.ClearFormals()
	c.ClearArguments()

	if len(c.PendingFormals) != 0 {
		t.Error("expected PendingFormals to be empty after ClearFormals")
	}
	if len(c.PendingArguments) != 0 {
		t.Error("expected PendingArguments to be empty after ClearArguments")
	}
}

func TestContext_ErrorAndWarningBothIncrementCount(t *testing.T) {
	c := newTestContext()
	c.LineNumber = 5
	c.Error("Undeclared variable")
	c.Warning("Warning: Assignment of float value into variable of integer type")

	if got := c.Sink.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
	diags := c.Sink.Diagnostics()
	if diags[0].Kind != diag.Error || diags[1].Kind != diag.Warning {
		t.Errorf("expected first diagnostic Error and second Warning, got %+v", diags)
	}
}
