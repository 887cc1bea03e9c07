// Package diag implements the diagnostic taxonomy as a tagged record
// rather than a Go error: a diagnostic describes an expected, accumulated
// finding about the program under analysis, not a failure of the analyzer
// itself. Recording one never aborts the check that found it.
package diag

import (
	"fmt"
	"strings"
)

// Kind distinguishes a Warning, which still counts toward error_count, from
// an Error.
type Kind int

const (
	Error Kind = iota
	Warning
)

func (k Kind) String() string {
	if k == Warning {
		return "Warning"
	}
	return "Error"
}

// Diagnostic is a tagged {kind, line, detail} record, not a Go error.
type Diagnostic struct {
	Kind   Kind
	Line   int
	Detail string
}

// Text renders the diagnostic the way it is written to both the log and the
// error file: `At line no: <N> <message>`. A Warning's Detail already
// carries the literal "Warning: " prefix, so Text never adds one itself.
func (d Diagnostic) Text() string {
	return fmt.Sprintf("At line no: %d %s", d.Line, d.Detail)
}

// Sink accumulates diagnostics in emission order and renders the trace log
// and error file. It owns error_count: every Record call increments it,
// including warnings.
type Sink struct {
	diagnostics []Diagnostic
	trace       []string
	lineCount   int
}

// NewSink returns an empty Sink ready to accumulate a single analysis run.
func NewSink() *Sink {
	return &Sink{}
}

// Record appends a diagnostic and increments the error counter. Callers
// never see a return value to branch on.
func (s *Sink) Record(kind Kind, line int, detail string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Kind: kind, Line: line, Detail: detail})
}

// Trace appends one reduction-trace line to the log (not the error file),
// e.g. `At line no: 3 declaration_list : declaration_list COMMA declaration`.
func (s *Sink) Trace(line string) {
	s.trace = append(s.trace, line)
}

// SetLineCount records the input's total line count for the log's trailing
// `Total lines: <N>`.
func (s *Sink) SetLineCount(n int) {
	s.lineCount = n
}

// ErrorCount is the number of diagnostics recorded so far, warnings
// included. It is monotonically nondecreasing and equal to the number of
// emitted diagnostic lines.
func (s *Sink) ErrorCount() int {
	return len(s.diagnostics)
}

// Diagnostics returns the diagnostics recorded so far, in emission order.
// Emission order tracks reduction order, which tracks source order for a
// single-pass bottom-up parse, so this is also nondecreasing source-line
// order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Write lets a Sink serve as the symbol table's scope-dump destination
// (internal/symtab's PrintCurrentScope / PrintAllScopes write through
// this), so scope dumps land in the trace alongside the reduction trace.
func (s *Sink) Write(p []byte) (int, error) {
	s.trace = append(s.trace, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// WriteLog renders the full log file contents: the reduction trace, the
// pretty-printed reconstruction (if any was supplied), per-scope dumps
// (written directly into the trace by the symbol table on scope exit), and
// the trailing totals.
func (s *Sink) WriteLog(rendered string) string {
	out := ""
	for _, l := range s.trace {
		out += l + "\n"
	}
	if rendered != "" {
		out += rendered
		if out[len(out)-1] != '\n' {
			out += "\n"
		}
	}
	for _, d := range s.diagnostics {
		out += d.Text() + "\n"
	}
	out += fmt.Sprintf("Total lines: %d\n", s.lineCount)
	out += fmt.Sprintf("Total errors: %d\n", s.ErrorCount())
	return out
}

// WriteErrors renders the full error file contents: diagnostic lines only,
// then the trailing total.
func (s *Sink) WriteErrors() string {
	out := ""
	for _, d := range s.diagnostics {
		out += d.Text() + "\n"
	}
	out += fmt.Sprintf("Total errors: %d\n", s.ErrorCount())
	return out
}
