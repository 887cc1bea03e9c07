package semantic

import (
	"testing"

	"github.com/hassan/semalyzer/internal/diag"
	"github.com/hassan/semalyzer/internal/lexer"
	"github.com/hassan/semalyzer/internal/parser"
)

// analyze runs the full lexer → parser → analyzer pipeline over src and
// returns the resulting Analyzer and diagnostic sink, failing the test on
// any lex/parse error (every fixture here is expected to be syntactically
// valid; only semantic validity is under test).
func analyze(t *testing.T, src string) (*Analyzer, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	p, err := parser.New(lexer.New(src, "test.c"), sink)
	if err != nil {
		t.Fatalf("parser.New() error: %v", err)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() error: %v", err)
	}
	a := New(sink, 0)
	a.Analyze(prog)
	return a, sink
}

func diagnosticTexts(sink *diag.Sink) []string {
	var out []string
	for _, d := range sink.Diagnostics() {
		out = append(out, d.Text())
	}
	return out
}
