package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hassan/semalyzer/internal/ast"
	"github.com/hassan/semalyzer/internal/diag"
	"github.com/hassan/semalyzer/internal/lexer"
	"github.com/hassan/semalyzer/internal/logging"
	"github.com/hassan/semalyzer/internal/parser"
	"github.com/hassan/semalyzer/internal/semantic"
)

func runAnalyze(_ *cobra.Command, args []string) error {
	logger := logging.New(verbose)
	filename := args[0]

	source, err := os.ReadFile(filename)
	if err != nil {
		// On an unopenable file, print a short message to standard
		// output and exit with status 0 — callers read the diagnostic
		// files, never the process exit code, for results.
		fmt.Printf("cannot open %s: %v\n", filename, err)
		logger.Error("failed to read source file", "file", filename, "error", err)
		return nil
	}

	logger.Info("analyzing", "file", filename)

	sink := diag.NewSink()
	lex := lexer.New(string(source), filename)
	p, err := parser.New(lex, sink)
	if err != nil {
		fmt.Printf("cannot parse %s: %v\n", filename, err)
		logger.Error("lexer failed on first token", "file", filename, "error", err)
		return nil
	}

	prog, err := p.ParseProgram()
	if err != nil {
		fmt.Printf("cannot parse %s: %v\n", filename, err)
		logger.Error("parse failed", "file", filename, "error", err)
		return nil
	}

	analyzer := semantic.New(sink, bucketCount)
	analyzer.Analyze(prog)
	sink.SetLineCount(strings.Count(string(source), "\n") + 1)

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	logPath := stem + "_log.txt"
	errorPath := stem + "_error.txt"

	logText := sink.WriteLog(ast.Render(prog))
	if err := os.WriteFile(logPath, []byte(logText), 0o644); err != nil {
		logger.Error("failed to write log file", "path", logPath, "error", err)
		return nil
	}

	errorText := sink.WriteErrors()
	if noWarnings {
		errorText = renderErrorsExcludingWarnings(sink)
	}
	if err := os.WriteFile(errorPath, []byte(errorText), 0o644); err != nil {
		logger.Error("failed to write error file", "path", errorPath, "error", err)
		return nil
	}

	if verbose {
		fmt.Print(logText)
	}
	logger.Info("done", "errors", sink.ErrorCount(), "log", logPath, "errors_file", errorPath)
	return nil
}

// renderErrorsExcludingWarnings implements the --no-warnings flag: warnings
// still count toward the total, but this view of the error file omits
// their text.
func renderErrorsExcludingWarnings(sink *diag.Sink) string {
	out := ""
	for _, d := range sink.Diagnostics() {
		if d.Kind == diag.Warning {
			continue
		}
		out += d.Text() + "\n"
	}
	out += fmt.Sprintf("Total errors: %d\n", sink.ErrorCount())
	return out
}
