// Package logging provides the CLI's own operational logging: file-not-
// found, parse failures, output-file write failures, and phase start/end.
// It is deliberately separate from internal/diag, which carries
// diagnostics about the *program under analysis* — this package only ever
// describes the tool's own lifecycle.
//
// DESIGN CHOICE: a thin wrapper over the standard library's log/slog
// rather than a third-party logging library, because this is a leaf
// concern with no domain dependency in the retrieval pack that fits any
// better — slog already gives leveled, structured output with zero added
// dependency weight.
package logging

import (
	"log/slog"
	"os"
)

// New returns a leveled logger writing structured text to stderr. verbose
// lowers the minimum level from Info to Debug.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
