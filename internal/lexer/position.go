// Package lexer provides lexical analysis (tokenization) for the analyzer's
// input language. It is treated as an external collaborator by the
// specification: the analyzer only requires that it produce a stream of
// positioned tokens over the token set the grammar uses.
package lexer

import "strconv"

// Position represents a location in the source code.
//
// DESIGN CHOICE: Position is a value type (not a pointer) because:
// 1. It's small and cheap to copy
// 2. It's immutable once created
// 3. The zero value is a well-defined "invalid position"
//
// Every token and every AST node carries a Position; diagnostics take their
// line number from it.
type Position struct {
	Filename string

	// Line is the 1-based line number. The analyzer sets the analysis
	// context's line number from the Position of the AST node it is
	// checking.
	Line int

	// Column is the 1-based column, counted in runes, not bytes.
	Column int

	// Offset is the 0-based byte offset from the start of the file.
	Offset int
}

// String returns "filename:line:column", the GCC/Clang convention.
func (p Position) String() string {
	return p.Filename + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsValid returns true if the position carries a usable line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}
