// Command analyzer runs the semantic analyzer end to end: it reads a
// source file, lexes and parses it, analyzes the resulting AST, and writes
// the two diagnostic files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(0) // semantic/usage errors never use a non-zero exit code.
	}
}
