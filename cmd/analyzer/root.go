package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	bucketCount int
	noWarnings  bool
)

var rootCmd = &cobra.Command{
	Use:   "analyzer <source-file>",
	Short: "Semantic analyzer for a small C-like language",
	Long: `analyzer reads a single source file, parses it, walks the result
with the semantic analyzer, and writes <stem>_log.txt and <stem>_error.txt
next to the input.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "echo the trace log to stdout as well as the file")
	rootCmd.Flags().IntVar(&bucketCount, "bucket-count", 0, "bucket count for each scope's chained hash table (0 selects the default)")
	rootCmd.Flags().BoolVar(&noWarnings, "no-warnings", false, "exclude warnings from the error file while still counting them")
}
