// Command fmtfmt drives the core printer over the bundled front-end converters. It is a small
// demonstration/test harness, not part of the versioned core API surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fmtfmt: %v\n", err)
		os.Exit(1)
	}
}

var (
	lang       string
	printWidth uint16
	indent     string
	sets       []string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fmtfmt [file]",
	Short: "Format a DOT or JSON document through the loom core printer",
	Long: `fmtfmt reads a DOT or JSON document, converts it to the core Format IR through one of the
bundled examples/ converters, and prints the result of running it through the printer.

If no file is given, fmtfmt reads from standard input and writes the formatted result to
standard output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.Flags().StringVar(&lang, "lang", "dot", `input language: "dot" or "json"`)
	rootCmd.Flags().Uint16Var(&printWidth, "print-width", 0, "column budget a Group tries to fit within (0 means the printer default)")
	rootCmd.Flags().StringVar(&indent, "indent", "tab", `indent style: "tab" or "space:N" for N in [1,8]`)
	rootCmd.Flags().StringArrayVar(&sets, "set", nil, `--lang=json only: set path=value before formatting, repeatable (uses sjson path syntax)`)
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit printer debug records (group restarts, snapshot restores) to stderr")
}
