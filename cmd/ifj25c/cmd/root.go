// Package cmd holds the ifj25c cobra command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var trace bool

var rootCmd = &cobra.Command{
	Use:   "ifj25c [source-file]",
	Short: "Compile IFJ25 source into IFJcode25",
	Long: `ifj25c reads a single IFJ25 source file and writes the equivalent
IFJcode25 program to stdout, exiting with the code of the first error
encountered (lexical, syntax, or semantic).`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

// Execute runs the root command, exiting the process with the mapped
// compiler exit code on failure (spec §6).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "emit scanner state tracing to stderr")
}
