// Package main provides the CLI entrypoint for bridge-generator.
//
// bridge-generator is a source-to-source codegen tool that:
//   - Parses foreign API headers into API description records
//   - Pushes the records through per-phase analysis conversions
//   - Documents every unconvertible item instead of failing the run
//   - Generates bridging code for everything that survived
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

var jsonLog bool

var rootCmd = &cobra.Command{
	Use:     "bridge-generator",
	Short:   "Fault-isolating API conversion pipeline",
	Version: Version,
	Long: `bridge-generator converts batches of API description records between
analysis phases. Items a phase cannot honor are never fatal: each one is
logged and replaced by a terminal placeholder that later stages render as
user-facing documentation of the problem.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false,
		"Emit diagnostics as structured JSON log lines instead of plain text")
}
