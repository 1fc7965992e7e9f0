// Package main is the entry point for the recordhub CLI.
//
// The CLI loads a pokedex data file into a record store and queries it.
//
// Usage:
//
//	recordhub list -f pokedex.yaml              # Print every record
//	recordhub get -f pokedex.yaml Bulbasaur     # Print one record
//	recordhub best -f pokedex.yaml --by attack  # Print the top scorer
//	recordhub validate -f pokedex.yaml          # Validate a data file
//	recordhub version                           # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "recordhub",
	Short: "Query pokedex data files through an in-memory record store",
	Long: `recordhub loads a pokedex data file into an in-memory record store
and answers questions about it.

Quick start:
  1. Create a data file (pokedex.yaml)
  2. Run: recordhub list -f pokedex.yaml

Example data file:
  records:
    - id: Bulbasaur
      attack: 50
      defense: 10
    - id: Charmander
      attack: 52
      defense: 43`,
	SilenceUsage: true,
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this recordhub binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "recordhub %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd)
}
