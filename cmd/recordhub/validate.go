package main

import (
	"fmt"

	"github.com/jpalmerr/recordhub/internal/pokemon"
	"github.com/jpalmerr/recordhub/loader"
	"github.com/spf13/cobra"
)

// validateCmd validates a data file without loading it into a store.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a data file",
	Long: `Validate a recordhub data file without loading it.

This command expands environment variables, parses the YAML and checks
that every record has an id. It's useful for CI/CD pipelines or
pre-deployment checks.

Exit codes:
  0 - Data file is valid
  1 - Data file is invalid (error details printed to stderr)

Example:
  recordhub validate -f pokedex.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addDataFlag(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	n, err := loader.Validate[pokemon.Pokemon](path)
	if err != nil {
		return fmt.Errorf("invalid data file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Data file is valid!\n")
	fmt.Fprintf(out, "  Records: %d\n", n)
	return nil
}
