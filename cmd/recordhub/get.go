package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd prints a single record by id.
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one record",
	Long: `Load a data file and print the record with the given id.

Exits with an error if no record has that id.

Example:
  recordhub get -f pokedex.yaml Bulbasaur`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	addDataFlag(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := loadPokedex(cmd)
	if err != nil {
		return err
	}

	p, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("record %q not found", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatPokemon(p))
	return nil
}
