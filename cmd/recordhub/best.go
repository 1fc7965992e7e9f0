package main

import (
	"fmt"
	"strings"

	"github.com/jpalmerr/recordhub/internal/pokemon"
	"github.com/spf13/cobra"
)

// bestCmd prints the highest-scoring record.
var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the highest-scoring record",
	Long: `Load a data file and print the record with the highest score.

Only scores above zero count: if every record scores zero or less, no
record is printed.

Example:
  recordhub best -f pokedex.yaml --by attack
  recordhub best -f pokedex.yaml --by total`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	rootCmd.AddCommand(bestCmd)
	addDataFlag(bestCmd)

	bestCmd.Flags().String("by", "total",
		fmt.Sprintf("score to rank by (%s)", strings.Join(pokemon.ScorerNames(), ", ")))
}

func runBest(cmd *cobra.Command, args []string) error {
	by, _ := cmd.Flags().GetString("by")
	score, err := pokemon.Scorer(by)
	if err != nil {
		return err
	}

	store, err := loadPokedex(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	best, ok := store.SelectBest(score)
	if !ok {
		fmt.Fprintln(out, "no record scores above zero")
		return nil
	}

	fmt.Fprintf(out, "best by %s: %s\n", strings.ToLower(strings.TrimSpace(by)), formatPokemon(best))
	return nil
}
