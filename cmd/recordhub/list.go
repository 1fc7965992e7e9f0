package main

import (
	"fmt"
	"sort"

	"github.com/jpalmerr/recordhub/internal/pokemon"
	"github.com/spf13/cobra"
)

// listCmd prints every record in a data file.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every record in a data file",
	Long: `Load a data file and print every record, sorted by id.

Records that share an id are collapsed: the last one in the file wins.

Example:
  recordhub list -f pokedex.yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addDataFlag(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := loadPokedex(cmd)
	if err != nil {
		return err
	}

	var records []pokemon.Pokemon
	store.Visit(func(p pokemon.Pokemon) {
		records = append(records, p)
	})
	// visit order is unspecified
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %7s %8s %6s\n", "ID", "ATTACK", "DEFENSE", "TOTAL")
	for _, p := range records {
		fmt.Fprintf(out, "%-12s %7d %8d %6d\n", p.Name, p.Attack, p.Defense, p.Total())
	}
	fmt.Fprintf(out, "%d records\n", len(records))

	return nil
}
