package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jpalmerr/recordhub"
	"github.com/jpalmerr/recordhub/internal/pokemon"
	"github.com/jpalmerr/recordhub/loader"
	"github.com/spf13/cobra"
)

// storeName labels the CLI's store in log output.
const storeName = "pokedex"

// newLogger creates a JSON logger on the command's stderr, at the level
// given by --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})), nil
}

// addDataFlag registers the required --file flag on cmd.
func addDataFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "path to data file (required)")
	_ = cmd.MarkFlagRequired("file")
}

// loadPokedex builds a store and fills it from the file named by --file.
//
// Records that repeat an earlier id replace it; each replacement is logged.
func loadPokedex(cmd *cobra.Command) (*recordhub.Store[pokemon.Pokemon], error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	store, err := recordhub.New[pokemon.Pokemon](
		recordhub.WithName(storeName),
		recordhub.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	sub := store.OnBeforeAdd(func(e recordhub.BeforeAddEvent[pokemon.Pokemon]) {
		if e.HasPrevious {
			logger.Warn("duplicate id in data file, replacing earlier record",
				"id", e.Value.ID(),
				"previous_total", e.Previous.Total(),
				"total", e.Value.Total(),
			)
		}
	})
	defer sub.Unsubscribe()

	path, _ := cmd.Flags().GetString("file")
	n, err := loader.LoadFile[pokemon.Pokemon](path, recordhub.NewAdapter(store))
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	logger.Info("data loaded",
		"file", path,
		"records_read", n,
		"records_stored", store.Len(),
	)

	return store, nil
}

// formatPokemon renders one record on a single line.
func formatPokemon(p pokemon.Pokemon) string {
	return fmt.Sprintf("%s (attack=%d defense=%d total=%d)", p.Name, p.Attack, p.Defense, p.Total())
}
