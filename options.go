package recordhub

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// storeConfig holds mutable state during Store construction.
type storeConfig struct {
	name       string
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// Option is a function that configures a [Store] during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithName], [WithLogger], [WithRegisterer].
type Option func(*storeConfig) error

// WithName sets the store name used in log attributes and metric labels.
//
// Defaults to the record type's name (e.g. "Pokemon"). Surrounding
// whitespace is trimmed.
//
// Example:
//
//	s, err := recordhub.New[Pokemon](recordhub.WithName("pokedex"))
//
// Returns an error if the name is empty after trimming.
func WithName(name string) Option {
	return func(cfg *storeConfig) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return errors.New("store name cannot be empty")
		}
		cfg.name = name
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the store.
//
// Writes are logged at debug level. If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	s, err := recordhub.New[Pokemon](recordhub.WithLogger(logger))
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *storeConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithRegisterer enables Prometheus metrics for the store.
//
// The collectors are registered on reg when the store is created; see
// [Store] for the metric names. Two stores sharing a registerer must have
// distinct names.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	s, err := recordhub.New[Pokemon](recordhub.WithRegisterer(reg))
//
// Returns an error if reg is nil.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(cfg *storeConfig) error {
		if reg == nil {
			return errors.New("registerer cannot be nil")
		}
		cfg.registerer = reg
		return nil
	}
}
