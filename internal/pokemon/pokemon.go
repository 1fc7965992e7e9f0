// Package pokemon defines the sample record type served by the recordhub
// CLI, together with the score functions its best command can rank by.
package pokemon

import (
	"fmt"
	"sort"
	"strings"
)

// Pokemon is one entry in a pokedex data file.
type Pokemon struct {
	Name    string `yaml:"id"`
	Attack  int    `yaml:"attack"`
	Defense int    `yaml:"defense"`
}

// ID returns the pokemon's name, which is its key in the store.
func (p Pokemon) ID() string {
	return p.Name
}

// Total returns attack plus defense.
func (p Pokemon) Total() int {
	return p.Attack + p.Defense
}

// ScoreFunc ranks a pokemon; higher is better.
type ScoreFunc func(Pokemon) float64

var scorers = map[string]ScoreFunc{
	"attack":  func(p Pokemon) float64 { return float64(p.Attack) },
	"defense": func(p Pokemon) float64 { return float64(p.Defense) },
	"total":   func(p Pokemon) float64 { return float64(p.Total()) },
}

// Scorer returns the score function registered under name.
//
// Names are case-insensitive. Returns an error listing the valid names if
// name is unknown.
func Scorer(name string) (ScoreFunc, error) {
	fn, ok := scorers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown score %q (expected one of: %s)", name, strings.Join(ScorerNames(), ", "))
	}
	return fn, nil
}

// ScorerNames returns the registered score names, sorted.
func ScorerNames() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
