package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jpalmerr/recordhub"
	"github.com/jpalmerr/recordhub/loader"
)

// Pokemon is the record type for this demo.
type Pokemon struct {
	Name    string `yaml:"id"`
	Attack  int    `yaml:"attack"`
	Defense int    `yaml:"defense"`
}

func (p Pokemon) ID() string { return p.Name }

const pokedex = `
records:
  - id: Bulbasaur
    attack: 50
    defense: 10
  - id: Charmander
    attack: 52
    defense: 43
  - id: Squirtle
    attack: 48
    defense: 65
`

func main() {
	store := recordhub.Shared[Pokemon]()

	// audit every replacement
	audit := store.OnBeforeAdd(func(e recordhub.BeforeAddEvent[Pokemon]) {
		if e.HasPrevious {
			fmt.Printf("  replacing %s: attack %d -> %d\n", e.Value.Name, e.Previous.Attack, e.Value.Attack)
		}
	})
	defer audit.Unsubscribe()

	// print every stored record until the initial load is done
	announce := store.OnAfterAdd(func(e recordhub.AfterAddEvent[Pokemon]) {
		fmt.Printf("  stored %s\n", e.Value.Name)
	})

	fmt.Println("loading pokedex:")
	n, err := loader.Load[Pokemon](strings.NewReader(pokedex), recordhub.NewAdapter(store))
	if err != nil {
		slog.Error("failed to load pokedex", "error", err)
		os.Exit(1)
	}
	announce.Unsubscribe()
	fmt.Printf("loaded %d records\n\n", n)

	// the shared store is the same instance wherever it is requested
	recordhub.Shared[Pokemon]().Set(Pokemon{Name: "Bulbasaur", Attack: 62, Defense: 10})

	if p, ok := store.Get("Bulbasaur"); ok {
		fmt.Printf("Bulbasaur now has attack %d\n", p.Attack)
	}

	strongest, ok := store.SelectBest(func(p Pokemon) float64 {
		return float64(p.Attack + p.Defense)
	})
	if ok {
		fmt.Printf("strongest overall: %s\n", strongest.Name)
	}
}
