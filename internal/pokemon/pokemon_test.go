package pokemon

import (
	"strings"
	"testing"
)

func TestPokemon_ID(t *testing.T) {
	p := Pokemon{Name: "Bulbasaur", Attack: 50, Defense: 10}

	if p.ID() != "Bulbasaur" {
		t.Errorf("ID() = %q, want %q", p.ID(), "Bulbasaur")
	}
	if p.Total() != 60 {
		t.Errorf("Total() = %v, want %v", p.Total(), 60)
	}
}

func TestScorer(t *testing.T) {
	p := Pokemon{Name: "Onix", Attack: 45, Defense: 160}

	tests := []struct {
		name string
		want float64
	}{
		{name: "attack", want: 45},
		{name: "defense", want: 160},
		{name: "total", want: 205},
		{name: "  Total ", want: 205},
		{name: "ATTACK", want: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Scorer(tt.name)
			if err != nil {
				t.Fatalf("Scorer(%q) error = %v", tt.name, err)
			}
			if got := fn(p); got != tt.want {
				t.Errorf("Scorer(%q)(p) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestScorer_Unknown(t *testing.T) {
	_, err := Scorer("speed")
	if err == nil {
		t.Fatal("Scorer(speed) expected error, got nil")
	}
	if !strings.Contains(err.Error(), "attack, defense, total") {
		t.Errorf("Scorer(speed) error = %v, want valid names listed", err)
	}
}

func TestScorerNames(t *testing.T) {
	got := strings.Join(ScorerNames(), ",")
	if got != "attack,defense,total" {
		t.Errorf("ScorerNames() = %v, want attack,defense,total", got)
	}
}
