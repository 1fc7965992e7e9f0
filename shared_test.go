package recordhub

import (
	"sync"
	"testing"
)

// trainer is a second record type, used to check per-type isolation.
type trainer struct {
	Name  string
	Badge int
}

func (t trainer) ID() string { return t.Name }

// sharedOnly is never used outside TestShared_ConcurrentFirstAccess.
type sharedOnly struct{ Key string }

func (s sharedOnly) ID() string { return s.Key }

func TestShared_SameInstance(t *testing.T) {
	a := Shared[pokemon]()
	b := Shared[pokemon]()

	if a != b {
		t.Error("Shared() returned different instances for the same type")
	}
}

func TestShared_PerTypeIsolation(t *testing.T) {
	pokedex := Shared[pokemon]()
	trainers := Shared[trainer]()

	pokedex.Set(pokemon{Name: "Brock"})

	if _, ok := trainers.Get("Brock"); ok {
		t.Error("trainer store sees a record written to the pokemon store")
	}

	trainers.Set(trainer{Name: "Misty", Badge: 2})
	got, ok := Shared[trainer]().Get("Misty")
	if !ok || got.Badge != 2 {
		t.Errorf("Shared[trainer]().Get(Misty) = %+v, %v, want Badge 2", got, ok)
	}
}

func TestShared_DefaultName(t *testing.T) {
	if got := Shared[trainer]().Name(); got != "trainer" {
		t.Errorf("Name() = %q, want %q", got, "trainer")
	}
}

func TestShared_ConcurrentFirstAccess(t *testing.T) {
	var wg sync.WaitGroup
	stores := make([]*Store[sharedOnly], 20)

	for i := range stores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stores[i] = Shared[sharedOnly]()
		}(i)
	}
	wg.Wait()

	for i, s := range stores {
		if s != stores[0] {
			t.Fatalf("Shared() call %d returned a different instance", i)
		}
	}
}
