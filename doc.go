// Package recordhub provides a generic in-memory record store with
// write-time notifications.
//
// Records are any type with a string identifier (see [Record]). The store
// keeps one record per identifier and publishes an event before and after
// every write, so observers can audit, mirror or react to changes without
// the writer knowing about them.
//
// # Quick Start
//
// Define a record type and create a store:
//
//	type Pokemon struct {
//	    Name    string
//	    Attack  int
//	    Defense int
//	}
//
//	func (p Pokemon) ID() string { return p.Name }
//
//	s, _ := recordhub.New[Pokemon]()
//	s.Set(Pokemon{Name: "Bulbasaur", Attack: 50, Defense: 10})
//
//	p, ok := s.Get("Bulbasaur") // ok == true
//
// # Notifications
//
// [Store.OnBeforeAdd] listeners receive the previous record (if any) and
// the incoming one; [Store.OnAfterAdd] listeners receive the stored
// record. Both return a [Subscription]:
//
//	sub := s.OnAfterAdd(func(e recordhub.AfterAddEvent[Pokemon]) {
//	    fmt.Println("stored", e.Value.Name)
//	})
//	defer sub.Unsubscribe()
//
// Listeners run synchronously inside [Store.Set], in registration order.
// Listener panics are not recovered.
//
// # Traversal and Selection
//
// [Store.Visit] calls a function for every record, in no particular order.
// [Store.SelectBest] returns the record with the highest positive score:
//
//	strongest, ok := s.SelectBest(func(p Pokemon) float64 {
//	    return float64(p.Attack)
//	})
//
// Scores are compared against a baseline of zero, so a store in which
// every record scores zero or less yields no result.
//
// # Shared Stores
//
// [Shared] returns a lazily created, process-wide store per record type:
//
//	recordhub.Shared[Pokemon]().Set(p)
//
// # Loading Records
//
// [Adapter] wraps a store in the one-method handler used by the loader
// package to feed records from a file:
//
//	n, err := loader.LoadFile[Pokemon]("pokedex.yaml", recordhub.NewAdapter(s))
//
// # Configuration
//
// [New] accepts functional options: [WithName], [WithLogger] and
// [WithRegisterer] (Prometheus metrics).
package recordhub
