package recordhub

// Adapter exposes a [Store] through the single-method handler shape that
// record loaders expect.
//
// It satisfies loader.Handler[T]:
//
//	store := recordhub.Shared[Pokemon]()
//	n, err := loader.LoadFile[Pokemon]("pokedex.yaml", recordhub.NewAdapter(store))
type Adapter[T Record] struct {
	store *Store[T]
}

// NewAdapter wraps s in an [Adapter].
func NewAdapter[T Record](s *Store[T]) *Adapter[T] {
	return &Adapter[T]{store: s}
}

// AddRecord stores r via [Store.Set].
func (a *Adapter[T]) AddRecord(r T) {
	a.store.Set(r)
}
