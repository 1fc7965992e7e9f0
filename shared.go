package recordhub

import (
	"reflect"
	"sync"
)

var (
	sharedMu     sync.Mutex
	sharedStores = make(map[reflect.Type]any)
)

// Shared returns the process-wide [Store] for record type T.
//
// The store is created with default options on first access and lives for
// the rest of the process. Each distinct T gets its own independent store;
// repeated calls with the same T return the same pointer.
//
// Use [New] instead when a store needs a name, logger or metrics.
func Shared[T Record]() *Store[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	sharedMu.Lock()
	defer sharedMu.Unlock()

	if s, ok := sharedStores[key]; ok {
		return s.(*Store[T])
	}

	// New only fails on invalid options, and none are passed here
	s, err := New[T]()
	if err != nil {
		panic("recordhub: creating shared store: " + err.Error())
	}
	sharedStores[key] = s
	return s
}
