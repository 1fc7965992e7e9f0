package recordhub

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/jpalmerr/recordhub/internal/hub"
)

// Store is an in-memory collection of records keyed by [Record.ID].
//
// Every write goes through [Store.Set], which publishes a [BeforeAddEvent]
// before the record is stored and an [AfterAddEvent] after it. Reads
// ([Store.Get], [Store.Visit], [Store.SelectBest]) never publish.
//
// Store is safe for concurrent use. No lock is held while listeners,
// visitors or score functions run, so they may call back into the store.
// Set is not serialized end to end: concurrent writers to the same
// identifier may interleave their events.
//
// When created with [WithRegisterer], the store exports three metrics, all
// labelled with store=<name>:
//
//   - recordhub_writes_total: Set calls applied
//   - recordhub_replacements_total: Set calls that overwrote a record
//   - recordhub_records: records currently held
type Store[T Record] struct {
	name    string
	logger  *slog.Logger
	metrics *storeMetrics

	mu      sync.RWMutex
	records map[string]T

	beforeAdd *hub.Hub[BeforeAddEvent[T]]
	afterAdd  *hub.Hub[AfterAddEvent[T]]
}

// New creates an empty [Store] with the given options.
//
// Defaults:
//   - Name: the record type's name
//   - Logger: [slog.Default]
//   - Metrics: disabled
//
// Returns an error if any option is invalid or metric registration fails.
//
// Example:
//
//	s, err := recordhub.New[Pokemon](
//	    recordhub.WithName("pokedex"),
//	    recordhub.WithLogger(logger),
//	)
func New[T Record](opts ...Option) (*Store[T], error) {
	cfg := &storeConfig{
		name: typeName[T](),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	var metrics *storeMetrics
	if cfg.registerer != nil {
		var err error
		metrics, err = newStoreMetrics(cfg.registerer, cfg.name)
		if err != nil {
			return nil, err
		}
	}

	return &Store[T]{
		name:      cfg.name,
		logger:    logger,
		metrics:   metrics,
		records:   make(map[string]T),
		beforeAdd: hub.New[BeforeAddEvent[T]](),
		afterAdd:  hub.New[AfterAddEvent[T]](),
	}, nil
}

// Set stores r under r.ID(), replacing any record with the same identifier.
//
// Before the write, listeners registered with [Store.OnBeforeAdd] receive
// the previous record (if any) and r. After the write, listeners
// registered with [Store.OnAfterAdd] receive r. Listeners run on the
// caller's goroutine; a listener panic propagates out of Set, and a panic
// in a before-listener leaves the store unchanged.
func (s *Store[T]) Set(r T) {
	id := r.ID()

	s.mu.RLock()
	prev, replaced := s.records[id]
	s.mu.RUnlock()

	s.beforeAdd.Publish(BeforeAddEvent[T]{
		Previous:    prev,
		HasPrevious: replaced,
		Value:       r,
	})

	s.mu.Lock()
	s.records[id] = r
	size := len(s.records)
	s.mu.Unlock()

	s.metrics.observeWrite(replaced, size)
	s.logger.Debug("record stored",
		"store", s.name,
		"id", id,
		"replaced", replaced,
	)

	s.afterAdd.Publish(AfterAddEvent[T]{Value: r})
}

// Get returns the record stored under id.
//
// The boolean is false if no record has that identifier, in which case the
// zero value of T is returned.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	return r, ok
}

// OnBeforeAdd registers fn to receive a [BeforeAddEvent] for every future
// [Store.Set]. Call Unsubscribe on the returned handle to stop.
func (s *Store[T]) OnBeforeAdd(fn func(BeforeAddEvent[T])) Subscription {
	return s.beforeAdd.Subscribe(fn)
}

// OnAfterAdd registers fn to receive an [AfterAddEvent] for every future
// [Store.Set]. Call Unsubscribe on the returned handle to stop.
func (s *Store[T]) OnAfterAdd(fn func(AfterAddEvent[T])) Subscription {
	return s.afterAdd.Subscribe(fn)
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Name returns the store name used in logs and metric labels.
func (s *Store[T]) Name() string {
	return s.name
}

// snapshot returns a copy of the stored records. Order is not guaranteed.
func (s *Store[T]) snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]T, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	return records
}

// typeName returns a readable name for T, used as the default store name.
func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
