package recordhub

import "github.com/jpalmerr/recordhub/internal/hub"

// Record is anything the store can hold: an entity with a unique string
// identifier.
//
// The store trusts ID. A record returning an empty or unstable identifier
// is stored under whatever ID returns at the time of [Store.Set].
type Record interface {
	ID() string
}

// BeforeAddEvent is published immediately before a record is written.
//
// HasPrevious reports whether a record with the same identifier was
// already stored; when it is false, Previous is the zero value.
type BeforeAddEvent[T Record] struct {
	// Previous is the record being replaced.
	Previous T

	// HasPrevious is false when the identifier was not yet stored.
	HasPrevious bool

	// Value is the record about to be stored.
	Value T
}

// AfterAddEvent is published immediately after a record is written.
type AfterAddEvent[T Record] struct {
	// Value is the record that was stored.
	Value T
}

// Subscription is the handle returned by [Store.OnBeforeAdd] and
// [Store.OnAfterAdd]. Call Unsubscribe to stop receiving events; calling
// it more than once is a no-op.
type Subscription = hub.Subscription
