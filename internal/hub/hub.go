package hub

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// listener is one registration in a [Hub].
type listener[E any] struct {
	id uuid.UUID
	fn func(E)
}

// Hub is a publish-subscribe registry for events of type E.
//
// Listeners are invoked synchronously, in registration order, on the
// goroutine that calls [Hub.Publish]. The zero value is ready to use.
//
// Hub is safe for concurrent use. Its lock is never held while a listener
// runs, so listeners may subscribe or unsubscribe from inside a callback.
type Hub[E any] struct {
	mu        sync.RWMutex
	listeners []listener[E]
}

// New creates an empty [Hub].
func New[E any]() *Hub[E] {
	return &Hub[E]{}
}

// Subscribe registers fn to be called on every future [Hub.Publish].
//
// The returned [Subscription] removes exactly this registration. A nil fn
// is ignored and yields a Subscription whose Unsubscribe does nothing.
func (h *Hub[E]) Subscribe(fn func(E)) Subscription {
	if fn == nil {
		return Subscription{}
	}

	id := uuid.New()

	h.mu.Lock()
	h.listeners = append(h.listeners, listener[E]{id: id, fn: fn})
	h.mu.Unlock()

	return Subscription{id: id, cancel: func() { h.remove(id) }}
}

// Publish calls every registered listener with e, in registration order.
//
// The listener set is captured when Publish starts: a listener removed
// during this call may still receive this event, and a listener added
// during this call will not. A listener panic propagates to the caller and
// skips the listeners after it.
func (h *Hub[E]) Publish(e E) {
	h.mu.RLock()
	snapshot := slices.Clone(h.listeners)
	h.mu.RUnlock()

	for _, l := range snapshot {
		l.fn(e)
	}
}

// Len returns the number of active registrations.
func (h *Hub[E]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// remove deletes the registration with the given token, if still present.
func (h *Hub[E]) remove(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.listeners = slices.DeleteFunc(h.listeners, func(l listener[E]) bool {
		return l.id == id
	})
}

// Subscription is the handle for one listener registration.
//
// The zero value is valid and refers to no registration.
type Subscription struct {
	id     uuid.UUID
	cancel func()
}

// ID returns the opaque token identifying this registration.
// It is [uuid.Nil] for a Subscription that never registered a listener.
func (s Subscription) ID() uuid.UUID {
	return s.id
}

// Unsubscribe removes the registration. Safe to call multiple times.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}
