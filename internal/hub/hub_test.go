package hub

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishWithoutListeners(t *testing.T) {
	h := New[string]()
	require.NotPanics(t, func() { h.Publish("nobody listening") })
	assert.Equal(t, 0, h.Len())
}

func TestHub_ZeroValueUsable(t *testing.T) {
	var h Hub[int]
	var got []int
	h.Subscribe(func(v int) { got = append(got, v) })
	h.Publish(7)
	assert.Equal(t, []int{7}, got)
}

func TestHub_RegistrationOrder(t *testing.T) {
	h := New[int]()

	var order []string
	h.Subscribe(func(int) { order = append(order, "first") })
	h.Subscribe(func(int) { order = append(order, "second") })
	h.Subscribe(func(int) { order = append(order, "third") })

	h.Publish(1)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestHub_FanOutPayload(t *testing.T) {
	h := New[string]()

	var a, b []string
	h.Subscribe(func(s string) { a = append(a, s) })
	h.Subscribe(func(s string) { b = append(b, s) })

	h.Publish("x")
	h.Publish("y")

	assert.Equal(t, []string{"x", "y"}, a)
	assert.Equal(t, []string{"x", "y"}, b)
}

func TestHub_Unsubscribe(t *testing.T) {
	h := New[int]()

	calls := 0
	sub := h.Subscribe(func(int) { calls++ })
	require.Equal(t, 1, h.Len())

	h.Publish(1)
	sub.Unsubscribe()
	h.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, h.Len())
}

func TestHub_UnsubscribeIdempotent(t *testing.T) {
	h := New[int]()

	kept := 0
	h.Subscribe(func(int) { kept++ })
	sub := h.Subscribe(func(int) {})

	require.NotPanics(t, func() {
		sub.Unsubscribe()
		sub.Unsubscribe()
		sub.Unsubscribe()
	})

	h.Publish(1)
	assert.Equal(t, 1, kept, "other registrations must survive repeated unsubscribe")
	assert.Equal(t, 1, h.Len())
}

func TestHub_UnsubscribeRemovesOnlyItsRegistration(t *testing.T) {
	h := New[int]()

	calls := 0
	fn := func(int) { calls++ }

	// same function registered twice yields two independent registrations
	first := h.Subscribe(fn)
	second := h.Subscribe(fn)
	assert.NotEqual(t, first.ID(), second.ID())

	first.Unsubscribe()
	h.Publish(1)

	assert.Equal(t, 1, calls)
}

func TestHub_NilListener(t *testing.T) {
	h := New[int]()

	sub := h.Subscribe(nil)

	assert.Equal(t, uuid.Nil, sub.ID())
	assert.Equal(t, 0, h.Len())
	require.NotPanics(t, func() {
		h.Publish(1)
		sub.Unsubscribe()
	})
}

func TestHub_ZeroSubscription(t *testing.T) {
	var sub Subscription
	require.NotPanics(t, sub.Unsubscribe)
}

func TestHub_UnsubscribeSelfDuringPublish(t *testing.T) {
	h := New[int]()

	var sub Subscription
	calls := 0
	sub = h.Subscribe(func(int) {
		calls++
		sub.Unsubscribe()
	})
	after := 0
	h.Subscribe(func(int) { after++ })

	require.NotPanics(t, func() { h.Publish(1) })
	h.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, after)
}

func TestHub_UnsubscribeOtherDuringPublish(t *testing.T) {
	h := New[int]()

	var victim Subscription
	h.Subscribe(func(int) { victim.Unsubscribe() })
	victimCalls := 0
	victim = h.Subscribe(func(int) { victimCalls++ })

	require.NotPanics(t, func() { h.Publish(1) })
	h.Publish(2)

	// the first publish works from a snapshot, so the victim still sees it
	assert.Equal(t, 1, victimCalls)
}

func TestHub_SubscribeDuringPublish(t *testing.T) {
	h := New[int]()

	late := 0
	h.Subscribe(func(int) {
		h.Subscribe(func(int) { late++ })
	})

	h.Publish(1)
	assert.Equal(t, 0, late, "listener added mid-publish must not see the current event")

	h.Publish(2)
	assert.Equal(t, 1, late)
}

func TestHub_ListenerPanicPropagates(t *testing.T) {
	h := New[int]()

	before, after := 0, 0
	h.Subscribe(func(int) { before++ })
	h.Subscribe(func(int) { panic("listener failed") })
	h.Subscribe(func(int) { after++ })

	assert.PanicsWithValue(t, "listener failed", func() { h.Publish(1) })
	assert.Equal(t, 1, before)
	assert.Equal(t, 0, after, "listeners after a panic must not run")
}

func TestHub_ConcurrentAccess(t *testing.T) {
	h := New[int]()

	var mu sync.Mutex
	total := 0
	h.Subscribe(func(int) {
		mu.Lock()
		total++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Publish(j)
			}
		}()
		go func() {
			defer wg.Done()
			sub := h.Subscribe(func(int) {})
			sub.Unsubscribe()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, total)
	assert.Equal(t, 1, h.Len())
}
