package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderSetGetClear(t *testing.T) {
	h := NewHolder()
	assert.False(t, h.Get().Active())

	state := State{Token: "sometoken", Role: "Manager", ExpiresAt: time.Now().Add(4 * time.Hour).Unix()}
	h.Set(state)
	assert.Equal(t, state, h.Get())
	assert.True(t, h.Get().Active())

	h.Clear()
	assert.Equal(t, State{}, h.Get())
	assert.False(t, h.Get().Active())
}

func TestHolderNotifiesSubscribers(t *testing.T) {
	h := NewHolder()

	var got []State
	unsubscribe := h.Subscribe(func(s State) { got = append(got, s) })

	h.Set(State{Token: "first"})
	h.Set(State{Token: "second"})
	h.Clear()

	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Token)
	assert.Equal(t, "second", got[1].Token)
	assert.Equal(t, State{}, got[2])

	unsubscribe()
	h.Set(State{Token: "third"})
	assert.Len(t, got, 3)

	// Double unsubscribe is harmless.
	unsubscribe()
}

func TestHolderMultipleSubscribersInOrder(t *testing.T) {
	h := NewHolder()

	var order []int
	h.Subscribe(func(State) { order = append(order, 1) })
	h.Subscribe(func(State) { order = append(order, 2) })

	h.Set(State{Token: "sometoken"})
	assert.Equal(t, []int{1, 2}, order)
}

func TestHolderConcurrentAccess(t *testing.T) {
	h := NewHolder()
	h.Subscribe(func(State) {})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Set(State{Token: "t"})
				_ = h.Get()
				h.Clear()
			}
		}()
	}
	wg.Wait()
}
