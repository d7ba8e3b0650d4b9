// Package session holds client-side session state in one place. Instead of
// independent components each reading a stored token ad hoc, they share a
// Holder: Get/Set/Clear plus change notification, so every component observes
// the same login, logout, and expiry transitions.
package session

import "sync"

// State is the session context a client carries between requests.
type State struct {
	Token     string
	Role      string
	ExpiresAt int64 // unix seconds; zero when no session
}

// Active reports whether the holder currently carries a token.
func (s State) Active() bool { return s.Token != "" }

// Holder is a concurrency-safe session-state container with observer-style
// change notification. The zero value is not usable; call NewHolder.
type Holder struct {
	mu     sync.RWMutex
	state  State
	subs   map[int]func(State)
	nextID int
}

func NewHolder() *Holder {
	return &Holder{subs: make(map[int]func(State))}
}

func (h *Holder) Get() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Set replaces the session state and notifies subscribers.
func (h *Holder) Set(state State) {
	h.mu.Lock()
	h.state = state
	subs := h.snapshotSubs()
	h.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Clear discards the session state and notifies subscribers with the empty
// state. Clearing does not revoke the token server-side; callers wanting
// revocation use the logout endpoint first.
func (h *Holder) Clear() {
	h.Set(State{})
}

// Subscribe registers fn to run on every state change. Notification is
// synchronous and in registration order. The returned function removes the
// subscription; calling it more than once is harmless.
func (h *Holder) Subscribe(fn func(State)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// snapshotSubs must be called with mu held.
func (h *Holder) snapshotSubs() []func(State) {
	subs := make([]func(State), 0, len(h.subs))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}
