// Package store owns the client state. All mutations go through Dispatch,
// which serializes reducer runs and fans the resulting snapshot out to
// subscribers.
package store

import (
	"sync"

	"github.com/openhire/jobboard-be/internal/client/state"
)

// Listener receives a state snapshot after every dispatch.
type Listener func(state.State)

// Store holds the current state behind a mutex. Snapshots returned by State
// are value copies; callers must not retain and mutate the Summaries slice.
type Store struct {
	mu        sync.Mutex
	current   state.State
	listeners []Listener
}

// New returns a store seeded with the initial state.
func New() *Store {
	return &Store{current: state.Initial()}
}

// Dispatch runs the reducer and notifies subscribers with the new snapshot.
// Listeners are invoked outside the lock, in subscription order.
func (s *Store) Dispatch(e state.Event) {
	s.mu.Lock()
	s.current = state.Reduce(s.current, e)
	snapshot := s.current
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// State returns the current snapshot.
func (s *Store) State() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers a listener for future dispatches.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
