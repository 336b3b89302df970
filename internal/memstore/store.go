// Package memstore provides a minimal reducer-driven store satisfying the
// rebind.Store contract. It exists for this module's tests and example
// programs; applications bring their own store.
package memstore

import (
	"sync"

	"github.com/statekit/rebind"
)

// Reducer computes the next state from the current state and an action.
// Reducers must be pure; unrecognized actions should return the state
// unchanged.
type Reducer[State any] func(State, rebind.Action) State

// Store holds a single state value and notifies listeners on change.
// It is safe for concurrent use: dispatches may arrive from any
// goroutine, though listeners are invoked on the dispatching one.
type Store[State any] struct {
	mu        sync.Mutex
	state     State
	reducer   Reducer[State]
	listeners map[int]func(State)
	nextID    int
}

// New creates a store seeded with initial and driven by reducer.
func New[State any](initial State, reducer Reducer[State]) *Store[State] {
	return &Store[State]{
		state:     initial,
		reducer:   reducer,
		listeners: make(map[int]func(State)),
	}
}

// Subscribe registers listener, invokes it synchronously with the current
// state, and returns a handle that removes it. Removal takes effect
// before the handle returns.
func (s *Store[State]) Subscribe(listener func(State)) rebind.Unsubscribe {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	current := s.state
	s.mu.Unlock()

	listener(current)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Dispatch reduces the action into the state and notifies every listener
// with the result. Listeners run outside the lock so they may dispatch
// follow-up actions without deadlocking.
func (s *Store[State]) Dispatch(action rebind.Action) {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	next := s.state
	active := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		active = append(active, l)
	}
	s.mu.Unlock()

	for _, l := range active {
		l(next)
	}
}

// State returns the current state value.
func (s *Store[State]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
