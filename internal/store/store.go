package store

import (
	"context"
	"sync"
)

// Action is a plain state-transition message. Type identifies the transition,
// Payload carries optional data; reducers assert the concrete payload type.
type Action struct {
	Type    string
	Payload any
}

// Reducer maps (previous state, action) to next state. Reducers must be pure:
// no side effects, no mutation of the input state, same output for same input.
type Reducer[S any] func(S, Action) S

// Dispatch applies an action to the store synchronously.
type Dispatch func(Action)

// Thunk is a unit of asynchronous work. It is handed a dispatch capability and
// emits request-lifecycle actions (start, then success or failure) as it runs.
type Thunk func(ctx context.Context, dispatch Dispatch)

// Store holds a single state value and applies actions to it through a
// reducer. All dispatches are serialized; subscribers are invoked after each
// dispatch with the new state. State lives only for the process lifetime.
type Store[S any] struct {
	mu      sync.Mutex
	state   S
	initial S
	reducer Reducer[S]

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(S)
}

// New builds a store with the given reducer and initial state. The initial
// state is retained so Reset can restore it.
func New[S any](reducer Reducer[S], initial S) *Store[S] {
	return &Store[S]{
		state:   initial,
		initial: initial,
		reducer: reducer,
		subs:    map[int]func(S){},
	}
}

// State returns the current state value.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch runs the reducer over the action and notifies subscribers.
// It returns only after the state transition has been applied.
func (s *Store[S]) Dispatch(a Action) {
	s.mu.Lock()
	s.state = s.reducer(s.state, a)
	next := s.state
	s.mu.Unlock()

	s.notify(next)
}

// Do executes a thunk with this store's dispatch capability.
func (s *Store[S]) Do(ctx context.Context, t Thunk) {
	t(ctx, s.Dispatch)
}

// Subscribe registers fn to run after every dispatch. The returned function
// removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Reset restores the state captured at construction time. Intended for
// teardown between app sessions and in tests.
func (s *Store[S]) Reset() {
	s.mu.Lock()
	s.state = s.initial
	next := s.state
	s.mu.Unlock()

	s.notify(next)
}

func (s *Store[S]) notify(state S) {
	s.subMu.Lock()
	fns := make([]func(S), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
