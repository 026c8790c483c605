package todolists

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

type storeOption func(*Store)

// WithInitialState makes the store start from the given collection instead of InitialState.
func WithInitialState(state []TodolistDomain) storeOption {
	return func(s *Store) {
		s.state = state
	}
}

// Store holds the canonical todo-lists collection. The only way to change it is Dispatch, which replaces the
// collection with what Reduce returns; the collection is never modified in place.
type Store struct {
	mu    sync.Mutex
	state []TodolistDomain

	// Notified in subscription order.
	subscribers []subscriber
	nextSub     int
}

type subscriber struct {
	id int
	fn func([]TodolistDomain)
}

func NewStore(opts ...storeOption) *Store {
	s := &Store{
		state: InitialState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current collection. Treat it as read-only.
func (s *Store) State() []TodolistDomain {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the action and then calls every subscriber with the new collection. Subscribers are called
// outside the store's lock, so they may call State or Dispatch themselves.
func (s *Store) Dispatch(action Action) {
	if action == nil {
		return
	}
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	state := s.state
	subscribers := make([]func([]TodolistDomain), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subscribers = append(subscribers, sub.fn)
	}
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"action": action.Type(),
		"count":  len(state),
	}).Debug("Dispatched")
	for _, fn := range subscribers {
		fn(state)
	}
}

// Subscribe registers fn to be called after each dispatch, after the subscribers registered before it. The
// returned function unregisters it.
func (s *Store) Subscribe(fn func([]TodolistDomain)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				// Copy, so a dispatch iterating the old slice is not affected.
				next := make([]subscriber, 0, len(s.subscribers)-1)
				next = append(next, s.subscribers[:i]...)
				s.subscribers = append(next, s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Run executes the coordinator, giving it the store's Dispatch. It blocks until the coordinator returns; run it
// in a goroutine to not wait for the network. Overlapping coordinators are not ordered with respect to each
// other: whichever response arrives last determines the state.
func (s *Store) Run(ctx context.Context, thunk Thunk) error {
	return thunk(ctx, s.Dispatch)
}
