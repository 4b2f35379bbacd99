package cart

import (
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

// A Store owns the cart state and is its only writer.
//
// All mutations go through Dispatch, which serializes them on one mutex.
type Store struct {
	mu     sync.Mutex
	state  domain.CartState
	subs   map[int]chan domain.CartState
	nextID int
	closed bool
}

func NewStore() *Store {
	return &Store{
		state: domain.CartState{},
		subs:  make(map[int]chan domain.CartState),
	}
}

// Dispatch applies a and returns the new state.
func (s *Store) Dispatch(a Action) domain.CartState {
	_, next := s.Transition(a)
	return next
}

// Transition applies a and returns the states before and after it.
func (s *Store) Transition(a Action) (prev, next domain.CartState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev = s.state
	s.state = Reduce(prev, a)

	for _, ch := range s.subs {
		publish(ch, s.state.Clone())
	}
	return prev.Clone(), s.state.Clone()
}

// Read returns a copy of the latest state.
func (s *Store) Read() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe returns a channel that holds the latest state: the current
// one at subscription time and then the result of every dispatch.
// Stale undelivered states are dropped, so a slow reader never blocks
// Dispatch.
//
// The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan domain.CartState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan domain.CartState, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.state.Clone()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() { s.unsubscribe(id) })
	}
	return ch, unsubscribe
}

func (s *Store) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

// Close closes every subscriber channel. Dispatch keeps working.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// publish must be called with the store lock held.
func publish(ch chan domain.CartState, st domain.CartState) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- st:
	default:
	}
}
