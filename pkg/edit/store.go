package edit

import (
	"sort"
	"sync"
)

// Store is an observable cell holding the current EditingValue. It is the
// single source of truth consumed by rendering collaborators and published to
// the platform input channel.
//
// Set replaces the value and notifies observers synchronously; the store does
// not deduplicate equal values, that is the caller's concern. Observers are
// called outside the store's lock, so an observer may itself call Set;
// callers that do so are responsible for breaking their own feedback loops.
type Store struct {
	mu        sync.RWMutex
	value     EditingValue
	observers map[int]func(EditingValue)
	nextID    int
}

// NewStore creates a Store seeded with the given value.
func NewStore(value EditingValue) *Store {
	return &Store{value: value, observers: make(map[int]func(EditingValue))}
}

// Get returns the current value.
func (s *Store) Get() EditingValue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the current value and notifies all observers, in subscription
// order, before returning.
func (s *Store) Set(value EditingValue) {
	s.mu.Lock()
	s.value = value
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	observers := make([]func(EditingValue), len(ids))
	for i, id := range ids {
		observers[i] = s.observers[id]
	}
	s.mu.Unlock()

	for _, observer := range observers {
		observer(value)
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(observer func(EditingValue)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.observers[id] = observer
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}
