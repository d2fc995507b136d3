package memory

import (
	"iter"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/custodia-labs/occu-cli/internal/core/domain"
	"github.com/custodia-labs/occu-cli/internal/core/ports/driven"
)

// Ensure EventStore implements the interface.
var _ driven.EventStore = (*EventStore)(nil)

// EventStore is an insertion-ordered in-memory implementation of driven.EventStore.
// Nothing is persisted: all events are lost when the process exits.
type EventStore struct {
	mu     sync.RWMutex
	events *orderedmap.OrderedMap[domain.EventID, *domain.Event]
}

// NewEventStore creates a new empty event store.
func NewEventStore() *EventStore {
	return &EventStore{
		events: orderedmap.New[domain.EventID, *domain.Event](),
	}
}

// Insert appends an event at the end of iteration order.
func (s *EventStore) Insert(id domain.EventID, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events.Get(id); ok {
		return domain.ErrEventExists
	}
	s.events.Set(id, event)
	return nil
}

// Get retrieves an event by identifier.
func (s *EventStore) Get(id domain.EventID) (*domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events.Get(id)
}

// GetByIndex returns the i-th entry in insertion order.
func (s *EventStore) GetByIndex(i int) (domain.EventID, *domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pair := s.pairAt(i)
	if pair == nil {
		return domain.NilEventID, nil, false
	}
	return pair.Key, pair.Value, true
}

// RemoveByIndex removes the i-th entry if present.
func (s *EventStore) RemoveByIndex(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pair := s.pairAt(i); pair != nil {
		s.events.Delete(pair.Key)
	}
}

// Remove deletes the entry stored under id.
func (s *EventStore) Remove(id domain.EventID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.events.Delete(id)
	return ok
}

// All yields a snapshot of the entries taken when iteration starts.
func (s *EventStore) All() iter.Seq2[domain.EventID, *domain.Event] {
	return func(yield func(domain.EventID, *domain.Event) bool) {
		for _, e := range s.snapshot() {
			if !yield(e.id, e.event) {
				return
			}
		}
	}
}

// Len returns the number of stored events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events.Len()
}

// IsEmpty reports whether the store holds no events.
func (s *EventStore) IsEmpty() bool {
	return s.Len() == 0
}

// pairAt walks to position i (caller must hold lock).
func (s *EventStore) pairAt(i int) *orderedmap.Pair[domain.EventID, *domain.Event] {
	if i < 0 || i >= s.events.Len() {
		return nil
	}
	pair := s.events.Oldest()
	for ; i > 0; i-- {
		pair = pair.Next()
	}
	return pair
}

type entry struct {
	id    domain.EventID
	event *domain.Event
}

func (s *EventStore) snapshot() []entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entry, 0, s.events.Len())
	for pair := s.events.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, entry{id: pair.Key, event: pair.Value})
	}
	return out
}
