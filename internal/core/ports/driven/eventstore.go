package driven

import (
	"iter"

	"github.com/custodia-labs/occu-cli/internal/core/domain"
)

// EventStore is an injective mapping from EventID to Event that preserves
// insertion order. Insertion order is the canonical iteration and display
// order. Positional indices refer to that order and are not stable across
// removals: removing index i shifts every later entry down by one.
type EventStore interface {
	// Insert appends event under id.
	// Returns domain.ErrEventExists if id is already present.
	Insert(id domain.EventID, event *domain.Event) error

	// Get retrieves an event by identifier.
	Get(id domain.EventID) (*domain.Event, bool)

	// GetByIndex returns the i-th entry in insertion order.
	// Returns false when i is out of range.
	GetByIndex(i int) (domain.EventID, *domain.Event, bool)

	// RemoveByIndex removes the i-th entry. Out of range is a no-op.
	RemoveByIndex(i int)

	// Remove deletes the entry stored under id.
	// Returns false if id is not present.
	Remove(id domain.EventID) bool

	// All yields entries in insertion order. Each call starts a fresh
	// enumeration. Callers must not mutate the store while iterating.
	All() iter.Seq2[domain.EventID, *domain.Event]

	// Len returns the number of stored events.
	Len() int

	// IsEmpty reports whether the store holds no events.
	IsEmpty() bool
}
