package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/occu-cli/internal/core/domain"
)

// EventService manages the event log.
// Positions are zero-based indices into insertion order.
type EventService interface {
	// Create constructs a new event and stores it.
	// Returns domain.ErrEventExists on an identifier collision.
	Create(ctx context.Context, title, description string) (domain.EventID, error)

	// All yields events in insertion order.
	All(ctx context.Context) iter.Seq2[domain.EventID, *domain.Event]

	// At returns the event at position index.
	At(ctx context.Context, index int) (domain.EventID, *domain.Event, bool)

	// Occur records an occurance on the event at position index.
	// Returns domain.ErrEventNotFound if index is out of range and
	// domain.ErrInvalidMetadata if a metadata key is not valid.
	Occur(ctx context.Context, index int, title, description string, metadata *domain.Metadata) error

	// RemoveAt deletes the event at position index. Out of range is a no-op.
	RemoveAt(ctx context.Context, index int)

	// Remove deletes the event with identifier id wherever it now sits.
	// Returns false if it is no longer stored.
	Remove(ctx context.Context, id domain.EventID) bool

	// Count returns the number of events.
	Count(ctx context.Context) int
}
