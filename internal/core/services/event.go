package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/occu-cli/internal/core/domain"
	"github.com/custodia-labs/occu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/occu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/occu-cli/internal/logger"
)

// Ensure EventService implements the interface.
var _ driving.EventService = (*EventService)(nil)

// EventService manages the event log held in an EventStore.
type EventService struct {
	store driven.EventStore
}

// NewEventService creates a new event service over store.
func NewEventService(store driven.EventStore) *EventService {
	return &EventService{store: store}
}

// Create constructs a new event and appends it to the store.
func (s *EventService) Create(_ context.Context, title, description string) (domain.EventID, error) {
	event := domain.NewEvent(title, description)
	if err := s.store.Insert(event.ID(), event); err != nil {
		return domain.NilEventID, err
	}
	logger.Info("created event %s (%q)", event.ID(), title)
	return event.ID(), nil
}

// All yields events in insertion order.
func (s *EventService) All(_ context.Context) iter.Seq2[domain.EventID, *domain.Event] {
	return s.store.All()
}

// At returns the event at position index.
func (s *EventService) At(_ context.Context, index int) (domain.EventID, *domain.Event, bool) {
	return s.store.GetByIndex(index)
}

// Occur records an occurance on the event at position index.
// Metadata keys are validated here, before anything is appended.
func (s *EventService) Occur(
	_ context.Context, index int, title, description string, metadata *domain.Metadata,
) error {
	_, event, ok := s.store.GetByIndex(index)
	if !ok {
		return fmt.Errorf("%w at index %d", domain.ErrEventNotFound, index)
	}
	if err := metadata.Validate(); err != nil {
		return err
	}
	event.OccurWithMetadata(title, description, metadata)
	logger.Info("recorded occurance %q on event %s", title, event.ID())
	return nil
}

// RemoveAt deletes the event at position index. Out of range is a no-op.
func (s *EventService) RemoveAt(_ context.Context, index int) {
	id, _, ok := s.store.GetByIndex(index)
	if !ok {
		logger.Debug("remove: no event at index %d", index)
		return
	}
	s.store.RemoveByIndex(index)
	logger.Info("removed event %s", id)
}

// Remove deletes the event with identifier id.
func (s *EventService) Remove(_ context.Context, id domain.EventID) bool {
	if !s.store.Remove(id) {
		logger.Debug("remove: event %s no longer stored", id)
		return false
	}
	logger.Info("removed event %s", id)
	return true
}

// Count returns the number of events.
func (s *EventService) Count(_ context.Context) int {
	return s.store.Len()
}
