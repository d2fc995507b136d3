package domain

import (
	"fmt"
	"strings"
	"time"
)

// now is the clock used for occurance creation times.
var now = time.Now

// Occurance is a single timestamped note recorded against an Event.
// Occurances are immutable once created.
type Occurance struct {
	title       string
	description string
	createdAt   time.Time
	metadata    *Metadata
}

func newOccurance(title, description string, metadata *Metadata) Occurance {
	return Occurance{
		title:       title,
		description: description,
		createdAt:   now(),
		metadata:    metadata.Clone(),
	}
}

// Title returns the occurance title.
func (o Occurance) Title() string { return o.title }

// Description returns the occurance description.
func (o Occurance) Description() string { return o.description }

// CreatedAt returns when the occurance was recorded, in the local time zone.
func (o Occurance) CreatedAt() time.Time { return o.createdAt }

// Metadata returns a copy of the occurance metadata.
func (o Occurance) Metadata() *Metadata { return o.metadata.Clone() }

// ValidMetadata reports whether every metadata key is free of newlines and colons.
// Metadata is not checked when an occurance is created.
func (o Occurance) ValidMetadata() bool {
	return o.metadata.Validate() == nil
}

// String renders the occurance as "Occurance [ title: 'description' ]".
func (o Occurance) String() string {
	return fmt.Sprintf("Occurance [ %s: '%s' ]", o.title, o.description)
}

// Event is a named log holding its occurances in chronological order.
type Event struct {
	id          EventID
	title       string
	description string
	occurances  []Occurance
}

// NewEvent creates an Event with a freshly generated identifier.
// The identifier is the key the Event is stored under; read it with ID.
func NewEvent(title, description string) *Event {
	return RestoreEvent(NewEventID(), title, description)
}

// RestoreEvent rebuilds an Event around a previously assigned identifier.
func RestoreEvent(id EventID, title, description string) *Event {
	return &Event{
		id:          id,
		title:       title,
		description: description,
	}
}

// ID returns the identifier assigned at creation.
func (e *Event) ID() EventID { return e.id }

// Title returns the event title.
func (e *Event) Title() string { return e.title }

// Description returns the event description.
func (e *Event) Description() string { return e.description }

// CreatedAt returns the creation time embedded in the identifier.
func (e *Event) CreatedAt() (time.Time, error) { return e.id.Timestamp() }

// Occur appends a new occurance stamped with the current time.
func (e *Event) Occur(title, description string) {
	e.OccurWithMetadata(title, description, nil)
}

// OccurWithMetadata appends a new occurance carrying a copy of metadata.
func (e *Event) OccurWithMetadata(title, description string, metadata *Metadata) {
	e.occurances = append(e.occurances, newOccurance(title, description, metadata))
}

// Occurances returns the occurances, oldest first.
func (e *Event) Occurances() []Occurance {
	out := make([]Occurance, len(e.occurances))
	copy(out, e.occurances)
	return out
}

// String renders the event header followed by one line per occurance.
func (e *Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event ( uuid: %s, title: %s, description: %s )", e.id.Short(), e.title, e.description)
	for _, o := range e.occurances {
		b.WriteString("\n")
		b.WriteString(o.String())
	}
	return b.String()
}
