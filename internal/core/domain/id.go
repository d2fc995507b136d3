package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// shortIDLen is the number of trailing characters shown by EventID.Short.
const shortIDLen = 4

// maxUnixSeconds bounds decoded timestamps to what time.Time can represent
// after conversion to the local zone without wrapping.
const maxUnixSeconds = math.MaxInt64 / int64(time.Second)

// EventID uniquely identifies an Event.
// It is a UUIDv7: the leading 48 bits hold the Unix time in milliseconds,
// so identifiers sort by creation time and the creation time can be
// recovered without storing it separately.
type EventID uuid.UUID

// NilEventID is the zero identifier.
var NilEventID = EventID(uuid.Nil)

// NewEventID generates a new time-ordered identifier.
// Identifiers generated by one process are monotonically increasing.
func NewEventID() EventID {
	return EventID(uuid.Must(uuid.NewV7()))
}

// ParseEventID parses the canonical textual form of an identifier.
func ParseEventID(s string) (EventID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilEventID, fmt.Errorf("parsing event id %q: %w", s, err)
	}
	return EventID(id), nil
}

// String returns the canonical textual form of the identifier.
func (id EventID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the last four characters of the identifier.
func (id EventID) Short() string {
	s := id.String()
	if len(s) <= shortIDLen {
		return s
	}
	return s[len(s)-shortIDLen:]
}

// Unix returns the embedded (seconds, nanoseconds) pair.
// Returns ErrInvalidTimestamp if the identifier is not a version 7 UUID.
func (id EventID) Unix() (sec, nsec int64, err error) {
	u := uuid.UUID(id)
	if u.Variant() != uuid.RFC4122 || u.Version() != 7 {
		return 0, 0, fmt.Errorf("%w: version %d", ErrInvalidTimestamp, u.Version())
	}
	sec, nsec = u.Time().UnixTime()
	if sec < 0 || sec > maxUnixSeconds {
		return 0, 0, fmt.Errorf("%w: %d seconds out of range", ErrInvalidTimestamp, sec)
	}
	return sec, nsec, nil
}

// Timestamp returns the embedded creation time in the local time zone.
func (id EventID) Timestamp() (time.Time, error) {
	sec, nsec, err := id.Unix()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, nsec).Local(), nil
}
