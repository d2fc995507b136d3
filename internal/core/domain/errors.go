package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEventExists indicates an event with the same identifier is already stored.
	ErrEventExists = errors.New("event already exists")

	// ErrEventNotFound indicates no event exists at the requested position.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidTimestamp indicates an identifier does not embed a decodable timestamp.
	// Only RFC 4122 version 7 identifiers carry one.
	ErrInvalidTimestamp = errors.New("couldn't parse timestamp from UUID v7")

	// ErrInvalidSetting indicates an unknown setting key or an unusable value.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrInvalidMetadata indicates a metadata key contains a reserved character.
	ErrInvalidMetadata = errors.New("invalid metadata")
)
