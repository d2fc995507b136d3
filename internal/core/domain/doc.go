// Package domain defines the core business entities for occu.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Event: A named log identified by a time-ordered EventID
//   - Occurance: A single timestamped note appended to an Event
//   - Metadata: Insertion-ordered string metadata carried by an Occurance
//   - EventID: A UUIDv7 that doubles as store key and creation timestamp
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, value-type libraries (uuid, ordered map)
//   - Cannot Import: Any internal/ package, any I/O or framework dependency
package domain
