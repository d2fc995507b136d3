package domain

import (
	"fmt"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// reservedKeyChars may not appear in metadata keys.
// They are kept free for a future line-based "key: value" serialisation.
const reservedKeyChars = "\n:"

// Metadata is an insertion-ordered set of string key/value pairs attached
// to an Occurance. Reads on a nil *Metadata behave as on an empty set;
// Set needs a value from NewMetadata.
type Metadata struct {
	entries *orderedmap.OrderedMap[string, string]
}

// NewMetadata creates an empty metadata set.
func NewMetadata() *Metadata {
	return &Metadata{entries: orderedmap.New[string, string]()}
}

// Set stores value under key. Re-setting a key keeps its original position.
// Keys are not validated here, call Validate before exporting.
func (m *Metadata) Set(key, value string) {
	if m == nil || m.entries == nil {
		panic("domain: Set on uninitialised Metadata, use NewMetadata")
	}
	m.entries.Set(key, value)
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	return m.entries.Get(key)
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return m.entries.Len()
}

// All yields the pairs in insertion order.
func (m *Metadata) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	keys := make([]string, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Validate reports the first key containing a newline or a colon.
func (m *Metadata) Validate() error {
	for k := range m.All() {
		if !ValidMetadataKey(k) {
			return fmt.Errorf("%w: key %q contains a reserved character", ErrInvalidMetadata, k)
		}
	}
	return nil
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (m *Metadata) Clone() *Metadata {
	c := NewMetadata()
	for k, v := range m.All() {
		c.Set(k, v)
	}
	return c
}

// ValidMetadataKey reports whether key is free of reserved characters.
func ValidMetadataKey(key string) bool {
	return !strings.ContainsAny(key, reservedKeyChars)
}
