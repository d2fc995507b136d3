package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrEventExists", ErrEventExists},
		{"ErrEventNotFound", ErrEventNotFound},
		{"ErrInvalidTimestamp", ErrInvalidTimestamp},
		{"ErrInvalidMetadata", ErrInvalidMetadata},
		{"ErrInvalidSetting", ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrEventExists, ErrInvalidTimestamp))
	assert.False(t, errors.Is(ErrInvalidTimestamp, ErrInvalidMetadata))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("listing: %w", ErrInvalidTimestamp)
	assert.True(t, errors.Is(wrapped, ErrInvalidTimestamp))
	assert.Equal(t, "listing: couldn't parse timestamp from UUID v7", wrapped.Error())
}
