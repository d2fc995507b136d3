package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "occu> ", s.Shell.Prompt)
	assert.Equal(t, DefaultTimestampFormat, s.Display.TimestampFormat)
	assert.True(t, s.Display.Color)
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppSettings)
		wantErr bool
	}{
		{"defaults", func(*AppSettings) {}, false},
		{"empty prompt is allowed", func(s *AppSettings) { s.Shell.Prompt = "" }, false},
		{"multi-line prompt", func(s *AppSettings) { s.Shell.Prompt = "a\nb" }, true},
		{"empty format", func(s *AppSettings) { s.Display.TimestampFormat = "" }, true},
		{"blank format", func(s *AppSettings) { s.Display.TimestampFormat = "   " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSetting)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
