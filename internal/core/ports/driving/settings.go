package driving

import "github.com/custodia-labs/occu-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling defaults.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Keys returns the configurable setting keys.
	Keys() []string

	// Value returns the effective value of a setting as text.
	Value(key string) (string, error)

	// SetValue parses and stores a setting given as text.
	SetValue(key, value string) error
}
