package driven

import "context"

// ConfigStore provides access to application configuration.
// Keys use dot notation for nested tables, e.g. "shell.prompt".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Watch reloads configuration whenever the backing storage changes,
	// calling onReload after each successful reload. Blocks until ctx is done.
	Watch(ctx context.Context, onReload func()) error

	// Path returns the configuration file path.
	Path() string
}
