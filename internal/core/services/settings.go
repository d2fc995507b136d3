package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/occu-cli/internal/core/domain"
	"github.com/custodia-labs/occu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/occu-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyShellPrompt     = "shell.prompt"
	KeyTimestampFormat = "display.timestamp_format"
	KeyColor           = "display.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or mistyped values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Shell: domain.ShellSettings{
			Prompt: s.getString(KeyShellPrompt, defaults.Shell.Prompt),
		},
		Display: domain.DisplaySettings{
			TimestampFormat: s.getString(KeyTimestampFormat, defaults.Display.TimestampFormat),
			Color:           s.getBool(KeyColor, defaults.Display.Color),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(KeyShellPrompt, settings.Shell.Prompt); err != nil {
		return fmt.Errorf("save shell prompt: %w", err)
	}
	if err := s.configStore.Set(KeyTimestampFormat, settings.Display.TimestampFormat); err != nil {
		return fmt.Errorf("save timestamp format: %w", err)
	}
	if err := s.configStore.Set(KeyColor, settings.Display.Color); err != nil {
		return fmt.Errorf("save color: %w", err)
	}
	return nil
}

// Keys returns the configurable setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyShellPrompt, KeyTimestampFormat, KeyColor}
}

// Value returns the effective value of a setting as text.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	switch key {
	case KeyShellPrompt:
		return settings.Shell.Prompt, nil
	case KeyTimestampFormat:
		return settings.Display.TimestampFormat, nil
	case KeyColor:
		return strconv.FormatBool(settings.Display.Color), nil
	default:
		return "", fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}
}

// SetValue parses and stores a setting given as text.
func (s *SettingsService) SetValue(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	switch key {
	case KeyShellPrompt:
		settings.Shell.Prompt = value
	case KeyTimestampFormat:
		settings.Display.TimestampFormat = value
	case KeyColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidSetting, key, err)
		}
		settings.Display.Color = b
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}
	return s.Save(settings)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	if str, ok := val.(string); ok {
		return str
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return defaultVal
}
