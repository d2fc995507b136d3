package domain

import (
	"fmt"
	"strings"
)

// AppSettings holds user-configurable behaviour of the shell.
type AppSettings struct {
	Shell   ShellSettings
	Display DisplaySettings
}

// ShellSettings configures the interactive loop.
type ShellSettings struct {
	// Prompt is printed before each read when prompt mode is on.
	Prompt string
}

// DisplaySettings configures listing output.
type DisplaySettings struct {
	// TimestampFormat is a Go time layout used for event creation times.
	TimestampFormat string

	// Color enables styled output on terminals that support it.
	Color bool
}

// DefaultTimestampFormat renders millisecond precision with the zone offset.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000 -07:00"

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Shell: ShellSettings{
			Prompt: "occu> ",
		},
		Display: DisplaySettings{
			TimestampFormat: DefaultTimestampFormat,
			Color:           true,
		},
	}
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	if strings.TrimSpace(s.Display.TimestampFormat) == "" {
		return fmt.Errorf("%w: timestamp format must not be empty", ErrInvalidSetting)
	}
	if strings.Contains(s.Shell.Prompt, "\n") {
		return fmt.Errorf("%w: prompt must be a single line", ErrInvalidSetting)
	}
	return nil
}
