// Package styles provides the colour palette and text styles shared by the
// interactive front-ends.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour, used for headers.
	Primary lipgloss.Color

	// Secondary is used for timestamps.
	Secondary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Error:     lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles bound to one renderer.
type Styles struct {
	// Header style for section banners.
	Header lipgloss.Style

	// Index style for list positions.
	Index lipgloss.Style

	// Timestamp style for creation times.
	Timestamp lipgloss.Style

	// Notice style for informational text.
	Notice lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style
}

// New creates styles for r. When color is false every style renders its
// input unchanged.
func New(r *lipgloss.Renderer, theme *Theme, color bool) Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	plain := r.NewStyle()
	if !color {
		return Styles{Header: plain, Index: plain, Timestamp: plain, Notice: plain, Error: plain}
	}

	return Styles{
		Header:    plain.Bold(true).Foreground(theme.Primary),
		Index:     plain.Bold(true),
		Timestamp: plain.Foreground(theme.Secondary),
		Notice:    plain.Foreground(theme.Muted),
		Error:     plain.Foreground(theme.Error),
	}
}
