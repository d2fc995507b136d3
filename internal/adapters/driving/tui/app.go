// Package tui is the reserved visual shell for occu. It has no views yet:
// the program starts and exits immediately, successfully.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/occu-cli/internal/adapters/driving/tui/keymap"
)

// App is the TUI model following the Elm architecture.
type App struct {
	keys     *keymap.KeyMap
	quitting bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application.
func NewApp() *App {
	return &App{keys: keymap.DefaultKeyMap()}
}

// Init quits straight away; there is nothing to show yet.
func (a *App) Init() tea.Cmd {
	return tea.Quit
}

// Update handles the quit binding and ignores everything else.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.keys.Quit) {
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

// View renders nothing.
func (a *App) View() string {
	return ""
}

// Quitting reports whether the user asked to quit.
func (a *App) Quitting() bool {
	return a.quitting
}

// Run starts the program writing to out. Keyboard input is not attached,
// so the terminal is left untouched.
func Run(ctx context.Context, out io.Writer) error {
	p := tea.NewProgram(NewApp(),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
