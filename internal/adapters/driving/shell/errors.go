package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex indicates a position argument is not a non-negative integer.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrUnterminatedQuote indicates a line ends inside a double-quoted field.
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrExit is returned by Dispatcher.Execute when the user asks to leave.
	// It is a control signal and is never reported.
	ErrExit = errors.New("exit requested")
)

// RequiresArgsError indicates a command was given fewer arguments than it needs.
type RequiresArgsError struct {
	Command string
	N       int
}

func (e *RequiresArgsError) Error() string {
	return fmt.Sprintf("command %q requires %d argument(s)", e.Command, e.N)
}
