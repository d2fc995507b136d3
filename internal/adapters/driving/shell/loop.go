package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/occu-cli/internal/adapters/driving/styles"
	"github.com/custodia-labs/occu-cli/internal/core/domain"
	"github.com/custodia-labs/occu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/occu-cli/internal/logger"
)

// Config configures a Loop.
type Config struct {
	// In is read one line at a time. Required.
	In io.Reader

	// Out receives normal output. Required.
	Out io.Writer

	// Err receives error reports. Required.
	Err io.Writer

	// Events is the service the commands operate on. Required.
	Events driving.EventService

	// Settings returns the current settings. Defaults are used when nil.
	Settings func() domain.AppSettings

	// ShowPrompt prints Settings().Shell.Prompt before each read.
	ShowPrompt bool
}

// Loop is the interactive read/dispatch cycle. It owns the input reader,
// which the removal confirmation shares.
type Loop struct {
	in         *bufio.Reader
	out        io.Writer
	errOut     io.Writer
	errRender  *lipgloss.Renderer
	settings   func() domain.AppSettings
	showPrompt bool
	dispatcher *Dispatcher
}

// Ensure Loop implements Confirmer.
var _ Confirmer = (*Loop)(nil)

// NewLoop creates a loop from cfg.
func NewLoop(cfg Config) (*Loop, error) {
	if cfg.In == nil || cfg.Out == nil || cfg.Err == nil {
		return nil, errors.New("shell: input, output and error streams are required")
	}
	if cfg.Events == nil {
		return nil, errors.New("shell: event service is required")
	}
	settings := cfg.Settings
	if settings == nil {
		settings = domain.DefaultAppSettings
	}

	l := &Loop{
		in:         bufio.NewReader(cfg.In),
		out:        cfg.Out,
		errOut:     cfg.Err,
		errRender:  lipgloss.NewRenderer(cfg.Err),
		settings:   settings,
		showPrompt: cfg.ShowPrompt,
	}
	presenter := NewPresenter(cfg.Out, func() domain.DisplaySettings { return l.settings().Display })
	l.dispatcher = NewDispatcher(cfg.Events, presenter, l)
	return l, nil
}

// Run reads and executes lines until an exit command or the end of input,
// both of which return nil. Command errors are reported and the loop
// continues. A failure to read input is returned.
func (l *Loop) Run(ctx context.Context) error {
	logger.Section("Shell")

	for {
		if ctx.Err() != nil {
			return nil
		}
		l.prompt(l.settings().Shell.Prompt)

		line, err := l.readLine()
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				logger.Debug("end of input")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		if l.handle(ctx, line) {
			return nil
		}
		if err != nil {
			// The final line had no trailing newline.
			return nil
		}
	}
}

// handle parses and executes one line. It reports whether to stop.
func (l *Loop) handle(ctx context.Context, line string) bool {
	cmd, err := Parse(line)
	if err == nil && cmd == nil {
		return false
	}
	if err == nil {
		err = l.dispatcher.Execute(ctx, cmd)
	}
	if errors.Is(err, ErrExit) {
		return true
	}
	if err != nil {
		l.reportError(err)
	}
	return false
}

// reportError prints err as "Error: <message>", styled when colour is on.
func (l *Loop) reportError(err error) {
	s := styles.New(l.errRender, nil, l.settings().Display.Color)
	fmt.Fprintln(l.errOut, s.Error.Render("Error: "+err.Error()))
}

// Confirm prints question and reads one answer line. Only an answer whose
// first character is y or Y counts as yes; empty input, read failures and
// anything else count as no.
func (l *Loop) Confirm(question string) bool {
	fmt.Fprint(l.out, question)
	answer, err := l.readLine()
	if err != nil && answer == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(answer)
	return strings.EqualFold(string(first), "y")
}

func (l *Loop) prompt(text string) {
	if l.showPrompt && text != "" {
		fmt.Fprint(l.out, text)
	}
}

// readLine returns the next line without its line terminator.
func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
