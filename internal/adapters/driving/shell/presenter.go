package shell

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/occu-cli/internal/adapters/driving/styles"
	"github.com/custodia-labs/occu-cli/internal/core/domain"
)

// entryIndent prefixes each line of a rendered event under its index line.
const entryIndent = "   "

// helpEntries documents the commands in display order.
var helpEntries = []struct {
	usage   string
	summary string
}{
	{"new <title> <description>", "create an event"},
	{"list | ls", "list events, oldest first"},
	{"remove | rm <index>", "remove an event (asks for confirmation)"},
	{"occur | oc <index> <title> <description> [key=value ...]", "record an occurance on an event"},
	{"help | h | ?", "show this help"},
	{"exit | quit", "leave the shell"},
}

// Presenter renders events and messages for the shell.
// Display settings are read on every call so config reloads apply to the
// next listing.
type Presenter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	display  func() domain.DisplaySettings
}

// NewPresenter creates a presenter writing to out.
// Colours are only emitted when out is a terminal that supports them.
func NewPresenter(out io.Writer, display func() domain.DisplaySettings) *Presenter {
	return &Presenter{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		display:  display,
	}
}

// List prints a header with the event count followed by each event in
// insertion order. It stops at the first event whose identifier carries no
// valid timestamp; entries already printed stay printed.
func (p *Presenter) List(count int, events iter.Seq2[domain.EventID, *domain.Event]) error {
	display := p.display()
	s := styles.New(p.renderer, nil, display.Color)

	fmt.Fprintln(p.out, s.Header.Render(fmt.Sprintf("====== Events (%d) ======", count)))
	if count == 0 {
		fmt.Fprintln(p.out, s.Notice.Render("No events."))
		return nil
	}

	i := 0
	for id, event := range events {
		created, err := id.Timestamp()
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		fmt.Fprintf(p.out, "%s %s\n",
			s.Index.Render(fmt.Sprintf("%d.", i)),
			s.Timestamp.Render(created.Format(display.TimestampFormat)),
		)
		fmt.Fprintln(p.out, indent(event.String()))
		i++
	}
	return nil
}

// Help prints the command summary.
func (p *Presenter) Help() {
	width := 0
	for _, e := range helpEntries {
		width = max(width, len(e.usage))
	}
	fmt.Fprintln(p.out, "Commands:")
	for _, e := range helpEntries {
		fmt.Fprintf(p.out, "  %-*s  %s\n", width, e.usage, e.summary)
	}
}

func indent(s string) string {
	return entryIndent + strings.ReplaceAll(s, "\n", "\n"+entryIndent)
}
