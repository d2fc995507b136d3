package shell

import (
	"context"
	"fmt"

	"github.com/custodia-labs/occu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/occu-cli/internal/logger"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm shows question and reports whether the answer was affirmative.
	Confirm(question string) bool
}

// Dispatcher applies parsed commands to the event log.
type Dispatcher struct {
	events    driving.EventService
	presenter *Presenter
	confirmer Confirmer
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(events driving.EventService, presenter *Presenter, confirmer Confirmer) *Dispatcher {
	return &Dispatcher{
		events:    events,
		presenter: presenter,
		confirmer: confirmer,
	}
}

// Execute runs cmd. It returns ErrExit for ExitCmd and otherwise at most
// one error describing why the command failed.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) error {
	logger.Debug("dispatching %T %+v", cmd, cmd)

	switch c := cmd.(type) {
	case NewCmd:
		_, err := d.events.Create(ctx, c.Title, c.Description)
		return err
	case ListCmd:
		return d.presenter.List(d.events.Count(ctx), d.events.All(ctx))
	case RemoveCmd:
		return d.remove(ctx, c.Index)
	case OccurCmd:
		return d.events.Occur(ctx, c.Index, c.Title, c.Description, c.Metadata)
	case HelpCmd:
		d.presenter.Help()
		return nil
	case ExitCmd:
		return ErrExit
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

// remove looks the event up, asks for confirmation, and only then mutates
// the store. The removal targets the identifier read before the prompt, so
// positions shifting meanwhile cannot redirect it.
func (d *Dispatcher) remove(ctx context.Context, index int) error {
	id, event, ok := d.events.At(ctx, index)
	if !ok {
		logger.Debug("remove: nothing at index %d", index)
		return nil
	}
	if !d.confirmer.Confirm(fmt.Sprintf("Remove event %q? [y/N] ", event.Title())) {
		logger.Debug("remove: declined for index %d", index)
		return nil
	}
	d.events.Remove(ctx, id)
	return nil
}
