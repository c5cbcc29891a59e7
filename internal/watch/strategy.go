package watch

import (
	"time"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/strategy"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// Watching wraps another Strategy, emitting an Event on events for every
// ExecuteAsync start/finish and Skip, while delegating all actual
// invocation to the wrapped strategy. Sends never block: an event is
// dropped when events has no room for it. Closing belongs to the caller —
// Watching never closes events, since the engine may be driving more
// than one RunTarget over its lifetime.
type Watching struct {
	strategy.Strategy
	events chan<- Event
}

// Wrap returns a Watching strategy that forwards to inner and reports
// progress on events.
func Wrap(inner strategy.Strategy, events chan<- Event) *Watching {
	return &Watching{Strategy: inner, events: events}
}

func (w *Watching) emit(name string, status Status) {
	select {
	case w.events <- Event{Task: name, Status: status, Timestamp: time.Now()}:
	default:
	}
}

// ExecuteAsync reports Running before delegating, then Done or Failed
// based on the wrapped strategy's outcome.
func (w *Watching) ExecuteAsync(ctx *buildctx.Context, t *task.Task) error {
	w.emit(t.Name(), Running)
	err := w.Strategy.ExecuteAsync(ctx, t)
	if err != nil {
		w.emit(t.Name(), Failed)
	} else {
		w.emit(t.Name(), Done)
	}
	return err
}

// Skip reports Skipped before delegating.
func (w *Watching) Skip(t *task.Task) {
	w.emit(t.Name(), Skipped)
	w.Strategy.Skip(t)
}
