package strategy

import (
	"fmt"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// DryRun performs every setup/teardown/error hook for real but never
// invokes a task's Action — it announces what would have run instead.
// Build and task setup/teardown still execute because they are
// orchestration, not the side-effecting work the caller wants previewed.
type DryRun struct {
	Default
	Announce func(name string)
}

// NewDryRun returns a DryRun strategy. announce, if non-nil, is called
// with each task's name instead of invoking its action; with a nil
// announce, the task is logged at info level through the Context's Logger
// when one is set.
func NewDryRun(announce func(name string)) *DryRun {
	return &DryRun{Announce: announce}
}

func (d *DryRun) ExecuteAsync(ctx *buildctx.Context, t *task.Task) error {
	if d.Announce != nil {
		d.Announce(t.Name())
		return nil
	}
	if ctx != nil && ctx.Logger != nil {
		ctx.Logger.Info().Str("task", t.Name()).Msg(fmt.Sprintf("[dry-run] would run %s", t.Name()))
	}
	return nil
}

var _ Strategy = (*DryRun)(nil)
