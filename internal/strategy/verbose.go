package strategy

import (
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// Verbose wraps Default, emitting a structured trace line for every seam
// crossing: each hook and action invocation, and each error-handling step.
// It changes nothing about control flow — only observability.
type Verbose struct {
	Default
	Logger zerolog.Logger
}

// NewVerbose returns a Verbose strategy logging through logger.
func NewVerbose(logger zerolog.Logger) *Verbose {
	return &Verbose{Logger: logger}
}

func (v *Verbose) PerformSetup(ctx *buildctx.Context, hook BuildHook) error {
	v.Logger.Debug().Msg("build setup: invoking")
	err := v.Default.PerformSetup(ctx, hook)
	v.Logger.Debug().Err(err).Msg("build setup: complete")
	return err
}

func (v *Verbose) PerformTeardown(ctx *buildctx.Context, hook BuildHook) error {
	v.Logger.Debug().Msg("build teardown: invoking")
	err := v.Default.PerformTeardown(ctx, hook)
	v.Logger.Debug().Err(err).Msg("build teardown: complete")
	return err
}

func (v *Verbose) PerformTaskSetup(ctx *buildctx.Context, hook TaskSetupHook, setupCtx TaskSetupContext) error {
	v.Logger.Debug().Str("task", setupCtx.TaskInfo.Name).Msg("task setup: invoking")
	err := v.Default.PerformTaskSetup(ctx, hook, setupCtx)
	v.Logger.Debug().Str("task", setupCtx.TaskInfo.Name).Err(err).Msg("task setup: complete")
	return err
}

func (v *Verbose) PerformTaskTeardown(ctx *buildctx.Context, hook TaskTeardownHook, teardownCtx TaskTeardownContext) error {
	v.Logger.Debug().Str("task", teardownCtx.TaskInfo.Name).Bool("skipped", teardownCtx.Skipped).Msg("task teardown: invoking")
	err := v.Default.PerformTaskTeardown(ctx, hook, teardownCtx)
	v.Logger.Debug().Str("task", teardownCtx.TaskInfo.Name).Err(err).Msg("task teardown: complete")
	return err
}

func (v *Verbose) ExecuteAsync(ctx *buildctx.Context, t *task.Task) error {
	v.Logger.Info().Str("task", t.Name()).Msg("executing")
	err := v.Default.ExecuteAsync(ctx, t)
	v.Logger.Info().Str("task", t.Name()).Err(err).Msg("executed")
	return err
}

func (v *Verbose) Skip(t *task.Task) {
	v.Logger.Info().Str("task", t.Name()).Msg("skipped")
}

func (v *Verbose) ReportErrors(reporter task.ErrorReporter, err error) {
	v.Logger.Warn().Err(err).Msg("reporting error")
	v.Default.ReportErrors(reporter, err)
}

func (v *Verbose) HandleErrors(handler task.ErrorHandler, err error) error {
	v.Logger.Warn().Err(err).Msg("handling error")
	recovered := v.Default.HandleErrors(handler, err)
	v.Logger.Warn().Err(recovered).Msg("error handler complete")
	return recovered
}

func (v *Verbose) InvokeFinally(handler task.FinallyHandler) error {
	v.Logger.Debug().Msg("invoking finally")
	return v.Default.InvokeFinally(handler)
}

var _ Strategy = (*Verbose)(nil)
