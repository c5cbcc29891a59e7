// Package runner executes a single task through the full
// criteria/setup/action/error/finally/teardown lifecycle, appending its
// outcome to the shared Report.
package runner

import (
	"time"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/report"
	"github.com/alexisbeaulieu97/forge/internal/strategy"
	"github.com/alexisbeaulieu97/forge/internal/task"
	"github.com/alexisbeaulieu97/forge/pkg/builderrors"
)

// Hooks are the engine-level task-scoped lifecycle hooks, set once per
// engine and applied to every task it runs.
type Hooks struct {
	TaskSetup    strategy.TaskSetupHook
	TaskTeardown strategy.TaskTeardownHook
}

// Run executes t to completion: criteria gate, task setup, action (via
// strat), error reporter/handler, finally, task teardown, and report
// append, in that order. isTarget controls whether a failing criterion
// is a TargetSkipped failure or a benign skip.
func Run(ctx *buildctx.Context, strat strategy.Strategy, t *task.Task, isTarget bool, hooks Hooks, rpt *report.Report) error {
	taskCtx := ctx.WithTask(t.Name())
	info := strategy.TaskInfo{Name: t.Name()}

	for _, criterion := range t.Criteria() {
		if criterion() {
			continue
		}
		if isTarget {
			return builderrors.NewTargetSkipped(t.Name())
		}
		return runSkipped(taskCtx, strat, t, info, hooks, rpt)
	}

	start := time.Now()

	if hooks.TaskSetup != nil {
		if err := strat.PerformTaskSetup(taskCtx, hooks.TaskSetup, strategy.TaskSetupContext{TaskInfo: info}); err != nil {
			teardownAfterSetupFailure(taskCtx, strat, hooks, info, time.Since(start))
			return builderrors.NewUserActionFailure(t.Name(), "task setup", err)
		}
	}

	actionErr := strat.ExecuteAsync(taskCtx, t)
	finalErr := actionErr

	if actionErr != nil {
		if taskCtx.Logger != nil {
			taskCtx.Logger.Error().Err(actionErr).Str("task", t.Name()).Msg("task action failed")
		}

		if reporter := t.ErrorReporter(); reporter != nil {
			strat.ReportErrors(reporter, actionErr)
		}

		if handler := t.ErrorHandler(); handler != nil {
			handlerErr := strat.HandleErrors(handler, actionErr)
			if handlerErr == nil {
				finalErr = nil // recovered
			} else {
				if handlerErr != actionErr && taskCtx.Logger != nil {
					taskCtx.Logger.Error().Err(actionErr).Str("task", t.Name()).Msg("original failure before handler's own error")
				}
				finalErr = handlerErr
			}
		}
	}

	if finallyHandler := t.FinallyHandler(); finallyHandler != nil {
		if ferr := strat.InvokeFinally(finallyHandler); ferr != nil {
			finalErr = ferr
		}
	}

	duration := time.Since(start)

	if hooks.TaskTeardown != nil {
		teardownErr := strat.PerformTaskTeardown(taskCtx, hooks.TaskTeardown, strategy.TaskTeardownContext{
			TaskInfo: info,
			Duration: duration.Nanoseconds(),
			Skipped:  false,
		})
		if teardownErr != nil {
			if finalErr == nil {
				finalErr = builderrors.NewUserActionFailure(t.Name(), "task teardown", teardownErr)
			} else if taskCtx.Logger != nil {
				taskCtx.Logger.Error().Err(teardownErr).Str("task", t.Name()).Msg("task teardown failed; suppressed behind earlier failure")
			}
		}
	}

	if finalErr != nil {
		return wrapIfPlain(t.Name(), finalErr)
	}

	rpt.Append(t.Name(), duration)
	return nil
}

func runSkipped(ctx *buildctx.Context, strat strategy.Strategy, t *task.Task, info strategy.TaskInfo, hooks Hooks, rpt *report.Report) error {
	if hooks.TaskSetup != nil {
		_ = strat.PerformTaskSetup(ctx, hooks.TaskSetup, strategy.TaskSetupContext{TaskInfo: info})
	}

	strat.Skip(t)

	if hooks.TaskTeardown != nil {
		_ = strat.PerformTaskTeardown(ctx, hooks.TaskTeardown, strategy.TaskTeardownContext{
			TaskInfo: info,
			Duration: 0,
			Skipped:  true,
		})
	}

	rpt.Append(t.Name(), 0)
	return nil
}

func teardownAfterSetupFailure(ctx *buildctx.Context, strat strategy.Strategy, hooks Hooks, info strategy.TaskInfo, duration time.Duration) {
	if hooks.TaskTeardown == nil {
		return
	}
	_ = strat.PerformTaskTeardown(ctx, hooks.TaskTeardown, strategy.TaskTeardownContext{
		TaskInfo: info,
		Duration: duration.Nanoseconds(),
		Skipped:  false,
	})
}

// wrapIfPlain tags an error with the failing task and an "action" phase
// unless it has already been classified by an earlier step in Run.
func wrapIfPlain(taskName string, err error) error {
	switch err.(type) {
	case *builderrors.UserActionFailure, *builderrors.TargetSkippedError, *builderrors.StructuralError, *builderrors.InvalidArgumentError:
		return err
	default:
		return builderrors.NewUserActionFailure(taskName, "action", err)
	}
}
