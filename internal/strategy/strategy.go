// Package strategy defines the ExecutionStrategy seam: the one place the
// engine and task runner invoke user-supplied callables through, so that
// logging, dry-run, and tracing behavior compose without the engine ever
// calling user code directly.
package strategy

import (
	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// TaskInfo identifies the task a lifecycle hook is firing for.
type TaskInfo struct {
	Name string
}

// BuildHook is a build-scoped setup or teardown action.
type BuildHook func(ctx *buildctx.Context) error

// TaskSetupHook runs before a task's action.
type TaskSetupHook func(ctx *buildctx.Context, setupCtx TaskSetupContext) error

// TaskTeardownHook runs after a task's action, handler, and finally hook.
type TaskTeardownHook func(ctx *buildctx.Context, teardownCtx TaskTeardownContext) error

// TaskSetupContext is passed to a TaskSetupHook.
type TaskSetupContext struct {
	TaskInfo TaskInfo
}

// TaskTeardownContext is passed to a TaskTeardownHook.
type TaskTeardownContext struct {
	TaskInfo TaskInfo
	Duration int64 // nanoseconds elapsed running the task
	Skipped  bool
}

// Strategy is the capability set the host supplies to actually invoke user
// callbacks. The engine and runner never call a Task's Action, hooks, or
// error handlers directly — every invocation goes through a Strategy, so
// cross-cutting behavior (logging, metrics, dry-run no-ops) is pluggable
// without touching the engine.
type Strategy interface {
	PerformSetup(ctx *buildctx.Context, hook BuildHook) error
	PerformTeardown(ctx *buildctx.Context, hook BuildHook) error
	PerformTaskSetup(ctx *buildctx.Context, hook TaskSetupHook, setupCtx TaskSetupContext) error
	PerformTaskTeardown(ctx *buildctx.Context, hook TaskTeardownHook, teardownCtx TaskTeardownContext) error
	ExecuteAsync(ctx *buildctx.Context, t *task.Task) error
	Skip(t *task.Task)
	ReportErrors(reporter task.ErrorReporter, err error)
	HandleErrors(handler task.ErrorHandler, err error) error
	InvokeFinally(handler task.FinallyHandler) error
}
