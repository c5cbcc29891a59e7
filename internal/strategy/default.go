package strategy

import (
	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// Default invokes every callable directly, with no tracing or
// short-circuiting. It is the strategy a plain RunTarget call uses.
type Default struct{}

// NewDefault returns a Default strategy.
func NewDefault() *Default { return &Default{} }

func (Default) PerformSetup(ctx *buildctx.Context, hook BuildHook) error {
	if hook == nil {
		return nil
	}
	return hook(ctx)
}

func (Default) PerformTeardown(ctx *buildctx.Context, hook BuildHook) error {
	if hook == nil {
		return nil
	}
	return hook(ctx)
}

func (Default) PerformTaskSetup(ctx *buildctx.Context, hook TaskSetupHook, setupCtx TaskSetupContext) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, setupCtx)
}

func (Default) PerformTaskTeardown(ctx *buildctx.Context, hook TaskTeardownHook, teardownCtx TaskTeardownContext) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, teardownCtx)
}

func (Default) ExecuteAsync(ctx *buildctx.Context, t *task.Task) error {
	action := t.Action()
	if action == nil {
		return nil
	}
	return action(ctx)
}

func (Default) Skip(t *task.Task) {}

func (Default) ReportErrors(reporter task.ErrorReporter, err error) {
	if reporter == nil {
		return
	}
	_ = reporter(err) // swallowed: a reporter is observational only
}

func (Default) HandleErrors(handler task.ErrorHandler, err error) error {
	if handler == nil {
		return err
	}
	return handler(err)
}

func (Default) InvokeFinally(handler task.FinallyHandler) error {
	if handler == nil {
		return nil
	}
	return handler()
}

var _ Strategy = Default{}
