// Package buildctx provides the concrete Context collaborator that flows
// through every task action and lifecycle hook. The engine never
// interprets it; it exists purely for actions to read a working
// directory/environment and to log and cancel through.
package buildctx

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// Context is the opaque handle the engine passes to user callables.
type Context struct {
	context.Context

	// Dir is the working directory actions that touch the filesystem or
	// spawn subprocesses should operate relative to.
	Dir string

	// Env is the process environment handed to spawned subprocesses.
	// A nil Env means "inherit os.Environ()".
	Env []string

	// Logger is bound with per-task fields by the runner before a task's
	// action executes.
	Logger *zerolog.Logger
}

// New returns a Context rooted at the current working directory with the
// inherited process environment and the supplied base context and logger.
func New(parent context.Context, logger *zerolog.Logger) *Context {
	if parent == nil {
		parent = context.Background()
	}
	dir, _ := os.Getwd()
	return &Context{Context: parent, Dir: dir, Logger: logger}
}

// WithTask returns a shallow copy of c whose Logger carries the given task
// name, for per-task log correlation without mutating the shared Context.
func (c *Context) WithTask(name string) *Context {
	clone := *c
	if c.Logger != nil {
		l := c.Logger.With().Str("task", name).Logger()
		clone.Logger = &l
	}
	return &clone
}

// Environ returns Env if set, otherwise the inherited process environment.
func (c *Context) Environ() []string {
	if c.Env != nil {
		return c.Env
	}
	return os.Environ()
}
