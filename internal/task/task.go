// Package task defines a single unit of work: its action, dependency
// names, criteria, and error-handling hooks, plus the fluent builder used
// to register one on an engine.
package task

import (
	"strings"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
)

// Action is the callable a task performs. It receives the ambient build
// context and may block.
type Action func(ctx *buildctx.Context) error

// Criterion is a no-argument predicate gating whether a task runs.
type Criterion func() bool

// ErrorReporter observes a failure without being able to recover it. Any
// error it returns is swallowed by the strategy that invokes it.
type ErrorReporter func(err error) error

// ErrorHandler is given the chance to recover a failed action. Returning
// nil recovers the task; returning a non-nil error (the same or a
// different one) re-surfaces as the propagating failure.
type ErrorHandler func(err error) error

// FinallyHandler always runs after the action/handler, before teardown.
type FinallyHandler func() error

// Task is a named unit of work with optional dependencies, criteria, and
// error hooks. Construct one with NewBuilder; Task itself is immutable
// once Build is called.
type Task struct {
	name          string
	canonicalName string
	action        Action
	dependsOn     []string
	criteria      []Criterion
	reportError   ErrorReporter
	onError       ErrorHandler
	finally       FinallyHandler
}

// Name returns the task's display name.
func (t *Task) Name() string { return t.name }

// TaskName satisfies taskgraph.TaskLister.
func (t *Task) TaskName() string { return t.name }

// CanonicalName is the lower-cased name used for case-insensitive identity.
func (t *Task) CanonicalName() string { return t.canonicalName }

// DependencyNames satisfies taskgraph.TaskLister.
func (t *Task) DependencyNames() []string { return t.dependsOn }

// Action returns the task's action, or nil if none was set (a pure
// grouping task with only dependencies).
func (t *Task) Action() Action { return t.action }

// Criteria returns the ordered criteria that gate execution.
func (t *Task) Criteria() []Criterion { return t.criteria }

// ErrorReporter returns the configured reporter, or nil.
func (t *Task) ErrorReporter() ErrorReporter { return t.reportError }

// ErrorHandler returns the configured handler, or nil.
func (t *Task) ErrorHandler() ErrorHandler { return t.onError }

// FinallyHandler returns the configured finally hook, or nil.
func (t *Task) FinallyHandler() FinallyHandler { return t.finally }

// Canonical lower-cases a task name for case-insensitive comparison,
// shared by the engine's registry and the graph.
func Canonical(name string) string {
	return strings.ToLower(name)
}
