// Package builderrors defines the BuildError taxonomy surfaced by the
// graph, engine, and runner packages. The structural categories share one
// type, StructuralError, told apart by its Kind field; InvalidArgument,
// TargetSkipped and UserActionFailure each have their own type. Callers
// can errors.As to the type they care about, but all of them are reported
// to the user as a single semantic kind: a build failed and here is why.
package builderrors

import "fmt"

// StructuralError covers DuplicateTask, DuplicateNode, ReflexiveEdge,
// InverseEdge, CyclicGraph, UnknownDependency and UnknownTarget. All but
// CyclicGraph are raised from registration or graph construction, before
// any hook fires; CyclicGraph is raised during traversal, after build
// setup has run.
type StructuralError struct {
	Kind    string
	Subject string
	Message string
}

func newStructural(kind, subject, message string) error {
	return &StructuralError{Kind: kind, Subject: subject, Message: message}
}

func (e *StructuralError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s: %q: %s", e.Kind, e.Subject, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewDuplicateTask reports a task name already registered on the engine.
func NewDuplicateTask(name string) error {
	return newStructural("DuplicateTask", name, "a task with this name is already registered")
}

// NewDuplicateNode reports a graph node added twice.
func NewDuplicateNode(name string) error {
	return newStructural("DuplicateNode", name, "node already present in graph")
}

// NewReflexiveEdge reports an attempt to connect a node to itself.
func NewReflexiveEdge(name string) error {
	return newStructural("ReflexiveEdge", name, "a task cannot depend on itself")
}

// NewInverseEdge reports an attempt to add the opposite of an existing edge.
func NewInverseEdge(start, end string) error {
	return newStructural("InverseEdge", fmt.Sprintf("%s<->%s", start, end), "inverse edge already exists")
}

// NewCyclicGraph reports a cycle discovered during traversal.
func NewCyclicGraph(name string) error {
	return newStructural("CyclicGraph", name, "cycle detected while traversing dependencies")
}

// NewUnknownDependency reports a dependency name with no matching task.
func NewUnknownDependency(name string) error {
	return newStructural("UnknownDependency", name, "no task is registered under this name")
}

// NewUnknownTarget reports a RunTarget call naming an unregistered task.
func NewUnknownTarget(name string) error {
	return newStructural("UnknownTarget", name, "no task is registered under this name")
}

// InvalidArgumentError reports a nil context, strategy, or target passed to
// RunTarget.
type InvalidArgumentError struct {
	Argument string
}

// NewInvalidArgument constructs an InvalidArgumentError.
func NewInvalidArgument(argument string) error {
	return &InvalidArgumentError{Argument: argument}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("InvalidArgument: %s must not be nil", e.Argument)
}

// TargetSkippedError reports that the target task's own criteria denied
// execution.
type TargetSkippedError struct {
	Target string
}

// NewTargetSkipped constructs a TargetSkippedError naming the target.
func NewTargetSkipped(target string) error {
	return &TargetSkippedError{Target: target}
}

func (e *TargetSkippedError) Error() string {
	return fmt.Sprintf("TargetSkipped: target %q was skipped by its own criteria", e.Target)
}

// UserActionFailure wraps a failure raised by a user-supplied action, hook,
// or handler, tagging it with the task it occurred in and the phase of
// TaskRunner that observed it.
type UserActionFailure struct {
	Task  string
	Phase string
	Err   error
}

// NewUserActionFailure constructs a UserActionFailure.
func NewUserActionFailure(task, phase string, err error) error {
	return &UserActionFailure{Task: task, Phase: phase, Err: err}
}

func (e *UserActionFailure) Error() string {
	return fmt.Sprintf("task %q failed in %s: %v", e.Task, e.Phase, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *UserActionFailure) Unwrap() error {
	return e.Err
}
