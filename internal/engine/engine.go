// Package engine registers tasks and drives RunTarget: graph
// construction, build-level setup/teardown bracketing, and delegation to
// either the serial or the grouped-parallel traversal.
package engine

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/report"
	"github.com/alexisbeaulieu97/forge/internal/runner"
	"github.com/alexisbeaulieu97/forge/internal/strategy"
	"github.com/alexisbeaulieu97/forge/internal/task"
	"github.com/alexisbeaulieu97/forge/internal/taskgraph"
	"github.com/alexisbeaulieu97/forge/pkg/builderrors"
)

// Mode selects the executor a RunTarget call drives traversal with.
type Mode int

const (
	// Sequential runs the traversal order one task at a time.
	Sequential Mode = iota
	// GroupedParallel runs each TraverseAndGroup group concurrently,
	// waiting for the whole group before starting the next.
	GroupedParallel
)

// Engine registers tasks, owns the build- and task-scoped lifecycle
// hooks, and drives RunTarget. The zero value is not usable; construct
// with New.
type Engine struct {
	mode Mode

	mu    sync.Mutex
	tasks []*task.Task
	byKey map[string]*task.Task

	buildSetup    strategy.BuildHook
	buildTeardown strategy.BuildHook
	taskSetup     strategy.TaskSetupHook
	taskTeardown  strategy.TaskTeardownHook

	logger zerolog.Logger
}

// New returns an Engine driving traversal with the given mode.
func New(mode Mode, logger zerolog.Logger) *Engine {
	return &Engine{mode: mode, byKey: make(map[string]*task.Task), logger: logger}
}

// RegisterTask starts registering a task named name, returning a fluent
// builder. Nothing is registered until the builder is passed to AddTask,
// which is where a name already registered (compared case-insensitively)
// is rejected with DuplicateTask; RegisterTask itself never fails.
func (e *Engine) RegisterTask(name string) *task.Builder {
	return task.NewBuilder(name)
}

// AddTask finalizes and registers a task built from a Builder (or
// constructed directly). Fails with DuplicateTask if a task of this name
// is already registered.
func (e *Engine) AddTask(b *task.Builder) error {
	t := b.Build()
	e.mu.Lock()
	defer e.mu.Unlock()

	key := task.Canonical(t.Name())
	if _, exists := e.byKey[key]; exists {
		return builderrors.NewDuplicateTask(t.Name())
	}
	e.byKey[key] = t
	e.tasks = append(e.tasks, t)
	return nil
}

// RegisterSetupAction sets the build-level setup hook, replacing any
// previously registered one.
func (e *Engine) RegisterSetupAction(hook strategy.BuildHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buildSetup = hook
}

// RegisterTeardownAction sets the build-level teardown hook, replacing
// any previously registered one.
func (e *Engine) RegisterTeardownAction(hook strategy.BuildHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buildTeardown = hook
}

// RegisterTaskSetupAction sets the per-task setup hook applied to every
// task this engine runs, replacing any previously registered one.
func (e *Engine) RegisterTaskSetupAction(hook strategy.TaskSetupHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.taskSetup = hook
}

// RegisterTaskTeardownAction sets the per-task teardown hook applied to
// every task this engine runs, replacing any previously registered one.
func (e *Engine) RegisterTaskTeardownAction(hook strategy.TaskTeardownHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.taskTeardown = hook
}

// TaskNames returns the display names of every registered task, in
// registration order.
func (e *Engine) TaskNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, len(e.tasks))
	for i, t := range e.tasks {
		names[i] = t.Name()
	}
	return names
}

// Validate builds a graph from the currently registered tasks without
// running anything, surfacing any structural error (DuplicateTask is
// already caught at AddTask time; this catches UnknownDependency and,
// when target is non-empty, UnknownTarget and CyclicGraph).
func (e *Engine) Validate(target string) (*taskgraph.Graph, error) {
	e.mu.Lock()
	tasksSnapshot := make([]*task.Task, len(e.tasks))
	copy(tasksSnapshot, e.tasks)
	e.mu.Unlock()

	listers := make([]taskgraph.TaskLister, len(tasksSnapshot))
	for i, t := range tasksSnapshot {
		listers[i] = t
	}
	graph, err := taskgraph.Build(listers)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return graph, nil
	}
	if !graph.Exists(target) {
		return nil, builderrors.NewUnknownTarget(target)
	}
	if _, err := graph.Traverse(target); err != nil {
		return nil, err
	}
	return graph, nil
}

// RunTarget builds a fresh graph from the currently registered tasks,
// validates target exists, brackets the run with build setup/teardown,
// and drives traversal with this engine's Mode, returning the resulting
// Report.
func (e *Engine) RunTarget(ctx context.Context, strat strategy.Strategy, target string) (*report.Report, error) {
	if ctx == nil {
		return nil, builderrors.NewInvalidArgument("context")
	}
	if strat == nil {
		return nil, builderrors.NewInvalidArgument("strategy")
	}
	if target == "" {
		return nil, builderrors.NewInvalidArgument("target")
	}

	e.mu.Lock()
	tasksSnapshot := make([]*task.Task, len(e.tasks))
	copy(tasksSnapshot, e.tasks)
	byKeySnapshot := make(map[string]*task.Task, len(e.byKey))
	for k, v := range e.byKey {
		byKeySnapshot[k] = v
	}
	hooks := runner.Hooks{TaskSetup: e.taskSetup, TaskTeardown: e.taskTeardown}
	buildSetup, buildTeardown := e.buildSetup, e.buildTeardown
	e.mu.Unlock()

	listers := make([]taskgraph.TaskLister, len(tasksSnapshot))
	for i, t := range tasksSnapshot {
		listers[i] = t
	}
	graph, err := taskgraph.Build(listers)
	if err != nil {
		return nil, err
	}
	if !graph.Exists(target) {
		return nil, builderrors.NewUnknownTarget(target)
	}

	logger := e.logger
	bctx := buildctx.New(ctx, &logger)
	rpt := report.New()

	var setupErr error
	if buildSetup != nil {
		setupErr = strat.PerformSetup(bctx, buildSetup)
	}

	var runErr error
	if setupErr == nil {
		targetKey := task.Canonical(target)
		switch e.mode {
		case GroupedParallel:
			runErr = runParallel(bctx, strat, graph, byKeySnapshot, targetKey, hooks, rpt)
		default:
			runErr = runSerial(bctx, strat, graph, byKeySnapshot, targetKey, hooks, rpt)
		}
	}

	firstErr := setupErr
	if firstErr == nil {
		firstErr = runErr
	}

	if buildTeardown != nil {
		teardownErr := strat.PerformTeardown(bctx, buildTeardown)
		if teardownErr != nil {
			if firstErr == nil {
				firstErr = builderrors.NewUserActionFailure(target, "build teardown", teardownErr)
			} else {
				logger.Error().Err(teardownErr).Msg("build teardown failed; suppressed behind earlier failure")
			}
		}
	}

	return rpt, firstErr
}

func runSerial(ctx *buildctx.Context, strat strategy.Strategy, graph *taskgraph.Graph, byKey map[string]*task.Task, targetKey string, hooks runner.Hooks, rpt *report.Report) error {
	order, err := graph.Traverse(targetKey)
	if err != nil {
		return err
	}

	for _, name := range order {
		t, ok := byKey[task.Canonical(name)]
		if !ok {
			continue // grouping-only node with no registered task behind it
		}
		isTarget := task.Canonical(name) == targetKey
		if err := runner.Run(ctx, strat, t, isTarget, hooks, rpt); err != nil {
			return err
		}
	}
	return nil
}
