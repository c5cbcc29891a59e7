package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/report"
	"github.com/alexisbeaulieu97/forge/internal/runner"
	"github.com/alexisbeaulieu97/forge/internal/strategy"
	"github.com/alexisbeaulieu97/forge/internal/task"
	"github.com/alexisbeaulieu97/forge/internal/taskgraph"
)

// runParallel drives TraverseAndGroup: every task in a group starts
// concurrently and the group barrier waits for all of them before the
// next group begins. A failure inside a group does not cancel its
// siblings already running; failures are collected and the first one (in
// group order) is returned. Groups after a failing one are not started.
func runParallel(ctx *buildctx.Context, strat strategy.Strategy, graph *taskgraph.Graph, byKey map[string]*task.Task, targetKey string, hooks runner.Hooks, rpt *report.Report) error {
	groups, err := graph.TraverseAndGroup(targetKey)
	if err != nil {
		return err
	}

	for _, group := range groups {
		if err := runGroup(ctx, strat, byKey, targetKey, group, hooks, rpt); err != nil {
			return err
		}
	}
	return nil
}

func runGroup(ctx *buildctx.Context, strat strategy.Strategy, byKey map[string]*task.Task, targetKey string, group taskgraph.Group, hooks runner.Hooks, rpt *report.Report) error {
	eg, egCtx := errgroup.WithContext(ctx.Context)
	_ = egCtx // group members are not cancelled on a sibling's failure
	eg.SetLimit(runtime.NumCPU())

	// One slot per group member, so the first failure is picked in group
	// order rather than by which goroutine finished first.
	errs := make([]error, len(group))

	for i, name := range group {
		name := name
		t, ok := byKey[task.Canonical(name)]
		if !ok {
			continue
		}
		isTarget := task.Canonical(name) == targetKey

		eg.Go(func() error {
			errs[i] = runner.Run(ctx, strat, t, isTarget, hooks, rpt)
			return nil // errgroup.Wait itself never short-circuits the group
		})
	}

	_ = eg.Wait()

	var firstErr error
	for i, err := range errs {
		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = err
		} else if ctx.Logger != nil {
			ctx.Logger.Error().Err(err).Str("task", group[i]).Msg("additional task failure in group, discarded behind first")
		}
	}
	return firstErr
}
