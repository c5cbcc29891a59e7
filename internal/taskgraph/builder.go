package taskgraph

import "github.com/alexisbeaulieu97/forge/pkg/builderrors"

// TaskLister is the minimal view of a registered task the builder needs:
// its own name and the names of the tasks it depends on. internal/task.Task
// satisfies this.
type TaskLister interface {
	TaskName() string
	DependencyNames() []string
}

// Build translates a flat, already-registered task list into a Graph: each
// task becomes a node, and each dependency name d on a task becomes an
// edge d -> task. Fails with UnknownDependency if d does not name any
// task in tasks.
func Build(tasks []TaskLister) (*Graph, error) {
	g := New()

	names := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if err := g.Add(t.TaskName()); err != nil {
			return nil, err
		}
		names[canonical(t.TaskName())] = true
	}

	for _, t := range tasks {
		for _, dep := range t.DependencyNames() {
			if !names[canonical(dep)] {
				return nil, builderrors.NewUnknownDependency(dep)
			}
			if err := g.Connect(dep, t.TaskName()); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
