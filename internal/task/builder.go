package task

// Builder fluently configures a Task under construction. Obtain one from
// Engine.RegisterTask; call Build to finalize (the engine does this for
// you — see internal/engine).
type Builder struct {
	t *Task
}

// NewBuilder starts building a task with the given display name.
func NewBuilder(name string) *Builder {
	return &Builder{t: &Task{name: name, canonicalName: Canonical(name)}}
}

// DependsOn appends names this task requires. Names need not already be
// registered; they must exist by the time RunTarget is invoked.
func (b *Builder) DependsOn(names ...string) *Builder {
	b.t.dependsOn = append(b.t.dependsOn, names...)
	return b
}

// WithCriteria appends a predicate that must hold, alongside any already
// configured, for the task to execute.
func (b *Builder) WithCriteria(criterion Criterion) *Builder {
	b.t.criteria = append(b.t.criteria, criterion)
	return b
}

// Does sets the task's action.
func (b *Builder) Does(action Action) *Builder {
	b.t.action = action
	return b
}

// OnError sets the task's error handler, replacing any previous one.
func (b *Builder) OnError(handler ErrorHandler) *Builder {
	b.t.onError = handler
	return b
}

// ReportError sets the task's error reporter, replacing any previous one.
func (b *Builder) ReportError(reporter ErrorReporter) *Builder {
	b.t.reportError = reporter
	return b
}

// Finally sets the task's finally hook, replacing any previous one.
func (b *Builder) Finally(handler FinallyHandler) *Builder {
	b.t.finally = handler
	return b
}

// Build returns the finished Task.
func (b *Builder) Build() *Task {
	return b.t
}
