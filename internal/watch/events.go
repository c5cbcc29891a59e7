// Package watch renders a live terminal dashboard over a running build:
// one line per task, updated as tasks start, finish, or fail. It is a
// pure presentation layer wrapped around the strategy.Strategy seam — it
// never participates in scheduling, grounded on
// internal/tui/dashboard's model/update/view split and
// internal/tui/components' progress bar and step list, scaled down from
// pipeline-registry browsing to single-run task progress.
package watch

import "time"

// Status is a task's lifecycle state as observed by the dashboard.
type Status int

const (
	// Pending means the task has not yet started.
	Pending Status = iota
	// Running means the task's action is executing.
	Running
	// Done means the task finished without error.
	Done
	// Failed means the task's action (or an unrecovered handler) failed.
	Failed
	// Skipped means the task's criteria were not satisfied.
	Skipped
)

// Event reports a single task lifecycle transition to the dashboard.
type Event struct {
	Task      string
	Status    Status
	Timestamp time.Time
}
