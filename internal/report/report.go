// Package report records the ordered, per-task duration log a RunTarget
// call produces.
package report

import (
	"sync"
	"time"
)

// Entry is one task's contribution to the report: its name and how long
// it took. Skipped tasks contribute a zero duration.
type Entry struct {
	Name     string
	Duration time.Duration
}

// Report is an ordered, concurrency-safe sequence of Entries. The zero
// value is ready to use.
type Report struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Report.
func New() *Report {
	return &Report{}
}

// Append adds an entry in completion order. Safe to call from multiple
// goroutines, which the parallel engine does within a group.
func (r *Report) Append(name string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Name: name, Duration: duration})
}

// Entries returns a snapshot of the recorded entries in completion order.
func (r *Report) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded entries.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
