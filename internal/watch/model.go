package watch

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type taskRow struct {
	name      string
	status    Status
	startedAt time.Time
	elapsed   time.Duration
}

// Model is the Bubble Tea model driving the dashboard. Zero value is not
// usable; construct with NewModel.
type Model struct {
	events <-chan Event
	rows   map[string]*taskRow
	order  []string
	done   bool
}

// NewModel returns a Model that consumes events until the channel closes.
func NewModel(events <-chan Event) Model {
	return Model{events: events, rows: make(map[string]*taskRow)}
}

type tickMsg time.Time

type eventMsg struct {
	event Event
	ok    bool
}

func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		return eventMsg{event: e, ok: ok}
	}
}

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts listening for events and the elapsed-time ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick())
}

// Update applies an incoming message, per the Elm architecture.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if !msg.ok {
			m.done = true
			return m, tea.Quit
		}
		m.apply(msg.event)
		return m, waitForEvent(m.events)
	case tickMsg:
		now := time.Time(msg)
		for _, row := range m.rows {
			if row.status == Running {
				row.elapsed = now.Sub(row.startedAt)
			}
		}
		if m.done {
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) apply(e Event) {
	row, ok := m.rows[e.Task]
	if !ok {
		row = &taskRow{name: e.Task}
		m.rows[e.Task] = row
		m.order = append(m.order, e.Task)
	}
	row.status = e.Status
	if e.Status == Running {
		row.startedAt = e.Timestamp
	} else {
		row.elapsed = e.Timestamp.Sub(row.startedAt)
	}
}

func (m Model) sortedRows() []*taskRow {
	rows := make([]*taskRow, 0, len(m.order))
	for _, name := range m.order {
		rows = append(rows, m.rows[name])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].startedAt.Before(rows[j].startedAt) })
	return rows
}
