package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	headerStyle  = lipgloss.NewStyle().Bold(true).PaddingBottom(1)
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "pending"
	}
}

func styleFor(s Status) lipgloss.Style {
	switch s {
	case Running:
		return runningStyle
	case Done:
		return doneStyle
	case Failed:
		return failedStyle
	case Skipped:
		return skippedStyle
	default:
		return pendingStyle
	}
}

// View renders the current task table.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("forge build"))
	b.WriteString("\n")

	for _, row := range m.sortedRows() {
		style := styleFor(row.status)
		b.WriteString(fmt.Sprintf("  %-24s %-10s %s\n", row.name, style.Render(row.status.String()), row.elapsed.Round(10_000_000)))
	}

	if m.done {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("build finished"))
		b.WriteString("\n")
	}

	return b.String()
}
