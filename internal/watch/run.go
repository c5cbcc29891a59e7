package watch

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks running a dashboard program over events until the channel
// closes or the user quits it. Callers typically run this in a goroutine
// alongside an Engine.RunTarget call wrapped in Watching.
func Run(events <-chan Event) error {
	_, err := tea.NewProgram(NewModel(events)).Run()
	return err
}
