package bindinglist

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the bindinglist component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.(type) {
	case tea.WindowSizeMsg:
		m.list, cmd = m.list.Update(msg)
	default:
		if m.focused {
			m.list, cmd = m.list.Update(msg)
		}
	}

	return m, cmd
}
