package detailview

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the detailview component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	// mouse wheel scrolls even when unfocused
	switch msg.(type) {
	case tea.MouseMsg, tea.WindowSizeMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	default:
		if m.focused {
			m.viewport, cmd = m.viewport.Update(msg)
		}
	}

	return m, cmd
}
