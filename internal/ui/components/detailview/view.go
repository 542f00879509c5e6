package detailview

import (
	"github.com/hawkins/vecbind/internal/styles"
)

// View renders the detailview component
func (m Model) View() string {
	content := m.viewport.View()

	if m.focused {
		indicator := styles.FocusIndicator.Render("▸ ")
		content = indicator + content
	}

	return content
}
