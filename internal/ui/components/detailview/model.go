package detailview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/styles"
	"github.com/hawkins/vecbind/internal/ui/components/bindinglist"
	"github.com/muesli/reflow/wordwrap"
)

// Model represents the binding detail component
type Model struct {
	viewport viewport.Model
	focused  bool
	wordWrap bool
	width    int
	height   int
}

// New creates a new detailview model
func New(width, height int) Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true

	return Model{
		viewport: vp,
		width:    width,
		height:   height,
		wordWrap: true,
	}
}

// Init initializes the component
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the component size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// SetFocus sets whether this component is focused
func (m *Model) SetFocus(focused bool) {
	m.focused = focused
}

// Focused returns whether this component is focused
func (m Model) Focused() bool {
	return m.focused
}

// ToggleWordWrap toggles word wrapping
func (m *Model) ToggleWordWrap() {
	m.wordWrap = !m.wordWrap
}

// WordWrap returns whether word wrap is enabled
func (m Model) WordWrap() bool {
	return m.wordWrap
}

// GotoTop scrolls to the top
func (m *Model) GotoTop() {
	m.viewport.GotoTop()
}

// SetContent sets the viewport content
func (m *Model) SetContent(content string) {
	m.viewport.SetContent(content)
}

// FormatContent renders a binding together with the layer it belongs to.
// A zero item renders an empty-layer hint.
func (m Model) FormatContent(item bindinglist.Item, layer *keymap.Layer) string {
	width := m.width
	if width <= 0 {
		width = 40
	}
	divider := styles.DividerStyle.Render(strings.Repeat("-", width))

	if item.Stroke.Key == "" {
		return styles.UnassignedStyle.Render("No bindings to show.")
	}

	action := styles.ActionStyle.Render(item.Action.String())
	if item.Action == keymap.NoAction {
		action = styles.UnassignedStyle.Render(item.Action.String())
	}
	description := keymap.Describe(item.Action)
	if !keymap.IsKnown(item.Action) && item.Action != keymap.NoAction {
		description = fmt.Sprintf("%q: %s", string(item.Action), description)
	}
	if m.wordWrap {
		description = wordwrap.String(description, width)
	}

	content := []string{
		styles.KeyCapStyle.Render(item.Stroke.String()) + " " + action,
		divider,
		styles.LabelStyle.Render("Layer") + item.Layer,
		styles.LabelStyle.Render("Modifier") + item.Stroke.Mod.String(),
		styles.LabelStyle.Render("Override") + item.Override(),
		divider,
		description,
	}

	if layer != nil {
		if reserved := layer.Unassigned(); len(reserved) > 0 {
			keys := make([]string, len(reserved))
			for i, k := range reserved {
				keys[i] = string(k)
			}
			content = append(content, divider,
				styles.LabelStyle.Render("Reserved")+strings.Join(keys, " "))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, content...)
}
