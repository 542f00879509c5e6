package dialogs

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterCharLimit = 64

// FilterDialog edits the action filter. Enter, esc and ctrl+f are left to the
// owner; everything else edits the pattern.
type FilterDialog struct {
	input  textinput.Model
	strict bool
}

// NewFilterDialog returns a dialog in fuzzy mode
func NewFilterDialog() FilterDialog {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = filterCharLimit
	ti.PlaceholderStyle = lipgloss.NewStyle().Faint(true)

	d := FilterDialog{input: ti}
	d.SetStrictMode(false)
	return d
}

func (d *FilterDialog) Focus() tea.Cmd { return d.input.Focus() }

func (d *FilterDialog) Blur() { d.input.Blur() }

// Reset clears the pattern
func (d *FilterDialog) Reset() { d.input.Reset() }

func (d *FilterDialog) SetValue(value string) {
	d.input.SetValue(value)
	d.input.CursorEnd()
}

func (d FilterDialog) Value() string { return d.input.Value() }

// SetStrictMode switches between fuzzy and substring matching
func (d *FilterDialog) SetStrictMode(strict bool) {
	d.strict = strict
	if strict {
		d.input.Placeholder = "action contains..."
	} else {
		d.input.Placeholder = "fuzzy action name..."
	}
}

func (d FilterDialog) StrictMode() bool { return d.strict }

// Update forwards input to the text field
func (d FilterDialog) Update(msg tea.Msg) (FilterDialog, tea.Cmd) {
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d FilterDialog) View() string {
	return d.input.View()
}
