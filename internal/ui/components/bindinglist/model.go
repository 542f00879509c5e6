package bindinglist

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the binding list component
type Model struct {
	list    list.Model
	focused bool
	width   int
	height  int
}

// New creates a new bindinglist model
func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "vecbind"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)

	return Model{
		list:   l,
		width:  width,
		height: height,
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
	m.list.SetSize(width, height)
}

// SetTitle sets the list heading
func (m *Model) SetTitle(title string) {
	m.list.Title = title
}

// Title returns the list heading
func (m Model) Title() string {
	return m.list.Title
}

// SetFocus sets whether this component is focused
func (m *Model) SetFocus(focused bool) {
	m.focused = focused
}

// Focused returns whether this component is focused
func (m Model) Focused() bool {
	return m.focused
}

// SetItems replaces the list items and moves the cursor to the top
func (m *Model) SetItems(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
	m.list.ResetSelected()
}

// Items returns the current list items
func (m Model) Items() []Item {
	items := m.list.Items()
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if i, ok := it.(Item); ok {
			out = append(out, i)
		}
	}
	return out
}

// SelectedItem returns the currently selected item
func (m Model) SelectedItem() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

// Index returns the currently selected index
func (m Model) Index() int {
	return m.list.Index()
}

// Select moves the cursor to the first item accepted by match
func (m *Model) Select(match func(Item) bool) bool {
	for i, it := range m.list.Items() {
		if item, ok := it.(Item); ok && match(item) {
			m.list.Select(i)
			return true
		}
	}
	return false
}
