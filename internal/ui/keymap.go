package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the controls of the browser. Try mode bypasses it: every key
// except esc and ctrl+c is resolved through the profile being browsed.
type KeyMap struct {
	NextLayer   key.Binding
	PrevLayer   key.Binding
	FuzzySearch key.Binding
	ToggleMode  key.Binding
	Try         key.Binding
	Copy        key.Binding
	Unbind      key.Binding
	Edit        key.Binding
	Reload      key.Binding
	Reset       key.Binding
	ToggleWrap  key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns a set of default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextLayer: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next layer"),
		),
		PrevLayer: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous layer"),
		),
		FuzzySearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter actions"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "toggle fuzzy/strict filter"),
		),
		Try: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "try keys"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy binding as override"),
		),
		Unbind: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "unbind selected key"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit profile in $EDITOR"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload profile"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset to built-in"),
		),
		ToggleWrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle word wrap"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpBindings lists the controls in the order the help page shows them
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.NextLayer, k.PrevLayer, k.FuzzySearch, k.ToggleMode, k.Try, k.Copy,
		k.Unbind, k.Edit, k.Reload, k.Reset, k.ToggleWrap, k.Help, k.Back, k.Quit,
	}
}
