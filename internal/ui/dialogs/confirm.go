package dialogs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmType represents different types of confirmation
type ConfirmType int

const (
	ConfirmUnbind ConfirmType = iota
	ConfirmReset
)

// Answer is the outcome of a key press on a confirm dialog
type Answer int

const (
	Pending Answer = iota
	Yes
	No
)

// ConfirmDialog handles yes/no confirmation
type ConfirmDialog struct {
	confirmType ConfirmType
	subject     string
}

// NewConfirmDialog creates a new confirmation dialog about subject
func NewConfirmDialog(confirmType ConfirmType, subject string) ConfirmDialog {
	return ConfirmDialog{
		confirmType: confirmType,
		subject:     subject,
	}
}

// Type returns the confirmation type
func (d ConfirmDialog) Type() ConfirmType {
	return d.confirmType
}

// Subject returns what is being confirmed
func (d ConfirmDialog) Subject() string {
	return d.subject
}

// Danger reports whether the action discards stored data
func (d ConfirmDialog) Danger() bool {
	return d.confirmType == ConfirmReset
}

// Answer reads a key press
func (d ConfirmDialog) Answer(msg tea.Msg) Answer {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return Pending
	}
	switch keyMsg.String() {
	case "y", "Y":
		return Yes
	case "n", "N", "esc":
		return No
	}
	return Pending
}

// Prompt is the question shown in the status bar
func (d ConfirmDialog) Prompt() string {
	switch d.confirmType {
	case ConfirmReset:
		return fmt.Sprintf("Reset profile %s to its built-in bindings? (y/n)", d.subject)
	default:
		return fmt.Sprintf("Unbind %s? (y/n)", d.subject)
	}
}
