package ui

import "github.com/hawkins/vecbind/internal/keymap"

// Error message
type ErrMsg struct {
	Err error
}

// Clock tick message
type TickMsg struct {
	T string
}

// ProfileLoadedMsg carries the profile read back from the store
type ProfileLoadedMsg struct {
	Keymap *keymap.Keymap
	Err    error
}

// ProfileSavedMsg reports a change written to the store
type ProfileSavedMsg struct {
	Keymap  *keymap.Keymap
	Message string
	Err     error
}

// Edit profile messages
type EditProfileMsg struct {
	TmpFile string
	Err     error
}

type EditorFinishedMsg struct {
	TmpFile string
	Err     error
}

// CopiedMsg reports a clipboard write
type CopiedMsg struct {
	Text string
	Err  error
}
