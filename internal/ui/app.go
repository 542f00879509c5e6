// Package ui is the interactive keymap browser. Browse mode lists the
// bindings of one layer at a time; try mode resolves every key pressed
// through the profile, the way the editor would.
package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/hawkins/vecbind/internal/ui/components/bindinglist"
	"github.com/hawkins/vecbind/internal/ui/components/detailview"
	"github.com/hawkins/vecbind/internal/ui/dialogs"
	"github.com/muesli/termenv"
)

// AppState represents the current state of the application
type AppState int

const (
	StateBrowse AppState = iota
	StateTry
	StateFuzzySearch
	StateConfirm
	StateEditing
	StateHelp
)

// FocusedPane represents which pane has focus
type FocusedPane int

const (
	PaneList FocusedPane = iota
	PaneDetail
)

// Options configures an App
type Options struct {
	Profile string
	// Store receives edits. Without one the browser is read-only.
	Store     store.Store
	Overrides []keymap.Override
}

// App is the main application model
type App struct {
	width, height int

	// Components
	bindingList bindinglist.Model
	detailView  detailview.Model
	spinner     spinner.Model

	// Dialogs
	filterDialog  dialogs.FilterDialog
	confirmDialog dialogs.ConfirmDialog

	// Profile
	km        *keymap.Keymap
	profile   string
	store     store.Store
	overrides []keymap.Override
	layer     int

	// Application state
	state          AppState
	focused        FocusedPane
	fuzzyFilter    string
	fuzzyStrict    bool
	statusMessage  string
	busy           bool
	now            string
	pendingUnbind  bindinglist.Item
	editingTmpFile string

	writeClipboard func(string) error

	// Keybindings
	keyMap KeyMap
}

// New creates a new App browsing km
func New(km *keymap.Keymap, opts Options) (*App, error) {
	if km == nil {
		return nil, errors.New("keymap is required")
	}
	lipgloss.SetColorProfile(termenv.TrueColor)

	s := spinner.New()
	s.Spinner = spinner.Dot

	app := &App{
		bindingList:    bindinglist.New(0, 0),
		detailView:     detailview.New(0, 0),
		spinner:        s,
		filterDialog:   dialogs.NewFilterDialog(),
		km:             km,
		profile:        opts.Profile,
		store:          opts.Store,
		overrides:      opts.Overrides,
		keyMap:         DefaultKeyMap(),
		state:          StateBrowse,
		focused:        PaneList,
		writeClipboard: copyToClipboard,
	}

	app.bindingList.SetFocus(true)
	app.refreshItems()

	return app, nil
}

// Init initializes the Bubble Tea program
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.tickCmd(),
		a.spinner.Tick,
	)
}

// Keymap returns the profile currently shown
func (a App) Keymap() *keymap.Keymap {
	return a.km
}
