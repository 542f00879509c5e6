package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hawkins/vecbind/internal/constant"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/logging"
	"github.com/hawkins/vecbind/internal/styles"
	"github.com/hawkins/vecbind/internal/ui/components/bindinglist"
	"github.com/hawkins/vecbind/internal/ui/dialogs"
	"github.com/spf13/cast"
)

// Update handles all messages and updates the model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, a.keyMap.Quit) {
		return a, tea.Quit
	}

	// Global message handling
	switch msg := msg.(type) {
	case ErrMsg:
		a.statusMessage = msg.Err.Error()
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		statusBarHeight := lipgloss.Height(a.statusView())
		height := a.height - statusBarHeight

		listViewWidth := cast.ToInt(constant.ListProportion * float64(a.width))
		listWidth := listViewWidth - styles.ListViewStyle.GetHorizontalFrameSize()
		a.bindingList.SetSize(listWidth, height)

		detailViewWidth := a.width - listViewWidth
		a.detailView.SetSize(detailViewWidth, height)
		a.refreshDetail()
	case TickMsg:
		a.now = msg.T
		cmds = append(cmds, a.tickCmd())
	case CopiedMsg:
		if msg.Err != nil {
			a.statusMessage = fmt.Sprintf("Failed to copy: %v", msg.Err)
		} else {
			a.statusMessage = fmt.Sprintf("Copied %s", msg.Text)
		}
	case ProfileLoadedMsg:
		a.busy = false
		if msg.Err != nil {
			a.statusMessage = fmt.Sprintf("Failed to reload profile: %v", msg.Err)
		} else {
			a.setKeymap(msg.Keymap)
			a.statusMessage = fmt.Sprintf("Profile %s reloaded", a.profile)
		}
	case ProfileSavedMsg:
		a.busy = false
		if a.state == StateEditing {
			a.state = StateBrowse
		}
		if msg.Err != nil {
			a.statusMessage = fmt.Sprintf("Failed to save profile: %v", msg.Err)
		} else {
			a.setKeymap(msg.Keymap)
			a.statusMessage = msg.Message
		}
	case EditProfileMsg:
		if msg.Err != nil {
			a.state = StateBrowse
			a.statusMessage = fmt.Sprintf("Failed to prepare edit: %v", msg.Err)
		} else {
			a.editingTmpFile = msg.TmpFile
			cmds = append(cmds, a.openEditorCmd(msg.TmpFile))
		}
	case EditorFinishedMsg:
		a.editingTmpFile = ""
		if msg.Err != nil {
			a.state = StateBrowse
			a.statusMessage = fmt.Sprintf("Editor failed: %v", msg.Err)
			_ = os.Remove(msg.TmpFile)
		} else {
			a.busy = true
			cmds = append(cmds, a.processEditedProfileCmd(msg.TmpFile))
		}
	}

	// State-specific handling
	switch a.state {
	case StateBrowse:
		cmd = a.handleBrowseState(msg)
		cmds = append(cmds, cmd)
	case StateTry:
		cmd = a.handleTryState(msg)
		cmds = append(cmds, cmd)
	case StateFuzzySearch:
		cmd = a.handleFuzzySearchState(msg)
		cmds = append(cmds, cmd)
	case StateConfirm:
		cmd = a.handleConfirmState(msg)
		cmds = append(cmds, cmd)
	case StateEditing:
		// Non-interactive state
	case StateHelp:
		cmd = a.handleHelpState(msg)
		cmds = append(cmds, cmd)
	}

	a.spinner, cmd = a.spinner.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a *App) handleBrowseState(msg tea.Msg) tea.Cmd {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		a.detailView, cmd = a.detailView.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keyMap.NextLayer):
			a.cycleLayer(1)
		case key.Matches(msg, a.keyMap.PrevLayer):
			a.cycleLayer(-1)
		case key.Matches(msg, a.keyMap.FuzzySearch):
			a.state = StateFuzzySearch
			a.filterDialog.SetStrictMode(a.fuzzyStrict)
			a.filterDialog.SetValue(a.fuzzyFilter)
			return a.filterDialog.Focus()
		case key.Matches(msg, a.keyMap.ToggleMode):
			a.toggleStrict()
		case key.Matches(msg, a.keyMap.Try):
			a.enterTry()
		case key.Matches(msg, a.keyMap.Copy):
			item, ok := a.bindingList.SelectedItem()
			if !ok {
				break
			}
			// "layer:key=" reads back as an unbind, not a reservation
			if item.Action == keymap.NoAction {
				a.statusMessage = fmt.Sprintf("%s is unassigned, nothing to copy", item.Stroke)
				break
			}
			return a.copyCmd(item.Override())
		case key.Matches(msg, a.keyMap.Unbind):
			item, ok := a.bindingList.SelectedItem()
			if !ok {
				break
			}
			if item.Action == keymap.NoAction {
				a.statusMessage = fmt.Sprintf("%s is already unassigned", item.Stroke)
				break
			}
			a.pendingUnbind = item
			a.confirmDialog = dialogs.NewConfirmDialog(dialogs.ConfirmUnbind,
				fmt.Sprintf("%s (%s)", item.Stroke, item.Action))
			a.state = StateConfirm
		case key.Matches(msg, a.keyMap.Edit):
			if a.store == nil {
				a.statusMessage = errReadOnly.Error()
				break
			}
			a.state = StateEditing
			a.statusMessage = fmt.Sprintf("Opening editor for profile %s...", a.profile)
			return a.editProfileCmd()
		case key.Matches(msg, a.keyMap.Reload):
			if a.store == nil {
				a.statusMessage = errReadOnly.Error()
				break
			}
			a.busy = true
			return a.reloadCmd()
		case key.Matches(msg, a.keyMap.Reset):
			if !keymap.IsBuiltin(a.profile) {
				a.statusMessage = fmt.Sprintf("Profile %s has no built-in bindings", a.profile)
				break
			}
			a.confirmDialog = dialogs.NewConfirmDialog(dialogs.ConfirmReset, a.profile)
			a.state = StateConfirm
		case key.Matches(msg, a.keyMap.ToggleWrap):
			a.detailView.ToggleWordWrap()
			if a.detailView.WordWrap() {
				a.statusMessage = "Word wrap enabled"
			} else {
				a.statusMessage = "Word wrap disabled"
			}
			a.refreshDetail()
		case key.Matches(msg, a.keyMap.Help):
			a.state = StateHelp
		case key.Matches(msg, a.keyMap.Back):
			if a.fuzzyFilter != "" {
				a.fuzzyFilter = ""
				a.refreshItems()
				a.statusMessage = "Filter cleared"
			}
		case msg.Type == tea.KeyLeft:
			a.focused = PaneList
			a.bindingList.SetFocus(true)
			a.detailView.SetFocus(false)
		case msg.Type == tea.KeyRight:
			a.focused = PaneDetail
			a.bindingList.SetFocus(false)
			a.detailView.SetFocus(true)
		case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
			if a.focused == PaneList {
				a.bindingList, cmd = a.bindingList.Update(msg)
				cmds = append(cmds, cmd)
				a.refreshDetail()
			} else {
				a.detailView, cmd = a.detailView.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	default:
		a.bindingList, cmd = a.bindingList.Update(msg)
		cmds = append(cmds, cmd)

		a.detailView, cmd = a.detailView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// handleTryState resolves every key through the profile. Keys the profile
// does not bind are reported and otherwise ignored.
func (a *App) handleTryState(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, a.keyMap.Back) {
		a.state = StateBrowse
		a.statusMessage = ""
		return nil
	}

	name := keyMsg.String()
	ks, err := keymap.ParseKeystroke(name)
	if err != nil {
		a.statusMessage = fmt.Sprintf("%s: unbound (ignored)", name)
		return nil
	}
	action, ok := a.km.Resolve(ks)
	if !ok {
		a.statusMessage = fmt.Sprintf("%s: unbound (ignored)", ks)
		logging.Debugf("try: %s unbound", ks)
		return nil
	}
	a.statusMessage = fmt.Sprintf("%s → %s", ks, action)
	a.showStroke(ks)
	return nil
}

func (a *App) handleFuzzySearchState(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, a.keyMap.ToggleMode):
			a.toggleStrict()
			a.filterDialog.SetStrictMode(a.fuzzyStrict)
			return nil
		case keyMsg.Type == tea.KeyEscape:
			a.filterDialog.Blur()
			a.filterDialog.Reset()
			a.state = StateBrowse
			if a.fuzzyFilter != "" {
				a.fuzzyFilter = ""
				a.refreshItems()
			}
			return nil
		case keyMsg.Type == tea.KeyEnter:
			a.filterDialog.Blur()
			a.state = StateBrowse
			a.statusMessage = fmt.Sprintf("%d bindings match", len(a.bindingList.Items()))
			return nil
		}
	}

	var cmd tea.Cmd
	a.filterDialog, cmd = a.filterDialog.Update(msg)
	if value := a.filterDialog.Value(); value != a.fuzzyFilter {
		a.fuzzyFilter = value
		a.refreshItems()
	}
	return cmd
}

func (a *App) handleConfirmState(msg tea.Msg) tea.Cmd {
	switch a.confirmDialog.Answer(msg) {
	case dialogs.Yes:
		a.state = StateBrowse
		switch a.confirmDialog.Type() {
		case dialogs.ConfirmUnbind:
			item := a.pendingUnbind
			a.pendingUnbind = bindinglist.Item{}
			return a.unbind(item)
		case dialogs.ConfirmReset:
			a.busy = true
			return a.resetCmd()
		}
	case dialogs.No:
		a.state = StateBrowse
		a.pendingUnbind = bindinglist.Item{}
		a.statusMessage = "Cancelled"
	}
	return nil
}

func (a *App) handleHelpState(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, a.keyMap.Help, a.keyMap.Back) {
			a.state = StateBrowse
		}
	}
	return nil
}

// unbind removes a key from its layer. Without a store the change only lives
// for this session.
func (a *App) unbind(item bindinglist.Item) tea.Cmd {
	km, err := a.km.Rebind(keymap.Override{Layer: item.Layer, Key: item.Stroke.Key})
	if err != nil {
		a.statusMessage = fmt.Sprintf("Failed to unbind %s: %v", item.Stroke, err)
		return nil
	}
	message := fmt.Sprintf("Unbound %s (was %s)", item.Stroke, item.Action)
	if a.store == nil {
		a.setKeymap(km)
		a.statusMessage = message + ", not saved"
		return nil
	}
	a.busy = true
	return a.saveCmd(km, message)
}

func (a *App) enterTry() {
	a.state = StateTry
	if a.fuzzyFilter != "" {
		a.fuzzyFilter = ""
		a.refreshItems()
	}
	a.statusMessage = "Press keys to see what they do, esc to stop"
}

func (a *App) toggleStrict() {
	a.fuzzyStrict = !a.fuzzyStrict
	if a.fuzzyStrict {
		a.statusMessage = "Switched to strict mode"
	} else {
		a.statusMessage = "Switched to fuzzy mode"
	}
	if a.fuzzyFilter != "" {
		a.refreshItems()
	}
}

func (a *App) cycleLayer(delta int) {
	n := len(a.km.Layers())
	if n == 0 {
		return
	}
	a.layer = (a.layer + delta + n) % n
	a.refreshItems()
	if l := a.currentLayer(); l != nil {
		a.statusMessage = fmt.Sprintf("Layer %s (%s)", l.Name(), l.Modifier())
	}
}

// showStroke switches to the layer of ks and selects its entry
func (a *App) showStroke(ks keymap.Keystroke) {
	for i, l := range a.km.Layers() {
		if l.Modifier() != ks.Mod {
			continue
		}
		if i != a.layer {
			a.layer = i
			a.refreshItems()
		}
		break
	}
	a.bindingList.Select(func(it bindinglist.Item) bool { return it.Stroke == ks })
	a.refreshDetail()
}

func (a *App) setKeymap(km *keymap.Keymap) {
	if km == nil {
		return
	}
	a.km = km
	if a.layer >= len(km.Layers()) {
		a.layer = 0
	}
	a.refreshItems()
}

func (a App) currentLayer() *keymap.Layer {
	layers := a.km.Layers()
	if a.layer < 0 || a.layer >= len(layers) {
		return nil
	}
	return layers[a.layer]
}

// refreshItems rebuilds the list for the current layer and filter, keeping
// the selection when the selected key is still listed
func (a *App) refreshItems() {
	l := a.currentLayer()
	if l == nil {
		a.bindingList.SetItems(nil)
		a.bindingList.SetTitle(a.profile)
		a.refreshDetail()
		return
	}

	prev, hadPrev := a.bindingList.SelectedItem()
	a.bindingList.SetItems(a.applyFilter(bindinglist.Items(l)))
	a.bindingList.SetTitle(fmt.Sprintf("%s · %s", a.profile, l.Name()))
	if hadPrev {
		a.bindingList.Select(func(it bindinglist.Item) bool { return it.Stroke == prev.Stroke })
	}
	a.refreshDetail()
}

func (a *App) refreshDetail() {
	item, _ := a.bindingList.SelectedItem()
	a.detailView.GotoTop()
	a.detailView.SetContent(a.detailView.FormatContent(item, a.currentLayer()))
}
