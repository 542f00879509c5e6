package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hawkins/vecbind/internal/codec"
	"github.com/hawkins/vecbind/internal/constant"
	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/logging"
	"github.com/hawkins/vecbind/internal/store"
	"github.com/hawkins/vecbind/internal/ui/components/bindinglist"
	"github.com/sahilm/fuzzy"
)

var errReadOnly = errors.New("no profile store configured")

// applyFilter applies fuzzy or strict filtering on action names
func (a App) applyFilter(items []bindinglist.Item) []bindinglist.Item {
	if a.fuzzyFilter == "" {
		return items
	}

	var filtered []bindinglist.Item
	if a.fuzzyStrict {
		filterLower := strings.ToLower(a.fuzzyFilter)
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.FilterValue()), filterLower) {
				filtered = append(filtered, it)
			}
		}
	} else {
		names := make([]string, len(items))
		for i, it := range items {
			names[i] = it.FilterValue()
		}
		for _, match := range fuzzy.Find(a.fuzzyFilter, names) {
			filtered = append(filtered, items[match.Index])
		}
	}
	return filtered
}

// tickCmd provides clock updates
func (a App) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{T: t.Format(constant.ClockFormat)}
	})
}

// copyCmd writes text to the system clipboard
func (a App) copyCmd(text string) tea.Cmd {
	write := a.writeClipboard
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: write(text)}
	}
}

// reloadCmd reads the profile back from the store
func (a App) reloadCmd() tea.Cmd {
	s, profile, overrides := a.store, a.profile, a.overrides
	return func() tea.Msg {
		if s == nil {
			return ProfileLoadedMsg{Err: errReadOnly}
		}
		km, err := store.Resolve(context.Background(), s, profile, overrides)
		return ProfileLoadedMsg{Keymap: km, Err: err}
	}
}

// saveCmd writes km to the store under the current profile name
func (a App) saveCmd(km *keymap.Keymap, message string) tea.Cmd {
	s, profile := a.store, a.profile
	return func() tea.Msg {
		if s == nil {
			return ProfileSavedMsg{Err: errReadOnly}
		}
		if err := s.Save(context.Background(), profile, km); err != nil {
			return ProfileSavedMsg{Err: err}
		}
		logging.Infof("saved profile %s: %s", profile, message)
		return ProfileSavedMsg{Keymap: km, Message: message}
	}
}

// resetCmd drops the stored copy of a built-in profile. The result carries
// the active overrides, as a reload would.
func (a App) resetCmd() tea.Cmd {
	s, profile, overrides := a.store, a.profile, a.overrides
	return func() tea.Msg {
		if s == nil {
			return ProfileSavedMsg{Err: errReadOnly}
		}
		km, err := keymap.Builtin(profile)
		if err != nil {
			return ProfileSavedMsg{Err: err}
		}
		if len(overrides) > 0 {
			if km, err = km.Rebind(overrides...); err != nil {
				return ProfileSavedMsg{Err: err}
			}
		}
		err = s.Delete(context.Background(), profile)
		if err != nil && !errors.Is(err, store.ErrProfileNotFound) {
			return ProfileSavedMsg{Err: err}
		}
		logging.Infof("reset profile %s to built-in", profile)
		return ProfileSavedMsg{Keymap: km, Message: fmt.Sprintf("Profile %s reset to built-in bindings", profile)}
	}
}

// editProfileCmd writes the profile to a temporary YAML document
func (a App) editProfileCmd() tea.Cmd {
	km, profile := a.km, a.profile
	return func() tea.Msg {
		data, err := codec.Marshal(km.Document(), codec.YAML)
		if err != nil {
			return EditProfileMsg{Err: err}
		}
		tmpFile, err := os.CreateTemp("", fmt.Sprintf("%s-%s-*%s", constant.AppName, profile, codec.YAML.Ext()))
		if err != nil {
			return EditProfileMsg{Err: fmt.Errorf("failed to create temp file: %w", err)}
		}
		if _, err := tmpFile.Write(data); err != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpFile.Name())
			return EditProfileMsg{Err: fmt.Errorf("failed to write to temp file: %w", err)}
		}
		_ = tmpFile.Close()

		return EditProfileMsg{TmpFile: tmpFile.Name()}
	}
}

// openEditorCmd opens an external editor
func (a App) openEditorCmd(tmpFilePath string) tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	c := exec.Command(editor, tmpFilePath)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return EditorFinishedMsg{TmpFile: tmpFilePath, Err: err}
	})
}

// processEditedProfileCmd validates the edited document and saves it
func (a App) processEditedProfileCmd(tmpFilePath string) tea.Cmd {
	save := a.saveCmd
	return func() tea.Msg {
		defer func() {
			_ = os.Remove(tmpFilePath)
		}()

		km, err := readEditedProfile(tmpFilePath)
		if err != nil {
			return ProfileSavedMsg{Err: err}
		}
		return save(km, "edited in $EDITOR")()
	}
}

func readEditedProfile(path string) (*keymap.Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp file: %w", err)
	}
	doc, err := codec.Unmarshal(data, codec.YAML)
	if err != nil {
		return nil, err
	}
	problems := keymap.Check(doc)
	for _, p := range problems {
		if p.Severity == keymap.SeverityError {
			return nil, fmt.Errorf("edit rejected: %s", p)
		}
		logging.Warnf("edited profile: %s", p)
	}
	return keymap.FromDocument(doc)
}
