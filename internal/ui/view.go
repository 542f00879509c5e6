package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hawkins/vecbind/internal/styles"
)

// View renders the application
func (a App) View() string {
	var content string

	if a.state == StateHelp {
		content = a.helpView()
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, a.bindingList.View(), a.detailView.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusView())
}

func (a App) helpView() string {
	helpItems := []string{
		"",
		styles.HelpTitleStyle.Render("Keybindings"),
		"",
		fmt.Sprintf("  %-10s %s", "↑/↓", "Navigate bindings"),
		fmt.Sprintf("  %-10s %s", "←/→", "Navigate panes"),
	}
	for _, b := range a.keyMap.helpBindings() {
		h := b.Help()
		helpItems = append(helpItems, fmt.Sprintf("  %-10s %s", h.Key, h.Desc))
	}
	helpItems = append(helpItems,
		"",
		"In try mode every key is looked up in the profile; esc stops.",
		"",
		"Press ? or ESC to close",
	)

	content := strings.Join(helpItems, "\n")

	statusBarHeight := lipgloss.Height(a.statusView())
	availableHeight := a.height - statusBarHeight

	return lipgloss.Place(
		a.width,
		availableHeight,
		lipgloss.Center,
		lipgloss.Center,
		styles.HelpDialogStyle.Render(content),
	)
}

func (a App) statusView() string {
	var (
		status     string
		statusDesc string
		statusKey  string
	)

	switch a.state {
	case StateFuzzySearch:
		if a.fuzzyStrict {
			status = "Strict"
		} else {
			status = "Fuzzy"
		}
		statusDesc = a.filterDialog.View()
	case StateTry:
		status = "Try"
		statusKey = styles.TryStyle.Render(status)
		statusDesc = a.statusMessage
	case StateConfirm:
		status = "Confirm"
		if a.confirmDialog.Danger() {
			statusKey = styles.StatusDangerStyle.Render("DANGER")
		}
		statusDesc = a.confirmDialog.Prompt()
	case StateEditing:
		status = "Editor"
		statusDesc = a.statusMessage
		if a.editingTmpFile != "" {
			statusDesc = fmt.Sprintf("Editing %s", a.editingTmpFile)
		}
	case StateHelp:
		status = "Help"
		statusDesc = a.statusMessage
	default:
		status = "Browse"
		statusDesc = a.statusMessage
		if a.fuzzyFilter != "" {
			modeLabel := "Fuzzy Filter"
			if a.fuzzyStrict {
				modeLabel = "Strict Filter"
			}
			if a.statusMessage != "" {
				statusDesc = fmt.Sprintf("[%s: %s] %s", modeLabel, a.fuzzyFilter, a.statusMessage)
			} else {
				statusDesc = fmt.Sprintf("[%s: %s]", modeLabel, a.fuzzyFilter)
			}
		}
	}
	if a.busy {
		status = a.spinner.View()
		statusKey = ""
	}

	if statusKey == "" {
		statusKey = styles.StatusStyle.Render(status)
	}
	profile := styles.ProfileStyle.Render(a.profile)

	var layer string
	if l := a.currentLayer(); l != nil {
		layer = styles.LayerStyle.Render(l.Name())
	}
	var wrapIndicator string
	if a.detailView.WordWrap() {
		wrapIndicator = styles.WrapIndicatorStyle.Render("WRAP")
	}
	datetime := styles.DatetimeStyle.Render(a.now)

	availableWidth := a.width - lipgloss.Width(statusKey) - lipgloss.Width(profile) -
		lipgloss.Width(layer) - lipgloss.Width(wrapIndicator) - lipgloss.Width(datetime)
	if availableWidth < 0 {
		availableWidth = 0
	}

	statusVal := styles.StatusText.Copy().
		Width(availableWidth).
		Render(statusDesc)

	bar := lipgloss.JoinHorizontal(lipgloss.Top, statusKey, statusVal, profile, layer, wrapIndicator, datetime)

	return styles.StatusBarStyle.Width(a.width).Render(bar)
}
