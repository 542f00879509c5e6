// Package styles contains all lipgloss styles for the TUI and CLI tables
package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	accent        = lipgloss.Color("#FF5F87")
	muted         = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	light         = lipgloss.Color("#FFFDF5")
	dark          = lipgloss.Color("#1E1E1E")
	violet        = lipgloss.Color("#6124DF")
	purple        = lipgloss.Color("#A550DF")
	blue          = lipgloss.Color("#3C8DBC")
	green         = lipgloss.Color("#50FA7B")
	orange        = lipgloss.Color("#FFB86C")
	danger        = lipgloss.Color("#FF0000")
	barText       = lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}
	barBackground = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"}
)

// Pane and list styles
var (
	ListViewStyle = lipgloss.NewStyle().
			PaddingRight(1).
			MarginRight(1).
			Border(lipgloss.RoundedBorder(), false, true, false, false)

	ListFocusedBorderColor   = accent
	ListUnfocusedBorderColor = muted

	DividerStyle   = lipgloss.NewStyle().Foreground(muted)
	FocusIndicator = lipgloss.NewStyle().Foreground(accent).Bold(true)
)

// Detail pane styles
var (
	KeyCapStyle = lipgloss.NewStyle().
			Foreground(light).
			Background(violet).
			Padding(0, 1).
			Bold(true)

	ActionStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	UnassignedStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(12)
)

// Status bar styles
var (
	StatusNugget = lipgloss.NewStyle().
			Foreground(light).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(barText).
			Background(barBackground)

	StatusStyle = StatusBarStyle.Copy().
			Foreground(light).
			Background(accent).
			Padding(0, 1).
			MarginRight(1)

	StatusDangerStyle = StatusStyle.Copy().
				Background(danger)

	TryStyle = StatusStyle.Copy().
			Background(green).
			Foreground(dark)

	ProfileStyle = StatusNugget.Copy().
			Background(purple).
			Align(lipgloss.Right)

	LayerStyle = StatusNugget.Copy().
			Background(blue)

	WrapIndicatorStyle = StatusNugget.Copy().
				Background(green)

	StatusText = StatusBarStyle.Copy()

	DatetimeStyle = StatusNugget.Copy().
			Background(violet)
)

// Help and dialog styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	HelpDialogStyle = lipgloss.NewStyle().
			Foreground(barText).
			Background(barBackground).
			Padding(1, 2)
)

// CLI table styles
var (
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(muted)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accent).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	ProblemErrorStyle = lipgloss.NewStyle().
				Foreground(danger).
				Bold(true)

	ProblemWarningStyle = lipgloss.NewStyle().
				Foreground(orange)
)
