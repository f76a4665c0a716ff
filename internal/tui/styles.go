package tui

import "github.com/charmbracelet/lipgloss"

// palette is one theme's color set. The sage/peach hues come from the dozy
// visual identity; the dark background follows the terminal.
type palette struct {
	primary   lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	danger    lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var darkPalette = palette{
	primary:   lipgloss.Color("#5DBB8A"),
	accent:    lipgloss.Color("#E8A87C"),
	muted:     lipgloss.Color("#666666"),
	success:   lipgloss.Color("#2ECC71"),
	warning:   lipgloss.Color("#F39C12"),
	danger:    lipgloss.Color("#E74C3C"),
	fg:        lipgloss.Color("#C0CAF5"),
	subtle:    lipgloss.Color("#414868"),
	highlight: lipgloss.Color("#7AA2F7"),
}

var lightPalette = palette{
	primary:   lipgloss.Color("#4A9570"),
	accent:    lipgloss.Color("#C77B4A"),
	muted:     lipgloss.Color("#8A8A8A"),
	success:   lipgloss.Color("#1E8E52"),
	warning:   lipgloss.Color("#B36F00"),
	danger:    lipgloss.Color("#C0392B"),
	fg:        lipgloss.Color("#102A43"),
	subtle:    lipgloss.Color("#C9D4E0"),
	highlight: lipgloss.Color("#2F6FBA"),
}

// styles holds every rendered style for one theme. The root App owns a
// single instance and hands it to views; switching theme swaps the whole
// set, so there is no ambient style state.
type styles struct {
	pal palette

	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style

	panel       lipgloss.Style
	activePanel lipgloss.Style

	clock        lipgloss.Style
	clockRunning lipgloss.Style
	clockPaused  lipgloss.Style

	title     lipgloss.Style
	accent    lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	errText   lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style

	header lipgloss.Style
	footer lipgloss.Style

	selectedItem lipgloss.Style
	normalItem   lipgloss.Style
}

func newStyles(theme string) *styles {
	pal := darkPalette
	if theme == "light" {
		pal = lightPalette
	}

	return &styles{
		pal: pal,

		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(pal.primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(pal.primary).
			Padding(0, 2),

		inactiveTab: lipgloss.NewStyle().
			Foreground(pal.muted).
			Padding(0, 2),

		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(pal.subtle).
			Padding(1, 2),

		activePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(pal.primary).
			Padding(1, 2),

		clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(pal.primary).
			Align(lipgloss.Center),

		clockRunning: lipgloss.NewStyle().
			Bold(true).
			Foreground(pal.success).
			Align(lipgloss.Center),

		clockPaused: lipgloss.NewStyle().
			Bold(true).
			Foreground(pal.warning).
			Align(lipgloss.Center),

		title:     lipgloss.NewStyle().Bold(true).Foreground(pal.fg),
		accent:    lipgloss.NewStyle().Foreground(pal.accent),
		success:   lipgloss.NewStyle().Foreground(pal.success),
		warning:   lipgloss.NewStyle().Foreground(pal.warning),
		errText:   lipgloss.NewStyle().Foreground(pal.danger),
		muted:     lipgloss.NewStyle().Foreground(pal.muted),
		highlight: lipgloss.NewStyle().Foreground(pal.highlight),

		header: lipgloss.NewStyle().Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(pal.muted).Padding(0, 1),

		selectedItem: lipgloss.NewStyle().Foreground(pal.primary).Bold(true),
		normalItem:   lipgloss.NewStyle().Foreground(pal.fg),
	}
}
