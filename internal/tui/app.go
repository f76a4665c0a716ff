package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dozyapp/dozy/internal/export"
	"github.com/dozyapp/dozy/internal/stats"
	"github.com/dozyapp/dozy/internal/store"
	"github.com/dozyapp/dozy/internal/wellness"
)

// App is the root Bubble Tea model. It owns the theme, the tick source and
// all panel sub-models; nothing lives in package-level mutable state.
type App struct {
	store  *store.Store
	st     *styles
	width  int
	height int

	activePanel   panelState
	showHelp      bool
	onboarding    bool
	exportPicking bool
	exportCursor  int

	timer     timerModel
	tasks     tasksModel
	notes     notesModel
	stats     statsModel
	wellness  wellnessModel
	settings  settingsModel
	onboard   onboardingModel

	help   help.Model
	status string
}

func NewApp(s *store.Store) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		st:         newStyles(s.Theme()),
		onboarding: s.FirstVisit(),
		timer:      newTimerModel(s),
		tasks:      newTasksModel(s),
		notes:      newNotesModel(s),
		stats:      newStatsModel(stats.New(s)),
		wellness:   newWellnessModel(wellness.NewTracker(s)),
		settings:   newSettingsModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.timer.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.notes.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.wellness.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.onboard.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		cmds = append(cmds, tickCmd())
		// The heartbeat always reaches the timer and the mindful tracker,
		// whatever panel is open.
		var cmd tea.Cmd
		a.timer, cmd = a.timer.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		a.wellness, cmd = a.wellness.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if a.onboarding {
			var cmd tea.Cmd
			a.onboard, cmd = a.onboard.update(msg)
			return a, cmd
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}
		// A capturing child (form or textarea) sees every key first.
		if a.isCapturing() {
			return a.updateActivePanel(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			a.wellness.tracker.Stop()
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.StartPause), key.Matches(msg, keys.Reset):
			var cmd tea.Cmd
			a.timer, cmd = a.timer.update(msg)
			return a, cmd
		case key.Matches(msg, keys.Tab1):
			return a.togglePanel(panelTasks)
		case key.Matches(msg, keys.Tab2):
			return a.togglePanel(panelNotes)
		case key.Matches(msg, keys.Tab3):
			return a.togglePanel(panelStats)
		case key.Matches(msg, keys.Tab4):
			return a.togglePanel(panelWellness)
		case key.Matches(msg, keys.Tab5):
			return a.togglePanel(panelSettings)
		}
		return a.updateActivePanel(msg)

	case onboardingDoneMsg:
		a.onboarding = false
		// Write the gate; a failed write just means onboarding shows again.
		a.store.MarkVisited()
		return a, nil

	case settingsSavedMsg:
		a.st = newStyles(msg.theme)
		var cmd tea.Cmd
		a.timer, cmd = a.timer.update(msg)
		a.status = "Settings saved"
		return a, cmd

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActivePanel(msg)
}

// togglePanel opens a panel, or closes it when it is already open.
func (a App) togglePanel(p panelState) (tea.Model, tea.Cmd) {
	if a.activePanel == p {
		a.activePanel = panelNone
		return a, nil
	}
	a.activePanel = p
	switch p {
	case panelTasks:
		return a, a.tasks.refresh()
	case panelStats:
		return a, a.stats.refresh()
	}
	return a, nil
}

func (a App) updateActivePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activePanel {
	case panelTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case panelNotes:
		a.notes, cmd = a.notes.update(msg)
	case panelStats:
		a.stats, cmd = a.stats.update(msg)
	case panelWellness:
		a.wellness, cmd = a.wellness.update(msg)
	case panelSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isCapturing() bool {
	switch a.activePanel {
	case panelTasks:
		return a.tasks.formActive
	case panelNotes:
		return a.notes.capturing()
	case panelWellness:
		return a.wellness.formActive
	case panelSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	if a.onboarding {
		content = a.onboard.view(a.st)
	} else if a.exportPicking {
		content = a.renderExportPicker()
	} else {
		content = a.timer.view(a.st)
		switch a.activePanel {
		case panelTasks:
			content = lipgloss.JoinVertical(lipgloss.Left, content, a.tasks.view(a.st))
		case panelNotes:
			content = lipgloss.JoinVertical(lipgloss.Left, content, a.notes.view(a.st))
		case panelStats:
			content = lipgloss.JoinVertical(lipgloss.Left, content, a.stats.view(a.st))
		case panelWellness:
			content = lipgloss.JoinVertical(lipgloss.Left, content, a.wellness.view(a.st))
		case panelSettings:
			content = lipgloss.JoinVertical(lipgloss.Left, content, a.settings.view(a.st))
		}
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for p := panelTasks; p <= panelSettings; p++ {
		if p == a.activePanel {
			tabs = append(tabs, a.st.activeTab.Render(panelNames[p]))
		} else {
			tabs = append(tabs, a.st.inactiveTab.Render(panelNames[p]))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(a.st.pal.primary).Render("dozy")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return a.st.header.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = a.st.muted.Render(" " + a.status)
	}

	// Countdown indicator in the footer while the timer runs.
	timerInfo := ""
	if a.timer.clock.Running() {
		timerInfo = a.st.success.Render(" ● " + formatClock(a.timer.clock.Remaining()))
	}

	left := a.st.footer.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := a.st.title.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := a.st.normalItem
		if i == a.exportCursor {
			cursor = "> "
			style = a.st.selectedItem
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, a.st.muted.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return a.st.activePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		days := a.store.SessionRange(time.Now(), 30)
		tasks, err := a.store.ListTasks()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("dozy-export-%s.csv", dateStr))
			if err := export.ToCSV(days, tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("dozy-export-%s.json", dateStr))
			if err := export.ToJSON(days, tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
