package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dozyapp/dozy/internal/wellness"
)

// wellnessModel is the digital-wellness panel: the mindful-mode tracker plus
// the mock insight/nudge generator.
type wellnessModel struct {
	tracker *wellness.Tracker
	width   int
	height  int

	habits    *wellness.Habits
	nudge     string
	analyzing bool

	formActive bool
	form       *huh.Form
	concern    *string
}

func newWellnessModel(tracker *wellness.Tracker) wellnessModel {
	concern := ""
	return wellnessModel{
		tracker: tracker,
		concern: &concern,
	}
}

func (m *wellnessModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// analyzeCmd delivers the mock habit analysis after a simulated latency.
func analyzeCmd() tea.Cmd {
	return tea.Tick(wellness.AnalyzeLatency, func(time.Time) tea.Msg {
		return insightMsg{habits: wellness.AnalyzeHabits()}
	})
}

func nudgeCmd() tea.Cmd {
	return tea.Tick(wellness.NudgeLatency, func(time.Time) tea.Msg {
		return nudgeMsg{text: wellness.Nudge()}
	})
}

func respondCmd(concern string) tea.Cmd {
	return tea.Tick(wellness.AnalyzeLatency, func(time.Time) tea.Msg {
		return nudgeMsg{text: wellness.RespondTo(concern)}
	})
}

func (m wellnessModel) update(msg tea.Msg) (wellnessModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		if reminder, ok := m.tracker.Tick(); ok {
			return m, func() tea.Msg { return statusMsg{text: reminder} }
		}
		return m, nil

	case insightMsg:
		habits := msg.habits
		m.habits = &habits
		m.analyzing = false
		return m, nil

	case nudgeMsg:
		m.nudge = msg.text
		m.analyzing = false
		return m, nil

	case tea.KeyMsg:
		// Any key press while the panel is open counts as presence.
		m.tracker.RecordActivity()

		switch {
		case key.Matches(msg, keys.Mindful):
			if m.tracker.Active() {
				m.tracker.Stop()
				return m, func() tea.Msg { return statusMsg{text: "Mindful session saved"} }
			}
			m.tracker.Start()
			return m, nil

		case key.Matches(msg, keys.Insights):
			if m.analyzing {
				return m, nil
			}
			m.analyzing = true
			return m, analyzeCmd()

		case key.Matches(msg, keys.Nudge):
			if m.analyzing {
				return m, nil
			}
			m.analyzing = true
			return m, nudgeCmd()

		case key.Matches(msg, keys.Ask):
			return m.showAskForm()
		}
	}
	return m, nil
}

func (m wellnessModel) showAskForm() (wellnessModel, tea.Cmd) {
	*m.concern = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("What digital habit concerns you?").Value(m.concern),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m wellnessModel) updateForm(msg tea.Msg) (wellnessModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		if strings.TrimSpace(*m.concern) == "" {
			return m, nil
		}
		m.analyzing = true
		return m, respondCmd(*m.concern)
	}

	return m, cmd
}

func (m wellnessModel) view(st *styles) string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := st.title.Render("Ask for an Insight")
		return st.panel.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	title := st.title.Render("Digital Wellness")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, m.renderMindful(st))
	rows = append(rows, "")

	if m.analyzing {
		rows = append(rows, st.muted.Render("Analyzing your habits…"))
	} else {
		if m.habits != nil {
			rows = append(rows, m.renderHabits(st))
		}
		if m.nudge != "" {
			rows = append(rows, "")
			rows = append(rows, st.accent.Render("✧ ")+st.normalItem.Render(m.nudge))
		}
	}

	rows = append(rows, "")
	rows = append(rows, st.muted.Render("  m: mindful mode  i: insights  u: nudge  a: ask"))

	return st.panel.Width(w).Render(strings.Join(rows, "\n"))
}

func (m wellnessModel) renderMindful(st *styles) string {
	stats := m.tracker.Stats()
	focused := formatClockLong(stats.FocusedSeconds)
	distracted := formatClockLong(stats.DistractedSeconds)

	state := st.muted.Render("○ mindful mode off")
	if m.tracker.Active() {
		state = st.success.Render(fmt.Sprintf("● mindful mode on — distraction score %d/100", m.tracker.Score()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		state,
		st.muted.Render(fmt.Sprintf("  focused %s · distracted %s", focused, distracted)),
	)
}

func (m wellnessModel) renderHabits(st *styles) string {
	h := m.habits

	var rows []string
	rows = append(rows, st.highlight.Render(fmt.Sprintf("Screen time: %.1fh/day (%s), %d pickups/day (%s)",
		h.DailyScreenHours, h.ScreenTrend, h.DailyPickups, h.PickupTrend)))

	var shares []string
	for _, b := range h.Breakdown {
		shares = append(shares, fmt.Sprintf("%s %d%%", b.Category, b.Percentage))
	}
	rows = append(rows, st.muted.Render("  "+strings.Join(shares, " · ")))

	for _, rec := range h.Recommendations {
		rows = append(rows, st.normalItem.Render("  • "+rec))
	}
	return strings.Join(rows, "\n")
}

func formatClockLong(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
