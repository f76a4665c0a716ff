package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dozyapp/dozy/internal/store"
	"github.com/dozyapp/dozy/internal/timer"
)

// timerModel wraps the countdown state machine and renders the home view.
type timerModel struct {
	store *store.Store
	clock *timer.Timer
	width int
}

func newTimerModel(s *store.Store) timerModel {
	bell := func() error {
		if !s.SoundEnabled() {
			return nil
		}
		_, err := fmt.Fprint(os.Stdout, "\a")
		return err
	}
	return timerModel{
		store: s,
		clock: timer.New(s.FocusDuration(), s.BreakDuration(), s, bell),
	}
}

func (t *timerModel) setSize(w, _ int) {
	t.width = w
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		phase, done := t.clock.Tick()
		if !done {
			return t, nil
		}
		text := "Break over. Back to focus."
		if phase == timer.PhaseFocus {
			text = "Focus session complete! Time for a break."
		}
		return t, func() tea.Msg { return statusMsg{text: text} }

	case settingsSavedMsg:
		// New durations apply to future phases; the countdown in flight is
		// left alone until a reset.
		t.clock.SetFocusDuration(msg.focusSecs)
		t.clock.SetBreakDuration(msg.breakSecs)
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.StartPause):
			if t.clock.Running() {
				t.clock.Pause()
			} else {
				t.clock.Start()
			}
			return t, nil
		case key.Matches(msg, keys.Reset):
			t.clock.Reset()
			return t, nil
		}
	}
	return t, nil
}

func (t timerModel) view(st *styles) string {
	w := t.width - 4

	phaseLabel := st.accent.Bold(true).Render("FOCUS SESSION")
	if t.clock.Phase() == timer.PhaseBreak {
		phaseLabel = st.success.Bold(true).Render("BREAK TIME")
	}

	total := t.clock.FocusDuration()
	if t.clock.Phase() == timer.PhaseBreak {
		total = t.clock.BreakDuration()
	}

	clockStyle := st.clock
	indicator := st.muted.Render("■  press space to start")
	if t.clock.Running() {
		clockStyle = st.clockRunning
		indicator = st.success.Render("●  RUNNING")
	} else if t.clock.Remaining() < total {
		clockStyle = st.clockPaused
		indicator = st.warning.Render("⏸  PAUSED")
	}

	clockFace := clockStyle.Width(w - 6).Render(formatClock(t.clock.Remaining()))
	bar := renderProgressBar(t.clock.Progress(), min(w-10, 40), st)
	sessions := st.muted.Render(fmt.Sprintf("Sessions completed: %d", t.clock.CompletedThisRun()))

	content := lipgloss.JoinVertical(lipgloss.Center,
		phaseLabel,
		clockFace,
		bar,
		indicator,
		sessions,
	)

	if t.clock.Running() {
		return st.activePanel.Width(w).Render(content)
	}
	return st.panel.Width(w).Render(content)
}

// renderProgressBar draws a simple filled bar for progress in [0,1].
func renderProgressBar(progress float64, width int, st *styles) string {
	if width < 4 {
		width = 4
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return st.highlight.Render(bar)
}
