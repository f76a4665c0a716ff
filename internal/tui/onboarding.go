package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type onboardingStep struct {
	title string
	body  string
}

var onboardingSteps = []onboardingStep{
	{
		title: "Welcome to dozy",
		body:  "Stay calm. Stay focused.\nA Pomodoro timer, tasks, notes and gentle nudges — all on this device.",
	},
	{
		title: "Focus sessions",
		body:  "Press space to start a 25-minute focus session.\nWhen it ends, a short break begins automatically.",
	},
	{
		title: "Track your day",
		body:  "Open Tasks (1), Notes (2) and Stats (3) under the timer.\nCompleted sessions and tasks earn achievements.",
	},
	{
		title: "Mind your habits",
		body:  "The Wellness panel (4) offers mindful mode and\npersonalized nudges to keep your screen time in check.",
	},
}

// onboardingModel is the first-visit carousel overlay.
type onboardingModel struct {
	step  int
	width int
}

func (m *onboardingModel) setSize(w, _ int) {
	m.width = w
}

func (m onboardingModel) update(msg tea.Msg) (onboardingModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Left):
			if m.step > 0 {
				m.step--
			}
		case key.Matches(msg, keys.Right):
			if m.step < len(onboardingSteps)-1 {
				m.step++
			}
		case key.Matches(msg, keys.Enter):
			if m.step < len(onboardingSteps)-1 {
				m.step++
				return m, nil
			}
			return m, func() tea.Msg { return onboardingDoneMsg{} }
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return onboardingDoneMsg{} }
		}
	}
	return m, nil
}

func (m onboardingModel) view(st *styles) string {
	w := m.width - 4
	step := onboardingSteps[m.step]

	var dots []string
	for i := range onboardingSteps {
		if i == m.step {
			dots = append(dots, st.success.Render("●"))
		} else {
			dots = append(dots, st.muted.Render("○"))
		}
	}

	hint := "←/→: browse  enter: next  esc: skip"
	if m.step == len(onboardingSteps)-1 {
		hint = "enter: get started"
	}

	return st.activePanel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			st.title.Render(step.title),
			"",
			st.normalItem.Render(step.body),
			"",
			strings.Join(dots, " "),
			"",
			st.muted.Render(fmt.Sprintf("  %s", hint)),
		),
	)
}
