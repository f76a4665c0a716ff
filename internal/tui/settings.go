package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dozyapp/dozy/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	focusMin *string
	breakMin *string
	theme    *string
	sound    *bool
}

func newSettingsModel(s *store.Store) settingsModel {
	fm, bm, th := "", "", ""
	snd := true
	return settingsModel{
		store:    s,
		focusMin: &fm,
		breakMin: &bm,
		theme:    &th,
		sound:    &snd,
	}
}

func (m *settingsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Enter) || key.Matches(msg, keys.New) {
			return m.showForm()
		}
	}
	return m, nil
}

func (m settingsModel) showForm() (settingsModel, tea.Cmd) {
	*m.focusMin = strconv.Itoa(m.store.FocusDuration() / 60)
	*m.breakMin = strconv.Itoa(m.store.BreakDuration() / 60)
	*m.theme = m.store.Theme()
	*m.sound = m.store.SoundEnabled()

	validateMinutes := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("enter a positive number of minutes")
		}
		return nil
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus duration (min)").Value(m.focusMin).Validate(validateMinutes),
			huh.NewInput().Title("Break duration (min)").Value(m.breakMin).Validate(validateMinutes),
		).Title("Timer"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).Value(m.theme),
			huh.NewConfirm().Title("Completion bell").Value(m.sound),
		).Title("Appearance"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
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
		return m, m.save()
	}

	return m, cmd
}

func (m settingsModel) save() tea.Cmd {
	focusSecs := parseMinutes(*m.focusMin, m.store.FocusDuration())
	breakSecs := parseMinutes(*m.breakMin, m.store.BreakDuration())

	// The store rejects non-positive durations; keep whatever it accepted.
	m.store.SetFocusDuration(focusSecs)
	m.store.SetBreakDuration(breakSecs)
	m.store.SetTheme(*m.theme)
	m.store.SetSoundEnabled(*m.sound)

	saved := settingsSavedMsg{
		focusSecs: m.store.FocusDuration(),
		breakSecs: m.store.BreakDuration(),
		theme:     m.store.Theme(),
	}
	return func() tea.Msg { return saved }
}

// parseMinutes converts a minutes string to seconds, falling back to the
// current value when the input does not parse.
func parseMinutes(s string, fallbackSecs int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallbackSecs
	}
	return n * 60
}

func (m settingsModel) view(st *styles) string {
	w := m.width - 4

	title := st.title.Render("Settings")

	if m.formActive && m.form != nil {
		return st.panel.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	sound := "off"
	if m.store.SoundEnabled() {
		sound = "on"
	}

	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s",
			lipgloss.NewStyle().Width(20).Render(label),
			st.highlight.Render(value),
		)
	}

	return st.panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			row("Focus duration", fmt.Sprintf("%d min", m.store.FocusDuration()/60)),
			row("Break duration", fmt.Sprintf("%d min", m.store.BreakDuration()/60)),
			row("Theme", m.store.Theme()),
			row("Completion bell", sound),
			"",
			st.muted.Render("Press enter to edit settings"),
		),
	)
}
