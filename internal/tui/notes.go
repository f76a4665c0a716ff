package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dozyapp/dozy/internal/store"
)

// notesModel is the freeform notes panel. Text is written back synchronously
// on every edit; there is no separate save action.
type notesModel struct {
	store  *store.Store
	width  int
	height int

	area    textarea.Model
	editing bool
}

func newNotesModel(s *store.Store) notesModel {
	area := textarea.New()
	area.Placeholder = "Jot down your thoughts, ideas, or reflections…"
	area.CharLimit = 0
	area.SetHeight(8)
	area.SetValue(s.Notes())

	return notesModel{
		store: s,
		area:  area,
	}
}

func (m *notesModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.area.SetWidth(max(20, w-10))
}

func (m notesModel) update(msg tea.Msg) (notesModel, tea.Cmd) {
	if m.editing {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
			m.editing = false
			m.area.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		// Persist as the user types; a failed write leaves the in-memory
		// text authoritative.
		m.store.SetNotes(m.area.Value())
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Enter) {
			m.editing = true
			return m, m.area.Focus()
		}
	}
	return m, nil
}

// capturing reports whether the textarea has focus and should receive all
// key input.
func (m notesModel) capturing() bool {
	return m.editing
}

func (m notesModel) view(st *styles) string {
	w := m.width - 4

	title := st.title.Render("Notes")
	hint := st.muted.Render("enter: edit  esc: done")
	if m.editing {
		hint = st.muted.Render("esc: done editing")
	}
	saved := st.muted.Render("Saved locally on this device.")

	return st.panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", m.area.View(), "", saved, hint),
	)
}
