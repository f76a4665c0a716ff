package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dozyapp/dozy/internal/store"
)

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	tasks  []store.Task
	cursor int

	formActive bool
	form       *huh.Form
	formText   *string
}

func newTasksModel(s *store.Store) tasksModel {
	text := ""
	return tasksModel{
		store:    s,
		formText: &text,
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type tasksDataMsg struct {
	tasks []store.Task
}

func (m tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, _ := m.store.ListTasks()
		return tasksDataMsg{tasks: tasks}
	}
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.New):
			return m.showAddForm()
		case key.Matches(msg, keys.Enter):
			return m.toggleSelected()
		case key.Matches(msg, keys.Delete):
			if len(m.tasks) > 0 {
				m.store.DeleteTask(m.tasks[m.cursor].ID)
				return m, m.refresh()
			}
		}
	}
	return m, nil
}

func (m tasksModel) toggleSelected() (tasksModel, tea.Cmd) {
	if len(m.tasks) == 0 {
		return m, nil
	}
	task, err := m.store.ToggleTask(m.tasks[m.cursor].ID)
	if err != nil {
		// A vanished id is a no-op, not an error the user needs to see.
		return m, m.refresh()
	}

	cmds := []tea.Cmd{m.refresh()}
	if task.Done {
		cmds = append(cmds, func() tea.Msg {
			return statusMsg{text: "Task done — nice work! ✦"}
		})
	}
	return m, tea.Batch(cmds...)
}

func (m tasksModel) showAddForm() (tasksModel, tea.Cmd) {
	*m.formText = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("New Task").Value(m.formText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
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
		// Empty text is rejected by the store; just skip the add.
		m.store.AddTask(*m.formText)
		return m, m.refresh()
	}

	return m, cmd
}

func (m tasksModel) view(st *styles) string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := st.title.Render("Add Task")
		return st.panel.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	title := st.title.Render("Tasks")

	if len(m.tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			st.muted.Render("No tasks yet. Press n to add one."),
		)
		return st.panel.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, task := range m.tasks {
		check := "☐"
		text := task.Text
		if task.Done {
			check = "☑"
			text = st.muted.Strikethrough(true).Render(text)
		}
		cursor := "  "
		style := st.normalItem
		if i == m.cursor {
			cursor = "> "
			style = st.selectedItem
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s ", cursor, check))+text)
	}

	rows = append(rows, "")
	rows = append(rows, st.muted.Render("  n: new  enter: toggle  d: delete"))

	return st.panel.Width(w).Render(strings.Join(rows, "\n"))
}
