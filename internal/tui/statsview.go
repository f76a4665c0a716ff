package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dozyapp/dozy/internal/stats"
)

type statsModel struct {
	agg    *stats.Aggregator
	width  int
	height int

	today  stats.Today
	weekly []stats.WeekDay
	badges []stats.Badge

	chart barchart.Model
}

func newStatsModel(agg *stats.Aggregator) statsModel {
	return statsModel{
		agg:   agg,
		chart: barchart.New(40, 8),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return statsDataMsg{
			today:  m.agg.Today(),
			weekly: m.agg.Weekly(),
			badges: m.agg.Achievements(),
		}
	}
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		m.today = msg.today
		m.weekly = msg.weekly
		m.badges = msg.badges
		m.buildChart()
		return m, nil
	}
	return m, nil
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 10
	if chartWidth < 24 {
		chartWidth = 24
	}

	m.chart = barchart.New(chartWidth, 8)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#5DBB8A"))
	var bars []barchart.BarData
	for _, day := range m.weekly {
		label := day.Date
		if len(label) >= 5 {
			label = label[5:] // MM-DD
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: "sessions", Value: float64(day.Sessions), Style: barStyle},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view(st *styles) string {
	w := m.width - 4

	title := st.title.Render("Dashboard")

	cards := m.renderCards(st)
	chartTitle := st.muted.Render("Focus sessions, last 7 days")
	badges := m.renderBadges(st)

	return st.panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", cards, "", chartTitle, m.chart.View(), "", badges,
		),
	)
}

func (m statsModel) renderCards(st *styles) string {
	card := func(label, value string) string {
		return st.panel.Padding(0, 1).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				st.muted.Render(label),
				st.title.Render(value),
			),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Sessions", fmt.Sprintf("%d", m.today.SessionsCompleted)),
		card("Focus Time", formatMinutes(m.today.FocusedMinutes)),
		card("Break Time", formatMinutes(m.today.BreakMinutes)),
		card("Tasks Done", fmt.Sprintf("%d", m.today.TasksCompleted)),
	)
}

func (m statsModel) renderBadges(st *styles) string {
	header := st.title.Render("Achievements")
	if len(m.badges) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			st.muted.Render("Complete focus sessions and tasks to earn achievements!"),
		)
	}

	var items []string
	for _, b := range m.badges {
		items = append(items, st.success.Render("★ "+b.Title))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(items, "  "))
}
