package tui

import (
	"fmt"
	"time"

	"github.com/dozyapp/dozy/internal/stats"
	"github.com/dozyapp/dozy/internal/wellness"
)

// panelState is the panel currently expanded under the timer, if any.
type panelState int

const (
	panelNone panelState = iota
	panelTasks
	panelNotes
	panelStats
	panelWellness
	panelSettings
)

var panelNames = map[panelState]string{
	panelTasks:    "Tasks",
	panelNotes:    "Notes",
	panelStats:    "Stats",
	panelWellness: "Wellness",
	panelSettings: "Settings",
}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type statsDataMsg struct {
	today  stats.Today
	weekly []stats.WeekDay
	badges []stats.Badge
}

type insightMsg struct {
	habits wellness.Habits
}

type nudgeMsg struct {
	text string
}

type settingsSavedMsg struct {
	focusSecs int
	breakSecs int
	theme     string
}

type exportDoneMsg struct {
	path string
}

type onboardingDoneMsg struct{}

// --- Helpers ---

// formatClock renders whole seconds as MM:SS.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatMinutes(min float64) string {
	return fmt.Sprintf("%.0f min", min)
}
