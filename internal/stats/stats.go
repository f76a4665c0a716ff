// Package stats computes the dashboard projections. Everything here is a
// pure read over the ledgers, recomputed on each call and never persisted.
package stats

import (
	"fmt"
	"time"

	"github.com/dozyapp/dozy/internal/store"
)

const (
	weeklyDays      = 7
	streakThreshold = 2 // sessions per day for a day to count toward a streak
	streakMinimum   = 3 // streaks shorter than this earn no badge
)

// Today is a snapshot of the current day. Minutes are estimates derived from
// the configured durations, not measured elapsed time.
type Today struct {
	SessionsCompleted int
	FocusedMinutes    float64
	BreakMinutes      float64
	TasksCompleted    int
}

// WeekDay is one day of the trailing weekly view.
type WeekDay struct {
	Date         string
	Sessions     int
	FocusMinutes float64
}

// Badge is an earned achievement.
type Badge struct {
	ID    string
	Title string
}

// Aggregator reads the ledgers and produces display snapshots.
type Aggregator struct {
	store *store.Store
	now   func() time.Time
}

func New(s *store.Store) *Aggregator {
	return &Aggregator{store: s, now: time.Now}
}

// Today summarizes the current day's sessions and completed tasks.
func (a *Aggregator) Today() Today {
	now := a.now()
	sessions := a.store.SessionCount(now)
	focusMin := float64(a.store.FocusDuration()) / 60
	breakMin := float64(a.store.BreakDuration()) / 60

	return Today{
		SessionsCompleted: sessions,
		FocusedMinutes:    float64(sessions) * focusMin,
		BreakMinutes:      float64(sessions) * breakMin,
		TasksCompleted:    a.store.CompletedTaskCount(now),
	}
}

// Weekly returns the trailing seven days, oldest first.
func (a *Aggregator) Weekly() []WeekDay {
	focusMin := float64(a.store.FocusDuration()) / 60

	days := make([]WeekDay, 0, weeklyDays)
	for _, dc := range a.store.SessionRange(a.now(), weeklyDays) {
		days = append(days, WeekDay{
			Date:         dc.Date,
			Sessions:     dc.Count,
			FocusMinutes: float64(dc.Count) * focusMin,
		})
	}
	return days
}

// Achievements evaluates the badge gates against today's ledgers. Only
// qualifying badges are returned, in a fixed order.
func (a *Aggregator) Achievements() []Badge {
	now := a.now()
	sessions := a.store.SessionCount(now)
	tasks := a.store.CompletedTaskCount(now)

	var badges []Badge
	if sessions >= 1 {
		badges = append(badges, Badge{ID: "first_session", Title: "First Session"})
	}
	if sessions >= 4 {
		badges = append(badges, Badge{ID: "productive_day", Title: "Productive Day"})
	}
	if tasks >= 5 {
		badges = append(badges, Badge{ID: "task_master", Title: "Task Master"})
	}
	if streak := a.store.ComputeStreak(now, streakThreshold); streak >= streakMinimum {
		badges = append(badges, Badge{ID: "focus_streak", Title: fmt.Sprintf("%d Day Streak", streak)})
	}
	return badges
}
