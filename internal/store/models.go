package store

import (
	"errors"
	"time"
)

// Persisted keys. Collection values are JSON strings; the rest are scalars.
const (
	KeyWorkTime       = "work-time"
	KeyBreakTime      = "break-time"
	KeySessions       = "sessions"
	KeyCompletedTasks = "completed-tasks"
	KeyTasks          = "tasks"
	KeyNotes          = "notes"
	KeyTheme          = "theme"
	KeyFirstVisit     = "first-visit"
	KeySoundEnabled   = "sound-enabled"
	KeyMindfulStats   = "mindful-stats"
)

// DateLayout is the calendar-date key format used by the ledgers (local time).
const DateLayout = "2006-01-02"

var (
	ErrEmptyTask       = errors.New("task text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidDuration = errors.New("duration must be a positive number of seconds")
)

// Task is a single todo item. The whole task list is serialized as a unit on
// every mutation.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// DayCount pairs a calendar date with a ledger count.
type DayCount struct {
	Date  string
	Count int
}

// MindfulStats is the persisted mindful-mode tally, in seconds.
type MindfulStats struct {
	FocusedSeconds    int64 `json:"focusedTime"`
	DistractedSeconds int64 `json:"distractedTime"`
}
