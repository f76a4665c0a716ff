// Package wellness holds the mindful-mode distraction tracker and the mock
// habit-insight generator. Neither touches a real device-usage source; the
// tracker is fed explicit activity reports by the UI and the insights are
// canned data behind a simulated latency.
package wellness

import (
	"math/rand"
	"time"

	"github.com/dozyapp/dozy/internal/store"
)

const (
	idleAfter = 60 * time.Second // inactivity beyond this counts as distraction
	scoreIdle = 2                // score bump when the user goes idle
	scoreMax  = 100
)

var reminders = []string{
	"Breathe. Let's stay on task.",
	"Gently bring your attention back.",
	"Remember your intention for today.",
	"One thing at a time. Focus on now.",
	"You're doing great. Keep going.",
}

// Tracker accumulates focused vs. distracted seconds while a mindful session
// is active. Activity arrives only through RecordActivity; there are no
// ambient listeners, and Stop is the single teardown point.
type Tracker struct {
	store *store.Store

	active       bool
	stats        store.MindfulStats
	score        int
	lastActivity time.Time
	wasIdle      bool

	now func() time.Time
}

func NewTracker(s *store.Store) *Tracker {
	return &Tracker{
		store: s,
		stats: s.Mindful(),
		now:   time.Now,
	}
}

// Start begins a mindful session. No-op if one is already active.
func (t *Tracker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.score = 0
	t.wasIdle = false
	t.lastActivity = t.now()
}

// Stop ends the session and persists the tally. A failed write is dropped;
// the in-memory tally survives for this run.
func (t *Tracker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	_ = t.store.SetMindful(t.stats)
}

// RecordActivity marks the user as present. The UI calls this on every input
// event while the panel is active.
func (t *Tracker) RecordActivity() {
	t.lastActivity = t.now()
	t.wasIdle = false
}

// Tick accounts one elapsed second. Idle seconds count as distracted time;
// crossing into idleness bumps the distraction score and yields a gentle
// reminder exactly once per idle stretch.
func (t *Tracker) Tick() (reminder string, ok bool) {
	if !t.active {
		return "", false
	}

	if t.now().Sub(t.lastActivity) > idleAfter {
		t.stats.DistractedSeconds++
		if !t.wasIdle {
			t.wasIdle = true
			t.score = min(t.score+scoreIdle, scoreMax)
			return reminders[rand.Intn(len(reminders))], true
		}
		return "", false
	}

	t.stats.FocusedSeconds++
	return "", false
}

func (t *Tracker) Active() bool              { return t.active }
func (t *Tracker) Score() int                { return t.score }
func (t *Tracker) Stats() store.MindfulStats { return t.stats }
