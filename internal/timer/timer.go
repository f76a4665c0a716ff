// Package timer implements the focus/break countdown state machine. It has
// no UI dependencies: the caller drives it with one Tick per elapsed second
// and renders from the accessors.
package timer

import (
	"errors"
	"time"
)

// ErrInvalidDuration rejects non-positive phase durations at the boundary;
// the timer state is untouched when it is returned.
var ErrInvalidDuration = errors.New("duration must be a positive number of seconds")

// Phase is the current interval of the focus cycle.
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseBreak
)

func (p Phase) String() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Focus"
}

// Ledger receives one record per completed focus phase. Break completions
// are never recorded.
type Ledger interface {
	RecordCompletedSession(day time.Time) error
}

// Timer counts a phase down one second at a time and flips between focus and
// break on completion. It keeps running across phase transitions until
// paused.
type Timer struct {
	phase     Phase
	remaining int
	running   bool

	focusDuration int
	breakDuration int

	// Completed focus phases this process run; not persisted.
	completedThisRun int

	ledger Ledger
	bell   func() error
	now    func() time.Time
}

// New returns a stopped timer in the focus phase. Non-positive durations
// fall back to 25/5 minutes. bell may be nil; its errors are swallowed.
func New(focusSecs, breakSecs int, ledger Ledger, bell func() error) *Timer {
	if focusSecs <= 0 {
		focusSecs = 25 * 60
	}
	if breakSecs <= 0 {
		breakSecs = 5 * 60
	}
	return &Timer{
		phase:         PhaseFocus,
		remaining:     focusSecs,
		focusDuration: focusSecs,
		breakDuration: breakSecs,
		ledger:        ledger,
		bell:          bell,
		now:           time.Now,
	}
}

// Start begins (or resumes) the countdown. No-op if already running.
func (t *Timer) Start() {
	t.running = true
}

// Pause halts the countdown without losing the remaining time. No-op if
// already paused.
func (t *Timer) Pause() {
	t.running = false
}

// Reset pauses and restores the full duration of the current phase. The
// phase itself is unchanged.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.durationOf(t.phase)
}

// Tick advances the countdown by one second. When the phase runs out it
// completes: the bell fires, a finished focus phase is recorded in the
// ledger under today's date, and the countdown restarts with the other
// phase's duration while staying running. Tick reports the phase that
// completed, if any. Paused timers ignore ticks.
func (t *Timer) Tick() (Phase, bool) {
	if !t.running {
		return 0, false
	}
	if t.remaining > 1 {
		t.remaining--
		return 0, false
	}

	done := t.phase

	// Alert is best-effort; a failed bell never surfaces to the user.
	if t.bell != nil {
		_ = t.bell()
	}

	if done == PhaseFocus {
		t.completedThisRun++
		if t.ledger != nil {
			// Dated by wall clock at completion, not session start. A failed
			// write is dropped; in-memory state stays authoritative.
			_ = t.ledger.RecordCompletedSession(t.now())
		}
		t.phase = PhaseBreak
	} else {
		t.phase = PhaseFocus
	}
	t.remaining = t.durationOf(t.phase)
	return done, true
}

// SetFocusDuration updates the focus duration for future phases. A focus
// countdown already in flight keeps its remaining time until Reset.
func (t *Timer) SetFocusDuration(secs int) error {
	if secs <= 0 {
		return ErrInvalidDuration
	}
	t.focusDuration = secs
	return nil
}

// SetBreakDuration updates the break duration for future phases.
func (t *Timer) SetBreakDuration(secs int) error {
	if secs <= 0 {
		return ErrInvalidDuration
	}
	t.breakDuration = secs
	return nil
}

func (t *Timer) durationOf(p Phase) int {
	if p == PhaseBreak {
		return t.breakDuration
	}
	return t.focusDuration
}

func (t *Timer) Phase() Phase          { return t.phase }
func (t *Timer) Remaining() int        { return t.remaining }
func (t *Timer) Running() bool         { return t.running }
func (t *Timer) CompletedThisRun() int { return t.completedThisRun }
func (t *Timer) FocusDuration() int    { return t.focusDuration }
func (t *Timer) BreakDuration() int    { return t.breakDuration }

// Progress reports how far the current phase has advanced, in [0,1].
func (t *Timer) Progress() float64 {
	total := t.durationOf(t.phase)
	return float64(total-t.remaining) / float64(total)
}
