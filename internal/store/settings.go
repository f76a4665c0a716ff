package store

const (
	DefaultWorkSeconds  = 1500 // 25 min
	DefaultBreakSeconds = 300  // 5 min
)

// FocusDuration returns the configured focus-phase duration in seconds.
func (s *Store) FocusDuration() int {
	return s.getInt(KeyWorkTime, DefaultWorkSeconds)
}

// SetFocusDuration stores a new focus-phase duration. Non-positive values
// are rejected with ErrInvalidDuration and nothing is written.
func (s *Store) SetFocusDuration(secs int) error {
	if secs <= 0 {
		return ErrInvalidDuration
	}
	return s.setInt(KeyWorkTime, secs)
}

// BreakDuration returns the configured break-phase duration in seconds.
func (s *Store) BreakDuration() int {
	return s.getInt(KeyBreakTime, DefaultBreakSeconds)
}

// SetBreakDuration stores a new break-phase duration, subject to the same
// validation as SetFocusDuration.
func (s *Store) SetBreakDuration(secs int) error {
	if secs <= 0 {
		return ErrInvalidDuration
	}
	return s.setInt(KeyBreakTime, secs)
}

func (s *Store) Theme() string {
	return s.Get(KeyTheme, "dark")
}

func (s *Store) SetTheme(theme string) error {
	return s.Set(KeyTheme, theme)
}

func (s *Store) SoundEnabled() bool {
	return s.Get(KeySoundEnabled, "true") == "true"
}

func (s *Store) SetSoundEnabled(enabled bool) error {
	if enabled {
		return s.Set(KeySoundEnabled, "true")
	}
	return s.Set(KeySoundEnabled, "false")
}

func (s *Store) Notes() string {
	return s.Get(KeyNotes, "")
}

// SetNotes replaces the freeform notes text. Clearing the text removes the
// key entirely.
func (s *Store) SetNotes(text string) error {
	if text == "" {
		return s.Delete(KeyNotes)
	}
	return s.Set(KeyNotes, text)
}

// FirstVisit reports whether the onboarding flow has not yet been shown.
func (s *Store) FirstVisit() bool {
	return s.Get(KeyFirstVisit, "true") != "false"
}

// MarkVisited records that onboarding has been shown.
func (s *Store) MarkVisited() error {
	return s.Set(KeyFirstVisit, "false")
}

// Mindful returns the persisted mindful-mode tally, zero-valued if absent.
func (s *Store) Mindful() MindfulStats {
	var ms MindfulStats
	s.getJSON(KeyMindfulStats, &ms)
	return ms
}

func (s *Store) SetMindful(ms MindfulStats) error {
	return s.setJSON(KeyMindfulStats, ms)
}
