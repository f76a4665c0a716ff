package store

import (
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedSessions writes a session ledger keyed by day offsets from ref
// (0 = ref itself, 1 = the day before, ...).
func seedSessions(t *testing.T, s *Store, ref time.Time, countsByOffset map[int]int) {
	t.Helper()
	ledger := make(map[string]int)
	for offset, n := range countsByOffset {
		ledger[ref.AddDate(0, 0, -offset).Format(DateLayout)] = n
	}
	if err := s.setJSON(KeySessions, ledger); err != nil {
		t.Fatalf("seed sessions: %v", err)
	}
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/dozy.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestSeededDefaults(t *testing.T) {
	s := newTestStore(t)

	if got := s.FocusDuration(); got != DefaultWorkSeconds {
		t.Fatalf("expected focus default %d, got %d", DefaultWorkSeconds, got)
	}
	if got := s.BreakDuration(); got != DefaultBreakSeconds {
		t.Fatalf("expected break default %d, got %d", DefaultBreakSeconds, got)
	}
	if got := s.Theme(); got != "dark" {
		t.Fatalf("expected dark theme, got %q", got)
	}
	if !s.SoundEnabled() {
		t.Fatal("expected sound enabled by default")
	}
	if !s.FirstVisit() {
		t.Fatal("expected first visit true on a fresh store")
	}
}

func TestSeedsDoNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/dozy.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetFocusDuration(600); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	if got := s2.FocusDuration(); got != 600 {
		t.Fatalf("reopen reset focus duration to %d", got)
	}
}

// ============================================================
// Key-value primitives
// ============================================================

func TestGetFallback(t *testing.T) {
	s := newTestStore(t)
	if got := s.Get("no-such-key", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set("k", "one"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "two"); err != nil {
		t.Fatal(err)
	}
	if got := s.Get("k", ""); got != "two" {
		t.Fatalf("expected two, got %q", got)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	s.Set("k", "v")
	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if got := s.Get("k", "gone"); got != "gone" {
		t.Fatalf("expected key removed, got %q", got)
	}
	// Deleting an absent key is a no-op
	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
}

func TestGetJSONAbsentKey(t *testing.T) {
	s := newTestStore(t)
	var dst map[string]int
	found, err := s.getJSON("no-such-key", &dst)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected found=false for absent key")
	}
	if dst != nil {
		t.Fatalf("expected dst untouched, got %v", dst)
	}
}

func TestGetIntMalformed(t *testing.T) {
	s := newTestStore(t)
	s.Set("n", "not a number")
	if got := s.getInt("n", 42); got != 42 {
		t.Fatalf("expected fallback 42, got %d", got)
	}
}

// ============================================================
// Settings
// ============================================================

func TestSetFocusDuration(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetFocusDuration(1800); err != nil {
		t.Fatal(err)
	}
	if got := s.FocusDuration(); got != 1800 {
		t.Fatalf("expected 1800, got %d", got)
	}
}

func TestSetFocusDurationRejectsNonPositive(t *testing.T) {
	s := newTestStore(t)
	for _, secs := range []int{0, -1, -1500} {
		if err := s.SetFocusDuration(secs); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("secs=%d: expected ErrInvalidDuration, got %v", secs, err)
		}
	}
	// The stored value is untouched
	if got := s.FocusDuration(); got != DefaultWorkSeconds {
		t.Fatalf("rejected write changed the value to %d", got)
	}
}

func TestSetBreakDurationRejectsNonPositive(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetBreakDuration(0); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetTheme("light"); err != nil {
		t.Fatal(err)
	}
	if got := s.Theme(); got != "light" {
		t.Fatalf("expected light, got %q", got)
	}
}

func TestSoundEnabledRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSoundEnabled(false); err != nil {
		t.Fatal(err)
	}
	if s.SoundEnabled() {
		t.Fatal("expected sound disabled")
	}
	if err := s.SetSoundEnabled(true); err != nil {
		t.Fatal(err)
	}
	if !s.SoundEnabled() {
		t.Fatal("expected sound enabled")
	}
}

func TestNotes(t *testing.T) {
	s := newTestStore(t)
	if got := s.Notes(); got != "" {
		t.Fatalf("expected empty notes, got %q", got)
	}
	if err := s.SetNotes("remember the milk"); err != nil {
		t.Fatal(err)
	}
	if got := s.Notes(); got != "remember the milk" {
		t.Fatalf("unexpected notes: %q", got)
	}
	// Clearing removes the key
	if err := s.SetNotes(""); err != nil {
		t.Fatal(err)
	}
	if got := s.Get(KeyNotes, "absent"); got != "absent" {
		t.Fatalf("expected notes key removed, got %q", got)
	}
}

func TestFirstVisit(t *testing.T) {
	s := newTestStore(t)
	if !s.FirstVisit() {
		t.Fatal("expected first visit on fresh store")
	}
	if err := s.MarkVisited(); err != nil {
		t.Fatal(err)
	}
	if s.FirstVisit() {
		t.Fatal("expected first visit cleared after MarkVisited")
	}
}

func TestMindfulRoundTrip(t *testing.T) {
	s := newTestStore(t)

	ms := s.Mindful()
	if ms.FocusedSeconds != 0 || ms.DistractedSeconds != 0 {
		t.Fatalf("expected zero stats on fresh store, got %+v", ms)
	}

	want := MindfulStats{FocusedSeconds: 120, DistractedSeconds: 15}
	if err := s.SetMindful(want); err != nil {
		t.Fatal(err)
	}
	if got := s.Mindful(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// ============================================================
// Session and task ledgers
// ============================================================

func TestRecordCompletedSession(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 8, 20, 14, 0, 0, 0, time.Local)

	if got := s.SessionCount(day); got != 0 {
		t.Fatalf("expected 0 sessions, got %d", got)
	}
	for i := 0; i < 3; i++ {
		if err := s.RecordCompletedSession(day); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.SessionCount(day); got != 3 {
		t.Fatalf("expected 3 sessions, got %d", got)
	}
	// Other days are unaffected
	if got := s.SessionCount(day.AddDate(0, 0, -1)); got != 0 {
		t.Fatalf("expected 0 sessions on previous day, got %d", got)
	}
}

func TestRecordCompletedTask(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)

	if err := s.RecordCompletedTask(day); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordCompletedTask(day); err != nil {
		t.Fatal(err)
	}
	if got := s.CompletedTaskCount(day); got != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", got)
	}
	// Task and session ledgers are independent
	if got := s.SessionCount(day); got != 0 {
		t.Fatalf("task ledger leaked into session ledger: %d", got)
	}
}

func TestSessionRange(t *testing.T) {
	s := newTestStore(t)
	ref := time.Date(2026, 8, 20, 12, 0, 0, 0, time.Local)
	seedSessions(t, s, ref, map[int]int{0: 4, 2: 1, 6: 7})

	counts := s.SessionRange(ref, 7)
	if len(counts) != 7 {
		t.Fatalf("expected 7 days, got %d", len(counts))
	}
	// Oldest first, ending at ref
	if counts[0].Date != "2026-08-14" || counts[0].Count != 7 {
		t.Fatalf("unexpected first day: %+v", counts[0])
	}
	if counts[4].Date != "2026-08-18" || counts[4].Count != 1 {
		t.Fatalf("unexpected fifth day: %+v", counts[4])
	}
	if counts[6].Date != "2026-08-20" || counts[6].Count != 4 {
		t.Fatalf("unexpected last day: %+v", counts[6])
	}
	// Unseeded days report zero
	if counts[1].Count != 0 || counts[5].Count != 0 {
		t.Fatalf("expected zeros on empty days: %+v", counts)
	}
}

func TestComputeStreak(t *testing.T) {
	s := newTestStore(t)
	ref := time.Date(2026, 8, 20, 12, 0, 0, 0, time.Local)

	// Empty ledger
	if got := s.ComputeStreak(ref, 2); got != 0 {
		t.Fatalf("expected 0 streak on empty ledger, got %d", got)
	}

	// Two qualifying days, then a day below threshold stops the walk even
	// though an older day qualifies again.
	seedSessions(t, s, ref, map[int]int{0: 2, 1: 2, 2: 1, 3: 3})
	if got := s.ComputeStreak(ref, 2); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}

	// The walk halts at the first failing day no matter what lies beyond
	seedSessions(t, s, ref, map[int]int{0: 3, 1: 1, 2: 2, 3: 2})
	if got := s.ComputeStreak(ref, 2); got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}

	// The reference day itself failing means no streak at all
	seedSessions(t, s, ref, map[int]int{1: 5, 2: 5})
	if got := s.ComputeStreak(ref, 2); got != 0 {
		t.Fatalf("expected streak 0 when today fails, got %d", got)
	}
}

// ============================================================
// Tasks
// ============================================================

func TestListTasksEmpty(t *testing.T) {
	s := newTestStore(t)
	tasks, err := s.ListTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestAddTask(t *testing.T) {
	s := newTestStore(t)
	task, err := s.AddTask("write report")
	if err != nil {
		t.Fatal(err)
	}
	if task.ID == 0 {
		t.Fatal("expected non-zero id")
	}
	if task.Text != "write report" || task.Done {
		t.Fatalf("unexpected task: %+v", task)
	}

	tasks, err := s.ListTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Fatalf("unexpected list: %+v", tasks)
	}
}

func TestAddTaskRejectsEmpty(t *testing.T) {
	s := newTestStore(t)
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := s.AddTask(text); !errors.Is(err, ErrEmptyTask) {
			t.Fatalf("text=%q: expected ErrEmptyTask, got %v", text, err)
		}
	}
	tasks, _ := s.ListTasks()
	if len(tasks) != 0 {
		t.Fatalf("rejected add wrote %d tasks", len(tasks))
	}
}

func TestAddTaskUniqueIDs(t *testing.T) {
	s := newTestStore(t)
	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		task, err := s.AddTask("task")
		if err != nil {
			t.Fatal(err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %d on iteration %d", task.ID, i)
		}
		seen[task.ID] = true
	}
}

func TestToggleTask(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.AddTask("ship it")

	toggled, err := s.ToggleTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.Done {
		t.Fatal("expected task done after toggle")
	}
	// Completion is recorded in today's ledger
	if got := s.CompletedTaskCount(time.Now()); got != 1 {
		t.Fatalf("expected 1 completed task recorded, got %d", got)
	}

	// Toggling back does not claw back the count
	toggled, err = s.ToggleTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Done {
		t.Fatal("expected task undone after second toggle")
	}
	if got := s.CompletedTaskCount(time.Now()); got != 1 {
		t.Fatalf("un-toggle changed the ledger to %d", got)
	}
}

func TestToggleTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ToggleTask(12345); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.AddTask("first")
	b, _ := s.AddTask("second")

	if err := s.DeleteTask(a.ID); err != nil {
		t.Fatal(err)
	}
	tasks, _ := s.ListTasks()
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Fatalf("unexpected tasks after delete: %+v", tasks)
	}

	// Absent id is a no-op
	if err := s.DeleteTask(a.ID); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteDoneTaskKeepsLedger(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.AddTask("done and gone")
	s.ToggleTask(task.ID)
	s.DeleteTask(task.ID)

	if got := s.CompletedTaskCount(time.Now()); got != 1 {
		t.Fatalf("delete clawed back the ledger: %d", got)
	}
}

func TestTasksSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/dozy.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	task, err := s.AddTask("persist me")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	tasks, err := s2.ListTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID || tasks[0].Text != "persist me" {
		t.Fatalf("unexpected tasks after reopen: %+v", tasks)
	}
}
