package store

import (
	"fmt"
	"time"
)

// The session and completed-task ledgers are date-keyed counters stored as
// JSON maps. Counts only ever go up; un-completing or deleting a task later
// does not claw back a recorded completion.

func (s *Store) loadLedger(key string) (map[string]int, error) {
	ledger := make(map[string]int)
	if _, err := s.getJSON(key, &ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// RecordCompletedSession increments the session count for day by one,
// creating the entry if absent.
func (s *Store) RecordCompletedSession(day time.Time) error {
	return s.increment(KeySessions, day)
}

// RecordCompletedTask increments the completed-task count for day by one.
func (s *Store) RecordCompletedTask(day time.Time) error {
	return s.increment(KeyCompletedTasks, day)
}

func (s *Store) increment(key string, day time.Time) error {
	ledger, err := s.loadLedger(key)
	if err != nil {
		return err
	}
	date := day.Format(DateLayout)
	ledger[date]++
	if err := s.setJSON(key, ledger); err != nil {
		return fmt.Errorf("record %s for %s: %w", key, date, err)
	}
	return nil
}

// SessionCount returns the number of focus sessions completed on day, or 0.
func (s *Store) SessionCount(day time.Time) int {
	return s.count(KeySessions, day)
}

// CompletedTaskCount returns the number of tasks completed on day, or 0.
func (s *Store) CompletedTaskCount(day time.Time) int {
	return s.count(KeyCompletedTasks, day)
}

func (s *Store) count(key string, day time.Time) int {
	ledger, err := s.loadLedger(key)
	if err != nil {
		return 0
	}
	return ledger[day.Format(DateLayout)]
}

// SessionRange returns numDays consecutive days of session counts ending at
// end, oldest first. Days with no recorded sessions report 0.
func (s *Store) SessionRange(end time.Time, numDays int) []DayCount {
	ledger, err := s.loadLedger(KeySessions)
	if err != nil {
		ledger = map[string]int{}
	}

	counts := make([]DayCount, 0, numDays)
	for i := numDays - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		date := day.Format(DateLayout)
		counts = append(counts, DayCount{Date: date, Count: ledger[date]})
	}
	return counts
}

// ComputeStreak counts consecutive days, walking backward from ref, on which
// at least minPerDay sessions were completed. The walk stops at the first
// day below the threshold; if ref itself fails the streak is 0.
func (s *Store) ComputeStreak(ref time.Time, minPerDay int) int {
	ledger, err := s.loadLedger(KeySessions)
	if err != nil {
		return 0
	}

	streak := 0
	for day := ref; ledger[day.Format(DateLayout)] >= minPerDay; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
