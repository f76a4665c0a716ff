package store

import (
	"fmt"
	"strings"
	"time"
)

// ListTasks returns the task list in insertion order.
func (s *Store) ListTasks() ([]Task, error) {
	var tasks []Task
	if _, err := s.getJSON(KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) saveTasks(tasks []Task) error {
	if err := s.setJSON(KeyTasks, tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// AddTask appends a new task with a fresh unique id. Empty or whitespace-only
// text is rejected with ErrEmptyTask and nothing is written.
func (s *Store) AddTask(text string) (*Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyTask
	}

	tasks, err := s.ListTasks()
	if err != nil {
		return nil, err
	}

	// Time-derived id; bump past the current maximum so two adds within the
	// same millisecond still get distinct ids.
	id := time.Now().UnixMilli()
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}

	task := Task{
		ID:        id,
		Text:      text,
		Done:      false,
		CreatedAt: time.Now(),
	}
	tasks = append(tasks, task)
	if err := s.saveTasks(tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleTask flips the completion state of the task with the given id. A
// false→true transition also records one completed task in today's ledger;
// the reverse transition does not decrement it.
func (s *Store) ToggleTask(id int64) (*Task, error) {
	tasks, err := s.ListTasks()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Done = !tasks[i].Done
		if err := s.saveTasks(tasks); err != nil {
			return nil, err
		}
		if tasks[i].Done {
			if err := s.RecordCompletedTask(time.Now()); err != nil {
				return nil, err
			}
		}
		return &tasks[i], nil
	}
	return nil, ErrTaskNotFound
}

// DeleteTask removes the task with the given id. Absent ids are a no-op.
// Ledger counts already recorded are unaffected.
func (s *Store) DeleteTask(id int64) error {
	tasks, err := s.ListTasks()
	if err != nil {
		return err
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return nil
	}
	return s.saveTasks(kept)
}
