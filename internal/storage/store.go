package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	apperrors "smart-todo.com/smart-todo/internal/errors"
	"smart-todo.com/smart-todo/pkg/constants"
	model "smart-todo.com/smart-todo/pkg/models"
)

// TaskStore keeps the authoritative task list in memory and mirrors it to a
// flat JSON file. Every mutation rewrites the whole file; the in-memory list
// is only replaced after the write succeeds, so a failed write never leaves
// memory and disk disagreeing.
//
// The store assumes a single process owns the backing file. Concurrent
// modification of the file by another process is undefined behavior.
type TaskStore struct {
	mu       sync.Mutex
	filename string
	tasks    []model.Task
}

func NewTaskStore(filename string) *TaskStore {
	s := &TaskStore{filename: filename}
	s.tasks = s.loadTasks()
	return s
}

// loadTasks reads the backing file. A missing file is a fresh store; a
// malformed file degrades to an empty store with a logged warning rather
// than a fatal error.
func (s *TaskStore) loadTasks() []model.Task {
	data, err := os.ReadFile(s.filename)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not read task file %s, starting empty: %v", s.filename, err)
		}
		return nil
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Printf("task file %s is malformed, starting empty: %v", s.filename, err)
		return nil
	}

	return tasks
}

// persist writes the candidate task list to disk and commits it to memory
// only on success. Callers must hold s.mu.
func (s *TaskStore) persist(candidate []model.Task) error {
	data, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize tasks: %w", err)
	}

	if err := os.WriteFile(s.filename, data, 0o644); err != nil {
		return fmt.Errorf("write task file %s: %w", s.filename, err)
	}

	s.tasks = candidate
	return nil
}

func (s *TaskStore) AddTask(task model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := make([]model.Task, len(s.tasks), len(s.tasks)+1)
	copy(candidate, s.tasks)
	candidate = append(candidate, task.Clone())

	return s.persist(candidate)
}

func (s *TaskStore) GetAllTasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task.Clone())
	}
	return tasks
}

func (s *TaskStore) GetTaskByID(id string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == id {
			found := task.Clone()
			return &found, nil
		}
	}
	return nil, apperrors.ErrTaskNotFound
}

// UpdateTask replaces the stored record with the given id. The replacement
// keeps the id it is stored under regardless of what the caller set.
func (s *TaskStore) UpdateTask(id string, updated model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID != id {
			continue
		}

		candidate := make([]model.Task, len(s.tasks))
		copy(candidate, s.tasks)
		replacement := updated.Clone()
		replacement.ID = id
		candidate[i] = replacement

		return s.persist(candidate)
	}

	return apperrors.ErrTaskNotFound
}

func (s *TaskStore) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := make([]model.Task, 0, len(s.tasks))
	found := false
	for _, task := range s.tasks {
		if task.ID == id {
			found = true
			continue
		}
		candidate = append(candidate, task)
	}

	if !found {
		return apperrors.ErrTaskNotFound
	}

	return s.persist(candidate)
}

func (s *TaskStore) TasksByStatus(status constants.TaskStatus) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []model.Task
	for _, task := range s.tasks {
		if task.Status == status {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks
}

func (s *TaskStore) TasksByPriority(priority constants.Priority) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []model.Task
	for _, task := range s.tasks {
		if task.Priority == priority {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks
}

// OverdueTasks returns every non-completed task whose due date has passed.
func (s *TaskStore) OverdueTasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var tasks []model.Task
	for _, task := range s.tasks {
		if task.Status != constants.StatusCompleted && task.DueDate.Before(now) {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks
}

type Stats struct {
	TotalTasks     int                        `json:"total_tasks"`
	CompletedTasks int                        `json:"completed_tasks"`
	PendingTasks   int                        `json:"pending_tasks"`
	PriorityCounts map[constants.Priority]int `json:"priority_counts"`
	FileSizeBytes  int64                      `json:"file_size"`
}

// Stats reports record counts and the backing file size. Priority counts
// cover non-completed tasks only.
func (s *TaskStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TotalTasks: len(s.tasks),
		PriorityCounts: map[constants.Priority]int{
			constants.PriorityHigh:   0,
			constants.PriorityMedium: 0,
			constants.PriorityLow:    0,
		},
	}

	for _, task := range s.tasks {
		if task.Status == constants.StatusCompleted {
			stats.CompletedTasks++
			continue
		}
		stats.PriorityCounts[task.Priority]++
	}
	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks

	if info, err := os.Stat(s.filename); err == nil {
		stats.FileSizeBytes = info.Size()
	}

	return stats
}

// Backup writes a full copy of the current task list to the given path.
// The current store is left untouched.
func (s *TaskStore) Backup(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize tasks: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup file %s: %w", path, err)
	}

	return nil
}

// RestoreFromBackup replaces the in-memory task list with the contents of
// the named backup file and re-persists immediately. A missing or malformed
// backup leaves the current state untouched.
func (s *TaskStore) RestoreFromBackup(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.ErrBackupNotFound
	}

	var candidate []model.Task
	if err := json.Unmarshal(data, &candidate); err != nil {
		return apperrors.ErrBackupMalformed
	}

	return s.persist(candidate)
}

// DefaultBackupName returns the timestamped file name used when the caller
// does not name the backup explicitly.
func DefaultBackupName(now time.Time) string {
	return fmt.Sprintf("tasks_backup_%s.json", now.Format("20060102_150405"))
}
