package services

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	apperrors "smart-todo.com/smart-todo/internal/errors"
	"smart-todo.com/smart-todo/internal/storage"
	"smart-todo.com/smart-todo/pkg/constants"
)

func setupTestService(t *testing.T) *TaskService {
	t.Helper()
	dir := t.TempDir()
	store := storage.NewTaskStore(filepath.Join(dir, "tasks.json"))
	return NewTaskService(store, dir)
}

func TestTaskService_CreateRunsPlannerAndScheduler(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()
	due := time.Now().Add(90 * time.Minute)

	task, err := service.CreateTask(ctx, "Call client", "", constants.PriorityHigh, due)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.ID == "" {
		t.Error("expected task ID to be set")
	}
	if task.Status != constants.StatusPending {
		t.Errorf("expected status %s, got %s", constants.StatusPending, task.Status)
	}
	if task.EstimatedDuration != 30 {
		t.Errorf("expected estimated duration 30, got %d", task.EstimatedDuration)
	}
	if !reflect.DeepEqual(task.Tags, []string{"call"}) {
		t.Errorf("expected tags [call], got %v", task.Tags)
	}
	if !task.ScheduledTime.Equal(due.Add(-2 * time.Hour)) {
		t.Errorf("expected scheduled time 2h before due, got %v", task.ScheduledTime)
	}
	if task.BufferTime != 15 {
		t.Errorf("expected buffer time 15, got %d", task.BufferTime)
	}

	stored, err := service.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to fetch created task: %v", err)
	}
	if stored.Title != "Call client" {
		t.Errorf("expected stored title 'Call client', got %q", stored.Title)
	}
}

func TestTaskService_CompleteTask(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "Write report", "", constants.PriorityMedium, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	completed, err := service.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}
	if completed.Status != constants.StatusCompleted {
		t.Errorf("expected status completed, got %s", completed.Status)
	}
	if completed.CompletedDate == nil {
		t.Error("expected completed date to be set")
	}

	if _, err := service.CompleteTask(ctx, task.ID); !errors.Is(err, apperrors.ErrTaskAlreadyCompleted) {
		t.Errorf("expected ErrTaskAlreadyCompleted, got %v", err)
	}
}

func TestTaskService_OptimizePersistsScores(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()
	now := time.Now()

	taskB, err := service.CreateTask(ctx, "B", "", constants.PriorityHigh, now.Add(97*time.Hour))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	taskA, err := service.CreateTask(ctx, "A", "", constants.PriorityLow, now.Add(25*time.Hour))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	ordered, err := service.OptimizeSchedule(ctx)
	if err != nil {
		t.Fatalf("failed to optimize: %v", err)
	}

	if len(ordered) != 2 || ordered[0].ID != taskA.ID || ordered[1].ID != taskB.ID {
		t.Fatalf("expected order [A B], got %v", ordered)
	}

	storedA, _ := service.GetTask(ctx, taskA.ID)
	storedB, _ := service.GetTask(ctx, taskB.ID)
	if storedA.OptimizationScore != 5 {
		t.Errorf("expected persisted score 5 for A, got %d", storedA.OptimizationScore)
	}
	if storedB.OptimizationScore != 4 {
		t.Errorf("expected persisted score 4 for B, got %d", storedB.OptimizationScore)
	}
}

func TestTaskService_CheckRemindersPersistsClassification(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	overdue, err := service.CreateTask(ctx, "Late", "", constants.PriorityLow, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := service.CreateTask(ctx, "Far out", "", constants.PriorityHigh, time.Now().Add(48*time.Hour)); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	notices, err := service.CheckReminders(ctx)
	if err != nil {
		t.Fatalf("failed to check reminders: %v", err)
	}

	if len(notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(notices))
	}
	if notices[0].Task.ReminderType != "overdue" {
		t.Errorf("expected reminder type overdue, got %s", notices[0].Task.ReminderType)
	}
	if notices[0].Message == "" {
		t.Error("expected a rendered reminder message")
	}

	stored, _ := service.GetTask(ctx, overdue.ID)
	if stored.ReminderType != "overdue" {
		t.Errorf("expected classification persisted, got %q", stored.ReminderType)
	}
}

func TestTaskService_ListFiltersAndSorts(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()
	now := time.Now()

	late, err := service.CreateTask(ctx, "late due", "", constants.PriorityLow, now.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	soon, err := service.CreateTask(ctx, "soon due", "", constants.PriorityHigh, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := service.CompleteTask(ctx, late.ID); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	pending, err := service.ListTasks(ctx, ListFilter{Status: constants.StatusPending})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != soon.ID {
		t.Errorf("expected only the pending task, got %v", pending)
	}

	high, err := service.ListTasks(ctx, ListFilter{Priority: constants.PriorityHigh})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(high) != 1 || high[0].ID != soon.ID {
		t.Errorf("expected only the high priority task, got %v", high)
	}

	byDue, err := service.ListTasks(ctx, ListFilter{SortBy: "due_date"})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(byDue) != 2 || byDue[0].ID != soon.ID || byDue[1].ID != late.ID {
		t.Errorf("expected due-date order [soon late], got %v", byDue)
	}

	byPriority, err := service.ListTasks(ctx, ListFilter{SortBy: "priority"})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if byPriority[0].ID != soon.ID {
		t.Errorf("expected high priority first, got %v", byPriority)
	}
}

func TestTaskService_BackupRestoreRoundTrip(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "Keep me", "", constants.PriorityMedium, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	path, err := service.Backup(ctx, "")
	if err != nil {
		t.Fatalf("failed to back up: %v", err)
	}
	if filepath.Base(path) == "" {
		t.Fatal("expected a backup path")
	}

	if err := service.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}

	if err := service.Restore(ctx, path); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	restored, err := service.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("expected task back after restore: %v", err)
	}
	if restored.Title != "Keep me" {
		t.Errorf("unexpected restored task: %+v", *restored)
	}
}

func TestTaskService_DeleteMissing(t *testing.T) {
	service := setupTestService(t)

	if err := service.DeleteTask(context.Background(), "missing"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
