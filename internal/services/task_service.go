package services

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"smart-todo.com/smart-todo/internal/agents"
	apperrors "smart-todo.com/smart-todo/internal/errors"
	"smart-todo.com/smart-todo/internal/storage"
	"smart-todo.com/smart-todo/pkg/constants"
	model "smart-todo.com/smart-todo/pkg/models"
)

// TaskService wires the three agents to the record store: the planner
// builds a base record, the scheduler annotates it, the store persists it.
// Re-ranking and reminder classification read the full list from the store
// and write derived fields back through UpdateTask.
type TaskService struct {
	store     *storage.TaskStore
	planner   *agents.Planner
	scheduler *agents.Scheduler
	reminder  *agents.Reminder
	backupDir string
}

func NewTaskService(store *storage.TaskStore, backupDir string) *TaskService {
	return &TaskService{
		store:     store,
		planner:   agents.NewPlanner(),
		scheduler: agents.NewScheduler(),
		reminder:  agents.NewReminder(),
		backupDir: backupDir,
	}
}

func (s *TaskService) CreateTask(
	ctx context.Context,
	title, description string,
	priority constants.Priority,
	dueDate time.Time,
) (*model.Task, error) {
	task := s.planner.CreateTask(title, description, priority, dueDate)
	task = s.scheduler.ScheduleTask(task)

	if err := s.store.AddTask(task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	return s.store.GetTaskByID(id)
}

// ListFilter narrows and orders a task listing. Zero values mean "no
// filtering" and insertion order.
type ListFilter struct {
	Status   constants.TaskStatus
	Priority constants.Priority
	SortBy   string // "due_date", "priority" or "created"
}

var sortPriorityOrder = map[constants.Priority]int{
	constants.PriorityHigh:   3,
	constants.PriorityMedium: 2,
	constants.PriorityLow:    1,
}

func (s *TaskService) ListTasks(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	tasks := s.store.GetAllTasks()

	if filter.Status != "" || filter.Priority != "" {
		filtered := make([]model.Task, 0, len(tasks))
		for _, task := range tasks {
			if filter.Status != "" && task.Status != filter.Status {
				continue
			}
			if filter.Priority != "" && task.Priority != filter.Priority {
				continue
			}
			filtered = append(filtered, task)
		}
		tasks = filtered
	}

	switch filter.SortBy {
	case "due_date":
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		})
	case "priority":
		sort.SliceStable(tasks, func(i, j int) bool {
			return sortPriorityOrder[tasks[i].Priority] > sortPriorityOrder[tasks[j].Priority]
		})
	case "created":
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedDate.Before(tasks[j].CreatedDate)
		})
	}

	return tasks, nil
}

// UpdateTask stores a full replacement record under the given id.
func (s *TaskService) UpdateTask(ctx context.Context, id string, updated model.Task) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	if err := s.store.UpdateTask(id, updated); err != nil {
		return nil, err
	}
	return s.store.GetTaskByID(id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}
	return s.store.DeleteTask(id)
}

// CompleteTask transitions a pending task to completed and stamps the
// completion time. The transition is one-way; completing an already
// completed task is rejected.
func (s *TaskService) CompleteTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.Status == constants.StatusCompleted {
		return nil, apperrors.ErrTaskAlreadyCompleted
	}

	now := time.Now()
	task.Status = constants.StatusCompleted
	task.CompletedDate = &now

	if err := s.store.UpdateTask(id, *task); err != nil {
		return nil, err
	}
	return task, nil
}

// OptimizeSchedule re-ranks all tasks by composite urgency score, persists
// the fresh scores of the pending tasks, and returns the new ordering.
func (s *TaskService) OptimizeSchedule(ctx context.Context) ([]model.Task, error) {
	ordered := s.scheduler.OptimizeSchedule(s.store.GetAllTasks())

	for _, task := range ordered {
		if task.Status != constants.StatusPending {
			continue
		}
		if err := s.store.UpdateTask(task.ID, task); err != nil {
			return nil, err
		}
	}

	return ordered, nil
}

// ReminderNotice pairs a classified task with its rendered message.
type ReminderNotice struct {
	Task    model.Task `json:"task"`
	Message string     `json:"message"`
}

// CheckReminders classifies every task against its reminder thresholds,
// persists the classification, and returns the tasks needing attention
// together with their messages.
func (s *TaskService) CheckReminders(ctx context.Context) ([]ReminderNotice, error) {
	reminders := s.reminder.CheckReminders(s.store.GetAllTasks())

	notices := make([]ReminderNotice, 0, len(reminders))
	for _, task := range reminders {
		if err := s.store.UpdateTask(task.ID, task); err != nil {
			return nil, err
		}
		notices = append(notices, ReminderNotice{
			Task:    task,
			Message: s.reminder.ReminderMessage(task),
		})
	}

	return notices, nil
}

func (s *TaskService) DailySummary(ctx context.Context) agents.DailySummary {
	return s.reminder.GetDailySummary(s.store.GetAllTasks())
}

func (s *TaskService) Stats(ctx context.Context) storage.Stats {
	return s.store.Stats()
}

// Backup copies the current task list to a backup file and returns its
// path. An empty name picks a timestamped default inside the configured
// backup directory.
func (s *TaskService) Backup(ctx context.Context, name string) (string, error) {
	if name == "" {
		name = storage.DefaultBackupName(time.Now())
	}
	path := filepath.Join(s.backupDir, name)

	if err := s.store.Backup(path); err != nil {
		return "", err
	}
	return path, nil
}

// Restore replaces the current task list with a backup's contents.
func (s *TaskService) Restore(ctx context.Context, name string) error {
	if filepath.Dir(name) == "." {
		name = filepath.Join(s.backupDir, name)
	}
	return s.store.RestoreFromBackup(name)
}
