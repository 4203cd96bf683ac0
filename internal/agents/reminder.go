package agents

import (
	"fmt"
	"time"

	"smart-todo.com/smart-todo/pkg/constants"
	model "smart-todo.com/smart-todo/pkg/models"
)

const ReminderOverdue = "overdue"

// reminderThreshold pairs a time window with the label recorded on tasks
// that fall inside it.
type reminderThreshold struct {
	Within time.Duration
	Label  string
}

// Thresholds are ordered widest to tightest; the tightest window still
// covering the remaining time wins. Higher priorities get earlier (wider)
// windows.
var reminderThresholds = map[constants.Priority][]reminderThreshold{
	constants.PriorityHigh: {
		{Within: 2 * time.Hour, Label: "due_in_2h"},
		{Within: time.Hour, Label: "due_in_1h"},
		{Within: 30 * time.Minute, Label: "due_in_30m"},
	},
	constants.PriorityMedium: {
		{Within: time.Hour, Label: "due_in_1h"},
		{Within: 30 * time.Minute, Label: "due_in_30m"},
	},
	constants.PriorityLow: {
		{Within: 30 * time.Minute, Label: "due_in_30m"},
	},
}

// Reminder classifies tasks by how close they are to their due date and
// renders human-readable reminder messages.
type Reminder struct{}

func NewReminder() *Reminder {
	return &Reminder{}
}

// CheckReminders returns the tasks needing attention, each with its
// ReminderType set. Completed tasks are skipped; overdue tasks are always
// included; the rest are matched against their priority's threshold list
// and included at most once.
func (r *Reminder) CheckReminders(tasks []model.Task) []model.Task {
	now := time.Now()

	var reminders []model.Task
	for _, task := range tasks {
		if task.Status == constants.StatusCompleted {
			continue
		}

		timeUntilDue := task.DueDate.Sub(now)

		if timeUntilDue < 0 {
			task.ReminderType = ReminderOverdue
			reminders = append(reminders, task)
			continue
		}

		label := ""
		for _, threshold := range reminderThresholds[task.Priority] {
			if timeUntilDue <= threshold.Within {
				label = threshold.Label
			}
		}
		if label != "" {
			task.ReminderType = label
			reminders = append(reminders, task)
		}
	}

	return reminders
}

// ReminderMessage renders a single reminder line for the task.
func (r *Reminder) ReminderMessage(task model.Task) string {
	timeUntilDue := time.Until(task.DueDate)

	if timeUntilDue < 0 {
		return fmt.Sprintf("OVERDUE: '%s' was due %s ago", task.Title, humanizeDuration(-timeUntilDue))
	}
	return fmt.Sprintf("REMINDER: '%s' is due in %s", task.Title, humanizeDuration(timeUntilDue))
}

type DailySummary struct {
	TotalToday   int          `json:"total_today"`
	HighPriority int          `json:"high_priority"`
	Tasks        []model.Task `json:"tasks"`
}

// GetDailySummary reports the pending tasks due on the current local
// calendar day.
func (r *Reminder) GetDailySummary(tasks []model.Task) DailySummary {
	year, month, day := time.Now().Date()

	summary := DailySummary{Tasks: []model.Task{}}
	for _, task := range tasks {
		if task.Status != constants.StatusPending {
			continue
		}
		dueYear, dueMonth, dueDay := task.DueDate.Date()
		if dueYear != year || dueMonth != month || dueDay != day {
			continue
		}

		summary.TotalToday++
		if task.Priority == constants.PriorityHigh {
			summary.HighPriority++
		}
		summary.Tasks = append(summary.Tasks, task)
	}

	return summary
}

// humanizeDuration renders a duration at hour/minute granularity, e.g.
// "2h 5m", "45m".
func humanizeDuration(d time.Duration) string {
	d = d.Round(time.Minute)

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
