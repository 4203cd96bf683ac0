package agents

import (
	"math"
	"sort"
	"time"

	"smart-todo.com/smart-todo/pkg/constants"
	model "smart-todo.com/smart-todo/pkg/models"
)

const bufferTimeMinutes = 15

var priorityScores = map[constants.Priority]int{
	constants.PriorityHigh:   3,
	constants.PriorityMedium: 2,
	constants.PriorityLow:    1,
}

var scheduleOffsets = map[constants.Priority]time.Duration{
	constants.PriorityHigh:   2 * time.Hour,
	constants.PriorityMedium: time.Hour,
	constants.PriorityLow:    30 * time.Minute,
}

// Scheduler derives working-time annotations for single tasks and re-ranks
// task lists by a composite urgency score.
type Scheduler struct{}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// ScheduleTask annotates the task with its optimal working time, a
// preparation estimate and a fixed buffer. The scheduled time is simply
// due date minus a priority-sized offset; it may land in the past when the
// deadline is closer than the offset, and is deliberately not clamped.
func (s *Scheduler) ScheduleTask(task model.Task) model.Task {
	task.ScheduledTime = task.DueDate.Add(-scheduleOffsets[task.Priority])
	task.PreparationTime = prepTime(task)
	task.BufferTime = bufferTimeMinutes
	return task
}

// prepTime estimates preparation minutes from content tags. The meeting tag
// wins over report.
func prepTime(task model.Task) int {
	if task.HasTag("meeting") {
		return 15
	}
	if task.HasTag("report") {
		return 30
	}
	return 5
}

// OptimizeSchedule scores every pending task and returns the full list
// reordered: pending tasks first, sorted by score descending (ties keep
// their input order), followed by non-pending tasks in their original
// relative order. Non-pending tasks are never scored.
func (s *Scheduler) OptimizeSchedule(tasks []model.Task) []model.Task {
	now := time.Now()

	var pending, rest []model.Task
	for _, task := range tasks {
		if task.Status == constants.StatusPending {
			task.OptimizationScore = optimizationScore(task, now)
			pending = append(pending, task)
		} else {
			rest = append(rest, task)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].OptimizationScore > pending[j].OptimizationScore
	})

	return append(pending, rest...)
}

// optimizationScore combines deadline urgency with priority weight. Days
// until due is floored, so anything overdue counts as at least one negative
// day and pushes urgency above the 5-day baseline.
func optimizationScore(task model.Task, now time.Time) int {
	daysUntilDue := int(math.Floor(task.DueDate.Sub(now).Hours() / 24))

	urgency := 5 - daysUntilDue
	if urgency < 1 {
		urgency = 1
	}

	return urgency + priorityScores[task.Priority]
}
