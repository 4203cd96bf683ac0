package model

import (
	"time"

	"smart-todo.com/smart-todo/pkg/constants"
)

// Task is the single record type of the system. The derived fields
// (estimated_duration, tags, scheduled_time, preparation_time, buffer_time,
// optimization_score, reminder_type) are filled in by the planner, scheduler
// and reminder agents; collaborators never construct them directly.
type Task struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Priority          constants.Priority   `json:"priority"`
	DueDate           time.Time            `json:"due_date"`
	CreatedDate       time.Time            `json:"created_date"`
	Status            constants.TaskStatus `json:"status"`
	CompletedDate     *time.Time           `json:"completed_date,omitempty"`
	EstimatedDuration int                  `json:"estimated_duration"` // minutes
	Tags              []string             `json:"tags"`
	ScheduledTime     time.Time            `json:"scheduled_time"`
	PreparationTime   int                  `json:"preparation_time"` // minutes
	BufferTime        int                  `json:"buffer_time"`      // minutes
	OptimizationScore int                  `json:"optimization_score,omitempty"`
	ReminderType      string               `json:"reminder_type,omitempty"`
}

// Clone returns an independent copy of the task. Mutating the copy never
// affects stored state.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	if t.CompletedDate != nil {
		d := *t.CompletedDate
		c.CompletedDate = &d
	}
	return c
}

func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}
