package agents

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"smart-todo.com/smart-todo/pkg/constants"
	model "smart-todo.com/smart-todo/pkg/models"
)

// tagVocabulary is the fixed set of recognized content tags. Extraction
// results keep this order.
var tagVocabulary = []string{"meeting", "call", "email", "report", "review", "urgent", "important"}

// Planner synthesizes new task records from raw user input, deriving the
// duration estimate and content tags. It does no validation; callers supply
// already-validated fields.
type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

func (p *Planner) CreateTask(title, description string, priority constants.Priority, dueDate time.Time) model.Task {
	return model.Task{
		ID:                uuid.NewString(),
		Title:             title,
		Description:       description,
		Priority:          priority,
		DueDate:           dueDate,
		CreatedDate:       time.Now(),
		Status:            constants.StatusPending,
		EstimatedDuration: estimateDuration(title, description),
		Tags:              extractTags(title, description),
	}
}

// estimateDuration maps combined content length to a coarse minute estimate:
// under 50 characters is a quick task, under 100 an hour, anything longer
// two hours.
func estimateDuration(title, description string) int {
	contentLength := utf8.RuneCountInString(title) + utf8.RuneCountInString(description)
	switch {
	case contentLength < 50:
		return 30
	case contentLength < 100:
		return 60
	default:
		return 120
	}
}

// extractTags returns the vocabulary tags found as case-insensitive
// substrings of the task content, in vocabulary order.
func extractTags(title, description string) []string {
	content := strings.ToLower(title + " " + description)

	var found []string
	for _, tag := range tagVocabulary {
		if strings.Contains(content, tag) {
			found = append(found, tag)
		}
	}
	return found
}
