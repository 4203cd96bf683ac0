package dto

import (
	"time"

	"smart-todo.com/smart-todo/pkg/constants"
)

type CreateTaskRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    constants.Priority `json:"priority"`
	DueDate     time.Time          `json:"due_date"`
}

type RestoreRequest struct {
	Filename string `json:"filename"`
}

type BackupRequest struct {
	Filename string `json:"filename"`
}
