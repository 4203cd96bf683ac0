package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	config "smart-todo.com/smart-todo/internal/configs"
	"smart-todo.com/smart-todo/internal/services"
	"smart-todo.com/smart-todo/internal/storage"
)

// newTaskService builds the service stack every command runs against:
// env config, flat-file store, agents.
func newTaskService() (*services.TaskService, config.Config) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()
	store := storage.NewTaskStore(cfg.TasksFile)
	return services.NewTaskService(store, cfg.BackupDir), cfg
}

// parseDueDate accepts RFC3339 or a local "YYYY-MM-DD HH:MM" timestamp.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (want RFC3339 or YYYY-MM-DD HH:MM)", value)
}
