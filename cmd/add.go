package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "smart-todo.com/smart-todo/internal/errors"
	"smart-todo.com/smart-todo/pkg/constants"
)

var (
	addTitle       string
	addDescription string
	addPriority    string
	addDue         string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new task",
	Long:  "Creates a task, derives its schedule annotations and persists it",
	RunE: func(cmd *cobra.Command, args []string) error {
		priority := constants.Priority(addPriority)
		if !constants.ValidPriority(priority) {
			return apperrors.ErrInvalidPriority
		}

		dueDate, err := parseDueDate(addDue)
		if err != nil {
			return err
		}

		taskService, _ := newTaskService()

		task, err := taskService.CreateTask(cmd.Context(), addTitle, addDescription, priority, dueDate)
		if err != nil {
			return err
		}

		fmt.Printf("created task %s\n", task.ID)
		fmt.Printf("  title:     %s\n", task.Title)
		fmt.Printf("  priority:  %s\n", task.Priority)
		fmt.Printf("  due:       %s\n", task.DueDate.Format("2006-01-02 15:04"))
		fmt.Printf("  scheduled: %s\n", task.ScheduledTime.Format("2006-01-02 15:04"))
		fmt.Printf("  estimate:  %dm (+%dm prep, +%dm buffer)\n",
			task.EstimatedDuration, task.PreparationTime, task.BufferTime)
		if len(task.Tags) > 0 {
			fmt.Printf("  tags:      %v\n", task.Tags)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "task title (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "task description")
	addCmd.Flags().StringVar(&addPriority, "priority", "Medium", "priority: Low, Medium or High")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (RFC3339 or YYYY-MM-DD HH:MM)")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("due")

	rootCmd.AddCommand(addCmd)
}
