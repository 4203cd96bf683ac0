package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	apperrors "smart-todo.com/smart-todo/internal/errors"
	"smart-todo.com/smart-todo/internal/services"
	"smart-todo.com/smart-todo/pkg/constants"
	model "smart-todo.com/smart-todo/pkg/models"
)

var (
	listStatus   string
	listPriority string
	listSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := services.ListFilter{
			Status:   constants.TaskStatus(listStatus),
			Priority: constants.Priority(listPriority),
			SortBy:   listSort,
		}
		if filter.Status != "" && !constants.ValidStatus(filter.Status) {
			return &apperrors.Exception{Message: "status must be pending or completed", StatusCode: http.StatusBadRequest}
		}
		if filter.Priority != "" && !constants.ValidPriority(filter.Priority) {
			return apperrors.ErrInvalidPriority
		}

		taskService, _ := newTaskService()

		tasks, err := taskService.ListTasks(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("no tasks")
			return nil
		}

		for _, task := range tasks {
			printTaskLine(task)
		}
		return nil
	},
}

func printTaskLine(task model.Task) {
	marker := " "
	if task.Status == constants.StatusCompleted {
		marker = "x"
	}
	fmt.Printf("[%s] %-8s %s  due %s  %s\n",
		marker, task.Priority, task.ID, task.DueDate.Format("2006-01-02 15:04"), task.Title)
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status: pending or completed")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "filter by priority: Low, Medium or High")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort by: due_date, priority or created")

	rootCmd.AddCommand(listCmd)
}
