package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskService, _ := newTaskService()

		task, err := taskService.CompleteTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("completed '%s' at %s\n", task.Title, task.CompletedDate.Format("2006-01-02 15:04"))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskService, _ := newTaskService()

		if err := taskService.DeleteTask(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("task deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
}
