package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-todo.com/smart-todo/pkg/constants"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Re-rank pending tasks by urgency score",
	Long:  "Scores every pending task by deadline urgency and priority, persists the scores and prints the new order",
	RunE: func(cmd *cobra.Command, args []string) error {
		taskService, _ := newTaskService()

		tasks, err := taskService.OptimizeSchedule(cmd.Context())
		if err != nil {
			return err
		}

		for i, task := range tasks {
			if task.Status != constants.StatusPending {
				fmt.Printf("%2d. (done)     %s\n", i+1, task.Title)
				continue
			}
			fmt.Printf("%2d. [score %d] %s  due %s\n",
				i+1, task.OptimizationScore, task.Title, task.DueDate.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
