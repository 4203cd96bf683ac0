package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-todo.com/smart-todo/pkg/constants"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		taskService, _ := newTaskService()

		stats := taskService.Stats(cmd.Context())

		fmt.Printf("total:     %d\n", stats.TotalTasks)
		fmt.Printf("completed: %d\n", stats.CompletedTasks)
		fmt.Printf("pending:   %d (High %d / Medium %d / Low %d)\n",
			stats.PendingTasks,
			stats.PriorityCounts[constants.PriorityHigh],
			stats.PriorityCounts[constants.PriorityMedium],
			stats.PriorityCounts[constants.PriorityLow])
		fmt.Printf("file size: %d bytes\n", stats.FileSizeBytes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
