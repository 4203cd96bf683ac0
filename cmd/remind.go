package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Check which tasks need attention",
	RunE: func(cmd *cobra.Command, args []string) error {
		taskService, _ := newTaskService()

		notices, err := taskService.CheckReminders(cmd.Context())
		if err != nil {
			return err
		}

		if len(notices) == 0 {
			fmt.Println("no urgent reminders")
			return nil
		}

		for _, notice := range notices {
			fmt.Println(notice.Message)
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today's task summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		taskService, _ := newTaskService()

		summary := taskService.DailySummary(cmd.Context())

		fmt.Printf("tasks due today: %d (%d high priority)\n", summary.TotalToday, summary.HighPriority)
		for _, task := range summary.Tasks {
			printTaskLine(task)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(summaryCmd)
}
