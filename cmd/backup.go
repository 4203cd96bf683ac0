package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup [filename]",
	Short: "Back up the task list to a file",
	Long:  "Copies the current task list to a backup file; without a name a timestamped default is used",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		taskService, _ := newTaskService()

		path, err := taskService.Backup(cmd.Context(), name)
		if err != nil {
			return err
		}

		fmt.Printf("backup written to %s\n", path)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Restore the task list from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskService, _ := newTaskService()

		if err := taskService.Restore(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("tasks restored from backup")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
