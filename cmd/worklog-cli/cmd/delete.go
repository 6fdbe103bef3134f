package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete log entries by id",
	Long: `Delete one or more log entries by id.

Remaining entries of the affected days are renumbered. Unknown ids
are ignored.

Examples:
  worklog-cli delete 3f2a9c
  worklog-cli delete 3f2a9c 81d04e`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if len(args) == 1 {
			result, err := commands.NewDeleteLogCommand(GetStore(), args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		}

		result, err := commands.NewBatchDeleteCommand(GetStore(), args).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var deleteDayCmd = &cobra.Command{
	Use:   "day <date>",
	Short: "Delete all entries of a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteDateCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every log entry",
	Long:  "Delete every log entry. Templates and the company name are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewClearLogsCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.AddCommand(deleteDayCmd)
	rootCmd.AddCommand(clearCmd)
}
