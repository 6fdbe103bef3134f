package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/adapters/clipboard"
	"worklog/internal/application/commands"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy one entry to the clipboard",
	Long: `Copy one entry to the clipboard as "{seq}.{content}".

Examples:
  worklog-cli copy 3f2a9c
  worklog-cli copy day 2026-08-31`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewCopyLogCommand(GetStore(), clipboard.New(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var copyDayCmd = &cobra.Command{
	Use:   "day <date>",
	Short: "Copy one date's entries to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewCopyDayCommand(GetStore(), clipboard.New(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.AddCommand(copyDayCmd)
}
