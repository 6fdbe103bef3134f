package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a CSV file",
	Long: `Import entries from a CSV file in the export format.

The first line is treated as a header and skipped. Rows with fewer
than four populated cells are skipped and counted.

Examples:
  worklog-cli import 工作日志_2026-08-31.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		result, err := commands.NewImportCSVCommand(GetStore(), string(data)).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
