package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the log to a file",
	Long: `Export the whole log to a file in the output directory.

Examples:
  worklog-cli export csv
  worklog-cli export summary -o ~/reports`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export all entries as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewExportCSVCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}
		return writeExport(result)
	},
}

var exportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Export all entries as a plain-text summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewExportSummaryCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}
		return writeExport(result)
	},
}

func writeExport(result *commands.ExportResult) error {
	path := filepath.Join(exportDir, result.Filename)
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportSummaryCmd)
	exportCmd.PersistentFlags().StringVarP(&exportDir, "output", "o", ".", "output directory")
}
