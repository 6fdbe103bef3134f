package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"worklog/internal/adapters/sqlite"
	"worklog/internal/application"
	"worklog/internal/config"
)

var (
	dbPath   string
	pageSize int
	storage  *sqlite.Storage
	store    *application.Store
)

var rootCmd = &cobra.Command{
	Use:   "worklog-cli",
	Short: "CLI for keeping a personal work log",
	Long: `worklog-cli is a command-line interface for keeping a personal
work log: short timestamped entries grouped by day and numbered
within each day.

It provides commands to add, edit, move, delete, list, and export
entries, plus statistics and reusable entry templates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		storage, err = sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		store, err = application.OpenStore(storage)
		if err != nil {
			storage.Close()
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if storage != nil {
			storage.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg := config.LoadOrDefault()
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "path to the log database")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", cfg.PageSize, "records per page for listings")
}

// GetStore returns the initialized log store
func GetStore() *application.Store {
	return store
}
