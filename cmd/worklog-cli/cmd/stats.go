package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
	"worklog/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Statistics over the log",
	Long: `Statistics over the log.

Examples:
  worklog-cli stats overview
  worklog-cli stats daily 2026-08-31
  worklog-cli stats monthly 2026
  worklog-cli stats yearly 2024 2026
  worklog-cli stats category month
  worklog-cli stats frequency month`,
}

var statsOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Counts for today, this month, this year, and in total",
	RunE: func(cmd *cobra.Command, args []string) error {
		overview, err := commands.NewOverviewQuery(GetStore(), time.Now()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Today: %d\n", overview.Today)
		fmt.Printf("Month: %d\n", overview.Month)
		fmt.Printf("Year:  %d\n", overview.Year)
		fmt.Printf("Total: %d\n", overview.Total)
		return nil
	},
}

var statsDailyCmd = &cobra.Command{
	Use:   "daily <date>",
	Short: "Category distribution of one date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewDailyStatsQuery(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d logs\n", report.Date, report.Total)
		for _, c := range report.Categories {
			fmt.Printf("  %s: %d (%d%%)\n", c.Category, c.Count, c.Percentage)
		}
		return nil
	},
}

var statsMonthlyCmd = &cobra.Command{
	Use:   "monthly <year>",
	Short: "Per-month counts of one year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		report, err := commands.NewMonthlyStatsQuery(GetStore(), year).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%d: %d logs\n", report.Year, report.Total)
		for i, count := range report.Months {
			fmt.Printf("  %02d: %d\n", i+1, count)
		}
		return nil
	},
}

var statsYearlyCmd = &cobra.Command{
	Use:   "yearly <start-year> <end-year>",
	Short: "Per-year counts over an inclusive range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		end, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[1])
		}
		report, err := commands.NewYearlyStatsQuery(GetStore(), start, end).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%d logs\n", report.Total)
		for _, y := range report.Years {
			fmt.Printf("  %d: %d\n", y.Year, y.Count)
		}
		return nil
	},
}

var statsCategoryCmd = &cobra.Command{
	Use:   "category <today|week|month|year>",
	Short: "Category distribution over a period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period := domain.Period(args[0])
		report, err := commands.NewCategoryStatsQuery(GetStore(), period, time.Now()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d logs\n", report.Period, report.Total)
		for _, c := range report.Categories {
			fmt.Printf("  %s: %d (%d%%)\n", c.Category, c.Count, c.Percentage)
		}
		return nil
	},
}

var statsFrequencyCmd = &cobra.Command{
	Use:   "frequency <today|week|month|year>",
	Short: "Most frequent entry contents over a period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period := domain.Period(args[0])
		report, err := commands.NewFrequencyStatsQuery(GetStore(), period, time.Now()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d logs, %d distinct\n", report.Period, report.Total, report.Distinct)
		for _, e := range report.Entries {
			fmt.Printf("  %2d. %s: %d (%d%%)\n", e.Rank, e.Content, e.Count, e.Percentage)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsOverviewCmd)
	statsCmd.AddCommand(statsDailyCmd)
	statsCmd.AddCommand(statsMonthlyCmd)
	statsCmd.AddCommand(statsYearlyCmd)
	statsCmd.AddCommand(statsCategoryCmd)
	statsCmd.AddCommand(statsFrequencyCmd)
}
