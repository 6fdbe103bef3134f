package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
	"worklog/internal/domain"
)

var (
	listKeyword   string
	listDateStart string
	listDateEnd   string
	listCategory  string
	listPage      int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List log entries",
	Long: `List log entries, newest day first, one page at a time.

Filters combine: an entry must match the keyword, the date range, and
the category at once.

Examples:
  worklog-cli list
  worklog-cli list --keyword 评审 --page 2
  worklog-cli list --from 2026-08-01 --to 2026-08-31 --category 日常工作`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := domain.Filter{
			Keyword:   listKeyword,
			DateStart: listDateStart,
			DateEnd:   listDateEnd,
			Category:  listCategory,
		}

		query := commands.NewListLogsQuery(GetStore(), filter, listPage, pageSize)
		result, err := query.Execute(context.Background())
		if err != nil {
			return err
		}

		if result.TotalMatched == 0 {
			if result.FilterActive {
				fmt.Println("No logs match the filter")
			} else {
				fmt.Println("No logs yet")
			}
			return nil
		}

		printRecords(result.Records)
		fmt.Printf("\nPage %d/%d, %d logs\n", result.Page, result.TotalPages, result.TotalMatched)
		return nil
	},
}

var dayCmd = &cobra.Command{
	Use:   "day <date>",
	Short: "List one date's entries in sequence order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := commands.NewDayLogsQuery(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Printf("No logs on %s\n", args[0])
			return nil
		}
		printRecords(records)
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().Format(domain.DateLayout)
		records, err := commands.NewDayLogsQuery(GetStore(), date).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Printf("No logs on %s\n", date)
			return nil
		}
		printRecords(records)
		return nil
	},
}

// printRecords prints display-ordered records grouped under date headers.
func printRecords(records []domain.LogRecord) {
	lastDate := ""
	for _, r := range records {
		if r.Date != lastDate {
			if lastDate != "" {
				fmt.Println()
			}
			fmt.Println(r.Date)
			lastDate = r.Date
		}
		line := fmt.Sprintf("  %d. %s  [%s]  %s", r.Seq(), r.Content, r.Category, r.ID)
		if len(r.Tags) > 0 {
			line += "  #" + strings.Join(r.Tags, " #")
		}
		fmt.Println(line)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(todayCmd)
	listCmd.Flags().StringVar(&listKeyword, "keyword", "", "substring match on content and tags")
	listCmd.Flags().StringVar(&listDateStart, "from", "", "earliest date (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&listDateEnd, "to", "", "latest date (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "exact category match")
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
}
