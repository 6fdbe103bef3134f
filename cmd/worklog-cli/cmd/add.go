package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/application"
	"worklog/internal/application/commands"
	"worklog/internal/domain"
)

var (
	addDate     string
	addTime     string
	addCategory string
	addTags     string
	addRaw      bool
)

var addCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Record a new log entry",
	Long: `Record a new log entry for a date.

Content containing Chinese or ASCII semicolons, or newlines, is split
into one entry per part. Leading enumeration prefixes like "1." and
trailing punctuation are stripped unless --raw is given.

Examples:
  worklog-cli add "完成需求评审"
  worklog-cli add "1.写周报；2.代码评审" --date 2026-08-31
  worklog-cli add "部署上线" --category 运维 --tags "发布, 生产"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if addDate == "" {
			addDate = now.Format(domain.DateLayout)
		}
		if addTime == "" {
			addTime = now.Format(domain.TimeLayout)
		}

		input := application.AddInput{
			Date:     addDate,
			Time:     addTime,
			Content:  args[0],
			Category: addCategory,
			Tags:     domain.ParseTags(addTags),
		}

		result, err := commands.NewAddLogCommand(GetStore(), input, !addRaw).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addTime, "time", "", "entry time (HH:MM, default now)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "entry category (default "+domain.DefaultCategory+")")
	addCmd.Flags().StringVar(&addTags, "tags", "", "comma-separated tags")
	addCmd.Flags().BoolVar(&addRaw, "raw", false, "keep enumeration prefixes and trailing punctuation")
}
