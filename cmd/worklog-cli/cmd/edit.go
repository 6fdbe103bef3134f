package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/application"
	"worklog/internal/application/commands"
	"worklog/internal/domain"
)

var (
	editDate     string
	editTime     string
	editCategory string
	editTags     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <content>",
	Short: "Update a log entry",
	Long: `Update a log entry's content and fields.

Content containing split delimiters keeps the first part on the entry
and records the remaining parts as new entries of the same date.

Examples:
  worklog-cli edit 3f2a9c "修复登录超时"
  worklog-cli edit 3f2a9c "写周报" --category 汇报`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, ok := GetStore().RecordByID(args[0])
		if !ok {
			return fmt.Errorf("no log with id %s", args[0])
		}

		input := application.AddInput{
			Date:     editDate,
			Time:     editTime,
			Content:  args[1],
			Category: editCategory,
			Tags:     existing.Tags,
		}
		if input.Date == "" {
			input.Date = existing.Date
		}
		if input.Time == "" {
			input.Time = existing.Time
		}
		if input.Category == "" {
			input.Category = existing.Category
		}
		if editTags != "" {
			input.Tags = domain.ParseTags(editTags)
		}

		result, err := commands.NewEditLogCommand(GetStore(), args[0], input).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editDate, "date", "", "new date (YYYY-MM-DD, default unchanged)")
	editCmd.Flags().StringVar(&editTime, "time", "", "new time (HH:MM, default unchanged)")
	editCmd.Flags().StringVar(&editCategory, "category", "", "new category (default unchanged)")
	editCmd.Flags().StringVar(&editTags, "tags", "", "comma-separated tags (default unchanged)")
}
