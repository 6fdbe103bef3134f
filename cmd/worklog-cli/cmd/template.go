package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
	"worklog/internal/domain"
)

var (
	templateCategory string
	templateTags     string
	templateUnique   bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage reusable entry templates",
	Long: `Manage reusable entry templates.

Templates are ordered snippets that can be pasted into new entries.

Examples:
  worklog-cli template list
  worklog-cli template add "处理工单" --category 运维
  worklog-cli template move up 81d04e`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates in catalogue order",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates := GetStore().CommonLogs()
		if len(templates) == 0 {
			fmt.Println("No templates yet")
			return nil
		}
		for i, t := range templates {
			line := fmt.Sprintf("%d. %s  [%s]  %s", i+1, t.Content, t.Category, t.ID)
			if len(t.Tags) > 0 {
				line += "  #" + strings.Join(t.Tags, " #")
			}
			fmt.Println(line)
		}
		return nil
	},
}

var templateAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addCmd := commands.NewAddTemplateCommand(GetStore(), args[0], templateCategory, domain.ParseTags(templateTags), templateUnique)
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update <id> <content>",
	Short: "Update a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		updateCmd := commands.NewUpdateTemplateCommand(GetStore(), args[0], args[1], templateCategory, domain.ParseTags(templateTags))
		result, err := updateCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteTemplateCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var templateMoveCmd = &cobra.Command{
	Use:   "move <up|down> <id>",
	Short: "Move a template within the catalogue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var direction commands.MoveDirection
		switch args[0] {
		case "up":
			direction = commands.MoveUp
		case "down":
			direction = commands.MoveDown
		default:
			return fmt.Errorf("invalid direction %q (expected up or down)", args[0])
		}

		result, err := commands.NewMoveTemplateCommand(GetStore(), args[1], direction).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateUpdateCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateMoveCmd)

	templateAddCmd.Flags().StringVar(&templateCategory, "category", "", "template category (default "+domain.DefaultCategory+")")
	templateAddCmd.Flags().StringVar(&templateTags, "tags", "", "comma-separated tags")
	templateAddCmd.Flags().BoolVar(&templateUnique, "unique", false, "fail when an identical template exists")
	templateUpdateCmd.Flags().StringVar(&templateCategory, "category", "", "new category")
	templateUpdateCmd.Flags().StringVar(&templateTags, "tags", "", "comma-separated tags")
}
