package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <up|down> <id>",
	Short: "Move an entry within its day",
	Long: `Swap an entry with its neighbor inside the same day.

Only the two sequence numbers change; an entry already at the top or
bottom of its day stays put.

Examples:
  worklog-cli move up 3f2a9c
  worklog-cli move down 3f2a9c`,
	Args: cobra.ExactArgs(2),
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

		result, err := commands.NewMoveLogCommand(GetStore(), args[1], direction).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
