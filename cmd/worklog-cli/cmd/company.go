package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/application/commands"
)

var companyCmd = &cobra.Command{
	Use:   "company [name]",
	Short: "Show or set the company name used by text exports",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(GetStore().CompanyName())
			return nil
		}

		result, err := commands.NewSetCompanyCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)
}
