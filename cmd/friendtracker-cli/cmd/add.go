package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"friendtracker/internal/application/commands"
)

var (
	addBirthday     string
	addEmail        string
	addPhone        string
	addRelationship string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new contact",
	Long: `Create a new contact document. Only the name is required; everything
else can be filled in later.

Examples:
  friendtracker-cli add "Ada Lovelace"
  friendtracker-cli add "Ada Lovelace" --birthday 1815-12-10 --relationship colleague`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		create := commands.NewCreateContactCommand(GetStore(), args[0])
		create.Birthday = addBirthday
		create.Email = addEmail
		create.Phone = addPhone
		create.Relationship = addRelationship

		result, err := create.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addBirthday, "birthday", "", "birthday as YYYY-MM-DD")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "phone number")
	addCmd.Flags().StringVar(&addRelationship, "relationship", "", "relationship (e.g. friend, family)")
}
