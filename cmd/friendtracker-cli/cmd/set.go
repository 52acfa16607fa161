package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"friendtracker/internal/application/commands"
)

var setCmd = &cobra.Command{
	Use:   "set <name> <field> [value]",
	Short: "Set one field on a contact",
	Long: `Set a header field. Unknown field names become custom fields on the
document. Omitting the value clears the field. Setting "name" renames
the contact and its file.

Examples:
  friendtracker-cli set "Ada Lovelace" email ada@example.com
  friendtracker-cli set "Ada Lovelace" "favorite tea" "earl grey"
  friendtracker-cli set "Ada Lovelace" phone`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		path, err := resolveContact(args[0])
		if err != nil {
			return err
		}

		value := ""
		if len(args) == 3 {
			value = args[2]
		}

		if args[1] == "name" {
			rename := commands.NewRenameContactCommand(GetStore(), path, value)
			result, err := rename.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		}

		set := commands.NewSetFieldCommand(GetStore(), path, args[1], value)
		result, err := set.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
