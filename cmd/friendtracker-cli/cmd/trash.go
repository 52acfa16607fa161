package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"friendtracker/internal/application/commands"
)

var trashCmd = &cobra.Command{
	Use:   "trash <name>",
	Short: "Move a contact to the trash folder",
	Long: `Move a contact document into the collection's trash subfolder.
Nothing is deleted; restore by moving the file back.

Example:
  friendtracker-cli trash "Ada Lovelace"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		path, err := resolveContact(args[0])
		if err != nil {
			return err
		}

		trash := commands.NewTrashContactCommand(GetStore(), path)
		result, err := trash.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trashCmd)
}
