package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"friendtracker/internal/application/commands"
)

var noteCmd = &cobra.Command{
	Use:   "note <name> <text>",
	Short: "Append a note to a contact",
	Long: `Append a paragraph to the free-form notes below the contact's
header. The header is left untouched.

Example:
  friendtracker-cli note "Ada Lovelace" "prefers earl grey"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		path, err := resolveContact(args[0])
		if err != nil {
			return err
		}

		note := commands.NewAppendNoteCommand(GetStore(), path, args[1])
		result, err := note.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
