package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"friendtracker/internal/adapters/sqlite"
	"friendtracker/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search all contacts",
	Long: `Full-text search across contact fields, interaction entries, and
free-form notes.

Examples:
  friendtracker-cli search telescope
  friendtracker-cli search "earl grey"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index := sqlite.NewIndex(GetStore())
		if err := index.Open(settings.ContactsFolder); err != nil {
			return err
		}
		defer index.Close()

		search := commands.NewSearchCommand(index, args[0])
		results, err := search.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%-24s [%s]  %s\n", r.Name, r.Field, r.Snippet)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
