package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"friendtracker/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one contact in full",
	Long: `Show all of a contact's fields, the interaction log, and the
free-form notes.

Example:
  friendtracker-cli show "Ada Lovelace"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveContact(args[0])
		if err != nil {
			return err
		}
		rec, body, err := GetStore().Read(path)
		if err != nil {
			return err
		}

		fmt.Println(rec.Name)
		if detail := domain.DetailedAge(domain.RealClock{}.Now(), rec.Birthday); detail != "" {
			fmt.Println(detail)
		}
		fmt.Println()

		for _, field := range []string{"birthday", "email", "phone", "address", "relationship", "notes"} {
			if v := rec.Field(field); v != "" {
				fmt.Printf("%-14s %s\n", field+":", v)
			}
		}
		for k := range rec.Extras {
			fmt.Printf("%-14s %s\n", k+":", rec.Field(k))
		}

		if len(rec.Interactions) > 0 {
			fmt.Println("\ninteractions:")
			for _, in := range rec.Interactions {
				fmt.Printf("  %s  %s\n", in.Date, in.Text)
			}
		}

		if strings.TrimSpace(body) != "" {
			fmt.Println()
			fmt.Print(body)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
