package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"friendtracker/internal/application/commands"
	"friendtracker/internal/domain"
)

var logDate string

var logCmd = &cobra.Command{
	Use:   "log <name> <text>",
	Short: "Log an interaction with a contact",
	Long: `Log a dated interaction. Entries are kept newest first in the
contact's header.

Examples:
  friendtracker-cli log "Ada Lovelace" "coffee at the symposium"
  friendtracker-cli log "Ada Lovelace" "long phone call" --date 2026-08-12`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		path, err := resolveContact(args[0])
		if err != nil {
			return err
		}

		date := logDate
		if date == "" {
			date = domain.RealClock{}.Now().Format(domain.BirthdayLayout)
		}

		add := commands.NewAddInteractionCommand(GetStore(), path, date, args[1])
		result, err := add.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVar(&logDate, "date", "", "date as YYYY-MM-DD (default today)")
}
