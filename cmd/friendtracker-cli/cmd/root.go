package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"friendtracker/internal/adapters/filesystem"
	"friendtracker/internal/config"
	"friendtracker/internal/ports"
)

var (
	contactsFolder string
	settings       config.Settings
	store          ports.ContactStore
)

var rootCmd = &cobra.Command{
	Use:   "friendtracker-cli",
	Short: "CLI for managing a folder of contact documents",
	Long: `friendtracker-cli manages a folder of markdown contact documents.

Each contact is one file: structured fields (birthday, email, phone,
relationship) in the frontmatter header, free-form notes below it, and a
dated interaction log. The files stay plain markdown; any editor works.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		settings, err = config.Load()
		if err != nil {
			return err
		}
		if contactsFolder != "" {
			settings.ContactsFolder = contactsFolder
		}
		store = filesystem.NewRepository(settings.ContactsFolder)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contactsFolder, "folder", "f", "", "path to the contacts folder")
}

// GetStore returns the initialized contact store
func GetStore() ports.ContactStore {
	return store
}
