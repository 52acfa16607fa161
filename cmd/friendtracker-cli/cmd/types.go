package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"friendtracker/internal/config"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage the relationship vocabulary",
	Long: `List, add, or remove relationship types.

The vocabulary drives the relationship filter in the interactive view;
contact documents themselves may carry any value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range settings.RelationshipTypes {
			fmt.Println(t)
		}
		return nil
	},
}

var typesAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Add a relationship type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !settings.AddRelationshipType(args[0]) {
			return fmt.Errorf("relationship type %q is blank or already exists", args[0])
		}
		if err := config.Save(settings); err != nil {
			return err
		}
		fmt.Printf("Added relationship type: %s\n", args[0])
		return nil
	},
}

var typesRemoveCmd = &cobra.Command{
	Use:   "remove <type>",
	Short: "Remove a relationship type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !settings.RemoveRelationshipType(args[0]) {
			return fmt.Errorf("unknown relationship type %q", args[0])
		}
		if err := config.Save(settings); err != nil {
			return err
		}
		fmt.Printf("Removed relationship type: %s\n", args[0])
		return nil
	},
}

func init() {
	typesCmd.AddCommand(typesAddCmd)
	typesCmd.AddCommand(typesRemoveCmd)
	rootCmd.AddCommand(typesCmd)
}
