package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"friendtracker/internal/application"
	"friendtracker/internal/application/commands"
	"friendtracker/internal/domain"
)

var (
	listSort         string
	listDesc         bool
	listRelationship string
	listSearch       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `List contacts with computed ages, upcoming birthdays, and the time
since the last logged interaction.

Examples:
  friendtracker-cli list
  friendtracker-cli list --sort daysUntilBirthday
  friendtracker-cli list --relationship friend --sort lastInteraction --desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		agg := application.NewAggregator(GetStore())

		sort := domain.SortConfig{
			Column:    domain.SortColumn(listSort),
			Direction: domain.Ascending,
		}
		if listDesc {
			sort.Direction = domain.Descending
		}
		filter := domain.Filter{
			Search:       listSearch,
			Relationship: strings.ToLower(listRelationship),
		}

		listCmd := commands.NewListContactsCommand(agg, sort, filter)
		contacts, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(contacts) == 0 {
			fmt.Println("No contacts")
			return nil
		}

		for _, c := range contacts {
			printContactRow(c)
		}
		return nil
	},
}

func printContactRow(c domain.Contact) {
	age := "-"
	if c.Age != nil {
		age = fmt.Sprintf("%d", *c.Age)
	}
	birthday := c.FormattedBirthday
	if birthday == "" {
		birthday = "-"
	}
	countdown := "-"
	if c.DaysUntilBirthday != nil {
		countdown = fmt.Sprintf("%dd", *c.DaysUntilBirthday)
	}
	rel := c.Relationship
	if rel == "" {
		rel = "-"
	}
	last := c.LastInteraction
	if last == "" {
		last = "-"
	}
	fmt.Printf("%-24s %4s  %-12s %6s  %-14s %s\n",
		c.Name, age, birthday, countdown, rel, last)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listSort, "sort", string(domain.SortByName),
		"sort column: name, age, birthday, daysUntilBirthday, relationship, lastInteraction")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().StringVar(&listRelationship, "relationship", "", "only contacts with this relationship")
	listCmd.Flags().StringVar(&listSearch, "search", "", "only contacts whose name contains this")
}
