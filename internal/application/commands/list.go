package commands

import (
	"context"

	"friendtracker/internal/application"
	"friendtracker/internal/domain"
)

// ListContactsCommand produces the sorted, filtered roster list
type ListContactsCommand struct {
	aggregator *application.Aggregator

	Sort   domain.SortConfig
	Filter domain.Filter
}

// NewListContactsCommand creates a new ListContactsCommand
func NewListContactsCommand(agg *application.Aggregator, sort domain.SortConfig, filter domain.Filter) *ListContactsCommand {
	return &ListContactsCommand{
		aggregator: agg,
		Sort:       sort,
		Filter:     filter,
	}
}

// Execute aggregates, sorts, then filters. Filtering runs after sorting
// and preserves relative order.
func (c *ListContactsCommand) Execute(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := c.aggregator.Contacts()
	if err != nil {
		return nil, err
	}

	domain.SortContacts(contacts, c.Sort)
	return domain.FilterContacts(contacts, c.Filter), nil
}
