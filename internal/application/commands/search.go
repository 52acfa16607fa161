package commands

import (
	"context"
	"strings"

	"friendtracker/internal/application"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// SearchCommand queries the contact index for a keyword
type SearchCommand struct {
	index ports.ContactIndex

	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.ContactIndex, query string) *SearchCommand {
	return &SearchCommand{index: index, Query: query}
}

// Validate checks if the search is valid
func (c *SearchCommand) Validate() error {
	if strings.TrimSpace(c.Query) == "" {
		return &application.ValidationError{
			Field:   "query",
			Message: "query is required",
		}
	}
	return nil
}

// Execute syncs the index when stale and runs the search
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.SearchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.index.NeedsRebuild() {
		if _, err := c.index.Sync(); err != nil {
			return nil, err
		}
	}

	return c.index.Search(strings.TrimSpace(c.Query))
}
