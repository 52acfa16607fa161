package commands

import (
	"context"
	"fmt"

	"friendtracker/internal/application"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// InteractionResult contains the updated, normalized interaction log.
// Callers must work from this sequence before issuing another index-based
// mutation: the post-mutation re-sort invalidates prior indices.
type InteractionResult struct {
	Interactions []domain.Interaction
	Message      string
}

func validateInteractionDate(date string) error {
	if date == "" {
		return &application.ValidationError{
			Field:   "date",
			Message: "date is required",
		}
	}
	if _, ok := domain.ParseBirthday(date); !ok {
		return &application.ValidationError{
			Field:   "date",
			Message: fmt.Sprintf("expected YYYY-MM-DD, got: %s", date),
		}
	}
	return nil
}

func persistInteractions(store ports.ContactStore, path string, rec *domain.Record) error {
	if err := store.UpdateHeader(path, rec); err != nil {
		return &application.WriteError{Op: "update", Path: path, Err: err}
	}
	return nil
}

// AddInteractionCommand appends a dated log entry to a contact
type AddInteractionCommand struct {
	store ports.ContactStore

	Path string
	Date string
	Text string
}

// NewAddInteractionCommand creates a new AddInteractionCommand
func NewAddInteractionCommand(store ports.ContactStore, path, date, text string) *AddInteractionCommand {
	return &AddInteractionCommand{store: store, Path: path, Date: date, Text: text}
}

// Validate checks if the add operation is valid
func (c *AddInteractionCommand) Validate() error {
	if c.Path == "" {
		return &application.ValidationError{Field: "path", Message: "contact path is required"}
	}
	return validateInteractionDate(c.Date)
}

// Execute appends the entry, re-sorts the log newest-first, and persists.
func (c *AddInteractionCommand) Execute(ctx context.Context) (*InteractionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, _, err := c.store.Read(c.Path)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, application.ErrNoHeader
	}

	rec.Interactions = append(rec.Interactions, domain.Interaction{Date: c.Date, Text: c.Text})
	rec.NormalizeInteractions()

	if err := persistInteractions(c.store, c.Path, rec); err != nil {
		return nil, err
	}

	return &InteractionResult{
		Interactions: rec.Interactions,
		Message:      "Added interaction",
	}, nil
}

// EditInteractionCommand replaces the entry at a position in the current
// in-memory (already normalized) log
type EditInteractionCommand struct {
	store ports.ContactStore

	Path  string
	Index int
	Date  string
	Text  string
}

// NewEditInteractionCommand creates a new EditInteractionCommand
func NewEditInteractionCommand(store ports.ContactStore, path string, index int, date, text string) *EditInteractionCommand {
	return &EditInteractionCommand{store: store, Path: path, Index: index, Date: date, Text: text}
}

// Validate checks if the edit operation is valid
func (c *EditInteractionCommand) Validate() error {
	if c.Path == "" {
		return &application.ValidationError{Field: "path", Message: "contact path is required"}
	}
	if c.Index < 0 {
		return &application.ValidationError{Field: "index", Message: "index cannot be negative"}
	}
	return validateInteractionDate(c.Date)
}

// Execute replaces the entry, re-sorts the log newest-first, and persists.
func (c *EditInteractionCommand) Execute(ctx context.Context) (*InteractionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, _, err := c.store.Read(c.Path)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, application.ErrNoHeader
	}

	if c.Index >= len(rec.Interactions) {
		return nil, &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("no interaction at position %d", c.Index),
		}
	}

	rec.Interactions[c.Index] = domain.Interaction{Date: c.Date, Text: c.Text}
	rec.NormalizeInteractions()

	if err := persistInteractions(c.store, c.Path, rec); err != nil {
		return nil, err
	}

	return &InteractionResult{
		Interactions: rec.Interactions,
		Message:      "Updated interaction",
	}, nil
}

// DeleteInteractionCommand removes the entry at a position. Removal keeps
// relative order, so no re-sort is needed before persisting.
type DeleteInteractionCommand struct {
	store ports.ContactStore

	Path  string
	Index int
}

// NewDeleteInteractionCommand creates a new DeleteInteractionCommand
func NewDeleteInteractionCommand(store ports.ContactStore, path string, index int) *DeleteInteractionCommand {
	return &DeleteInteractionCommand{store: store, Path: path, Index: index}
}

// Validate checks if the delete operation is valid
func (c *DeleteInteractionCommand) Validate() error {
	if c.Path == "" {
		return &application.ValidationError{Field: "path", Message: "contact path is required"}
	}
	if c.Index < 0 {
		return &application.ValidationError{Field: "index", Message: "index cannot be negative"}
	}
	return nil
}

// Execute removes the entry and persists.
func (c *DeleteInteractionCommand) Execute(ctx context.Context) (*InteractionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, _, err := c.store.Read(c.Path)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, application.ErrNoHeader
	}

	if c.Index >= len(rec.Interactions) {
		return nil, &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("no interaction at position %d", c.Index),
		}
	}

	rec.Interactions = append(rec.Interactions[:c.Index], rec.Interactions[c.Index+1:]...)

	if err := persistInteractions(c.store, c.Path, rec); err != nil {
		return nil, err
	}

	return &InteractionResult{
		Interactions: rec.Interactions,
		Message:      "Deleted interaction",
	}, nil
}
