package commands

import (
	"context"
	"fmt"

	"friendtracker/internal/application"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// SetFieldResult contains the result of a field update
type SetFieldResult struct {
	Message string
}

// SetFieldCommand updates a single header field on a contact document,
// merging into the existing header and leaving the body untouched.
type SetFieldCommand struct {
	store ports.ContactStore
	clock domain.Clock

	Path  string
	Field string
	Value string
}

// NewSetFieldCommand creates a new SetFieldCommand
func NewSetFieldCommand(store ports.ContactStore, path, field, value string) *SetFieldCommand {
	return &SetFieldCommand{
		store: store,
		clock: domain.RealClock{},
		Path:  path,
		Field: field,
		Value: value,
	}
}

// Validate checks if the field update is valid
func (c *SetFieldCommand) Validate() error {
	if c.Path == "" {
		return &application.ValidationError{
			Field:   "path",
			Message: "contact path is required",
		}
	}

	if c.Field == "" {
		return &application.ValidationError{
			Field:   "field",
			Message: "field name is required",
		}
	}

	if c.Field == "name" && c.Value == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "name cannot be cleared",
		}
	}

	if c.Field == "birthday" && c.Value != "" {
		if _, ok := domain.ParseBirthday(c.Value); !ok {
			return &application.ValidationError{
				Field:   "birthday",
				Message: fmt.Sprintf("expected YYYY-MM-DD, got: %s", c.Value),
			}
		}
	}

	return nil
}

// Execute runs the field update command
func (c *SetFieldCommand) Execute(ctx context.Context) (*SetFieldResult, error) {
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

	rec.SetField(c.Field, c.Value)
	rec.Updated = c.clock.Now().Format(domain.BirthdayLayout)
	rec.NormalizeInteractions()

	if err := c.store.UpdateHeader(c.Path, rec); err != nil {
		return nil, &application.WriteError{Op: "update", Path: c.Path, Err: err}
	}

	return &SetFieldResult{
		Message: fmt.Sprintf("Updated %s", c.Field),
	}, nil
}
