package commands

import (
	"context"
	"fmt"
	"strings"

	"friendtracker/internal/application"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// CreateContactResult contains the result of creating a contact
type CreateContactResult struct {
	Path    string
	Message string
}

// CreateContactCommand creates a new contact document in the collection
type CreateContactCommand struct {
	store ports.ContactStore
	clock domain.Clock

	Name         string
	Birthday     string
	Email        string
	Phone        string
	Relationship string
}

// NewCreateContactCommand creates a new CreateContactCommand
func NewCreateContactCommand(store ports.ContactStore, name string) *CreateContactCommand {
	return &CreateContactCommand{
		store: store,
		clock: domain.RealClock{},
		Name:  name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateContactCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "name is required",
		}
	}

	if c.Birthday != "" {
		if _, ok := domain.ParseBirthday(c.Birthday); !ok {
			return &application.ValidationError{
				Field:   "birthday",
				Message: fmt.Sprintf("expected YYYY-MM-DD, got: %s", c.Birthday),
			}
		}
	}

	return nil
}

// Execute runs the create contact command
func (c *CreateContactCommand) Execute(ctx context.Context) (*CreateContactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	today := c.clock.Now().Format(domain.BirthdayLayout)
	rec := &domain.Record{
		Name:         strings.TrimSpace(c.Name),
		Birthday:     c.Birthday,
		Email:        c.Email,
		Phone:        c.Phone,
		Relationship: strings.ToLower(c.Relationship),
		Created:      today,
		Updated:      today,
	}

	path, err := c.store.Create(rec.Name, rec)
	if err != nil {
		return nil, &application.WriteError{Op: "create", Path: rec.Name, Err: err}
	}

	return &CreateContactResult{
		Path:    path,
		Message: fmt.Sprintf("Created contact: %s", rec.Name),
	}, nil
}
