package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"friendtracker/internal/application"
	"friendtracker/internal/ports"
)

// TrashContactResult contains the result of trashing a contact
type TrashContactResult struct {
	Message string
}

// TrashContactCommand moves a contact document to the trash folder
type TrashContactCommand struct {
	store ports.ContactStore

	Path string
}

// NewTrashContactCommand creates a new TrashContactCommand
func NewTrashContactCommand(store ports.ContactStore, path string) *TrashContactCommand {
	return &TrashContactCommand{
		store: store,
		Path:  path,
	}
}

// Validate checks if the trash operation is valid
func (c *TrashContactCommand) Validate() error {
	if c.Path == "" {
		return &application.ValidationError{
			Field:   "path",
			Message: "contact path is required",
		}
	}
	return nil
}

// Execute runs the trash contact command
func (c *TrashContactCommand) Execute(ctx context.Context) (*TrashContactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Trash(c.Path); err != nil {
		return nil, &application.WriteError{Op: "trash", Path: c.Path, Err: err}
	}

	name := strings.TrimSuffix(filepath.Base(c.Path), ".md")
	return &TrashContactResult{
		Message: fmt.Sprintf("Deleted contact: %s", name),
	}, nil
}
