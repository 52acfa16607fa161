package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"friendtracker/internal/application"
	"friendtracker/internal/ports"
)

// RenameContactResult contains the result of renaming a contact
type RenameContactResult struct {
	NewPath string
	Message string
}

// RenameContactCommand changes a contact's name. The name field in the
// header and the document filename move together: renaming the document
// renames the contact.
type RenameContactCommand struct {
	store ports.ContactStore

	Path    string
	NewName string
}

// NewRenameContactCommand creates a new RenameContactCommand
func NewRenameContactCommand(store ports.ContactStore, path, newName string) *RenameContactCommand {
	return &RenameContactCommand{
		store:   store,
		Path:    path,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameContactCommand) Validate() error {
	if c.Path == "" {
		return &application.ValidationError{
			Field:   "path",
			Message: "contact path is required",
		}
	}

	if strings.TrimSpace(c.NewName) == "" {
		return &application.ValidationError{
			Field:   "newName",
			Message: "new name is required",
		}
	}

	return nil
}

// Execute runs the rename contact command
func (c *RenameContactCommand) Execute(ctx context.Context) (*RenameContactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(c.NewName)

	rec, _, err := c.store.Read(c.Path)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, application.ErrNoHeader
	}

	rec.Name = name
	if err := c.store.UpdateHeader(c.Path, rec); err != nil {
		return nil, &application.WriteError{Op: "update", Path: c.Path, Err: err}
	}

	// The filename mirrors the name, minus path separators so the
	// document cannot escape the collection folder.
	filename := strings.TrimSpace(strings.ReplaceAll(name, "/", "-"))
	newPath := filepath.Join(filepath.Dir(c.Path), filename+".md")
	if newPath != c.Path {
		if err := c.store.Rename(c.Path, newPath); err != nil {
			return nil, &application.WriteError{Op: "rename", Path: c.Path, Err: err}
		}
	}

	return &RenameContactResult{
		NewPath: newPath,
		Message: fmt.Sprintf("Updated contact name: %s", name),
	}, nil
}
