package commands

import (
	"context"
	"strings"

	"friendtracker/internal/application"
	"friendtracker/internal/ports"
)

// AppendNoteResult contains the result of appending a note
type AppendNoteResult struct {
	Message string
}

// AppendNoteCommand adds a paragraph to a contact's free-form notes, the
// body below the header. The header itself is left untouched.
type AppendNoteCommand struct {
	store ports.ContactStore

	Path string
	Text string
}

// NewAppendNoteCommand creates a new AppendNoteCommand
func NewAppendNoteCommand(store ports.ContactStore, path, text string) *AppendNoteCommand {
	return &AppendNoteCommand{store: store, Path: path, Text: text}
}

// Validate checks if the append is valid
func (c *AppendNoteCommand) Validate() error {
	if c.Path == "" {
		return &application.ValidationError{
			Field:   "path",
			Message: "contact path is required",
		}
	}
	if strings.TrimSpace(c.Text) == "" {
		return &application.ValidationError{
			Field:   "text",
			Message: "note text is required",
		}
	}
	return nil
}

// Execute appends the note as its own paragraph and persists the body.
func (c *AppendNoteCommand) Execute(ctx context.Context) (*AppendNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	_, body, err := c.store.Read(c.Path)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(c.Text)
	switch {
	case body == "":
		body = text + "\n"
	case strings.HasSuffix(body, "\n"):
		body += "\n" + text + "\n"
	default:
		body += "\n\n" + text + "\n"
	}

	if err := c.store.UpdateBody(c.Path, body); err != nil {
		return nil, &application.WriteError{Op: "update", Path: c.Path, Err: err}
	}

	return &AppendNoteResult{Message: "Added note"}, nil
}
