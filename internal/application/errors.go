package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrFolderNotFound signals that the configured contacts folder does
	// not exist. Non-fatal: the roster shows a notice and stays empty.
	ErrFolderNotFound = errors.New("contacts folder not found")

	ErrContactNotFound = errors.New("contact not found")
	ErrNoHeader        = errors.New("document has no contact header")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// WriteError names a failed store mutation so the UI can report which
// operation broke and why. The in-memory list is left untouched; the
// document is whatever state the store's write left it in.
type WriteError struct {
	Op   string // create, rename, trash, update
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
