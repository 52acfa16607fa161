package ports

import "friendtracker/internal/domain"

// Document pairs a contact file's stable path with its parsed header.
// Record is nil when the file has no parsable frontmatter; the store logs
// the cause and the aggregator skips the document.
type Document struct {
	Path   string
	Record *domain.Record
}

// ContactStore defines the document-collection contract: enumerate the
// contact documents under the configured folder and manipulate them
// without ever disturbing their free-form bodies.
type ContactStore interface {
	// Root returns the collection folder path.
	Root() string

	// List enumerates the contact documents. Enumeration order is not
	// guaranteed stable across calls. A missing collection folder is
	// reported as an error wrapping fs.ErrNotExist.
	List() ([]Document, error)

	// Read returns a document's parsed header and free-form body.
	Read(path string) (*domain.Record, string, error)

	// Create writes a new contact document named after the contact,
	// de-duplicating the filename when taken. Returns the created path.
	Create(name string, rec *domain.Record) (string, error)

	// UpdateHeader rewrites only the frontmatter block of an existing
	// document, preserving its body byte for byte.
	UpdateHeader(path string, rec *domain.Record) error

	// UpdateBody rewrites only the body, preserving the header.
	UpdateBody(path, body string) error

	// Trash moves a document into the collection's trash folder.
	Trash(path string) error

	// Rename moves a document to a new path within the collection.
	Rename(oldPath, newPath string) error
}
