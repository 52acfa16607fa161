package filesystem

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// TrashFolder is the subfolder of the collection that deleted contacts
// are moved into.
const TrashFolder = ".trash"

// Repository implements ports.ContactStore over a folder of markdown
// documents, one per contact.
type Repository struct {
	folder string
}

// Ensure Repository implements ContactStore
var _ ports.ContactStore = (*Repository)(nil)

// NewRepository creates a new filesystem contact store
func NewRepository(folder string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(folder, "~") {
		home, _ := os.UserHomeDir()
		folder = filepath.Join(home, folder[1:])
	}
	return &Repository{folder: folder}
}

// Root returns the collection folder path
func (r *Repository) Root() string {
	return r.folder
}

// List enumerates the contact documents in the collection folder. A
// document whose header fails to parse is returned with a nil record so
// the aggregator can skip it; the cause is logged here. A missing folder
// error wraps fs.ErrNotExist.
func (r *Repository) List() ([]ports.Document, error) {
	entries, err := os.ReadDir(r.folder)
	if err != nil {
		return nil, fmt.Errorf("read contacts folder: %w", err)
	}

	var docs []ports.Document
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}

		path := filepath.Join(r.folder, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable contact document",
				"component", "store", "path", path, "error", err)
			docs = append(docs, ports.Document{Path: path})
			continue
		}

		rec, _, err := parseDocument(string(content))
		if err != nil {
			slog.Warn("skipping malformed contact header",
				"component", "store", "path", path, "error", err)
			docs = append(docs, ports.Document{Path: path})
			continue
		}
		docs = append(docs, ports.Document{Path: path, Record: rec})
	}

	return docs, nil
}

// Read returns a document's parsed header and body
func (r *Repository) Read(path string) (*domain.Record, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read contact: %w", err)
	}
	return parseDocument(string(content))
}

// Create writes a new contact document, de-duplicating the filename when
// taken. Returns the created path.
func (r *Repository) Create(name string, rec *domain.Record) (string, error) {
	if err := os.MkdirAll(r.folder, 0755); err != nil {
		return "", fmt.Errorf("create contacts folder: %w", err)
	}

	path, err := r.availablePath(name)
	if err != nil {
		return "", err
	}

	content, err := renderDocument(rec, "")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write contact: %w", err)
	}
	return path, nil
}

// availablePath finds an unused path for the contact name, appending
// " (2)", " (3)", ... when the plain name is taken.
func (r *Repository) availablePath(name string) (string, error) {
	base := sanitizeFilename(name)
	for attempt := 1; attempt <= 100; attempt++ {
		filename := base + ".md"
		if attempt > 1 {
			filename = fmt.Sprintf("%s (%d).md", base, attempt)
		}
		path := filepath.Join(r.folder, filename)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("no available filename for %q", name)
}

// sanitizeFilename strips path separators so a contact name cannot
// escape the collection folder.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, string(os.PathSeparator), "-")
	return strings.TrimSpace(name)
}

// UpdateHeader rewrites only the frontmatter block, preserving the body
// byte for byte.
func (r *Repository) UpdateHeader(path string, rec *domain.Record) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read contact: %w", err)
	}

	_, body, ok := splitHeader(string(content))
	if !ok {
		// No header yet: the whole document is body.
		body = string(content)
	}

	updated, err := renderDocument(rec, body)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("write contact: %w", err)
	}
	return nil
}

// UpdateBody rewrites only the body, keeping the raw header block
// untouched.
func (r *Repository) UpdateBody(path, body string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read contact: %w", err)
	}

	header, _, ok := splitHeader(string(content))
	updated := body
	if ok {
		updated = headerDelimiter + "\n" + header + headerDelimiter + "\n" + body
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("write contact: %w", err)
	}
	return nil
}

// Trash moves a document into the collection's trash folder
func (r *Repository) Trash(path string) error {
	trashDir := filepath.Join(r.folder, TrashFolder)
	if err := os.MkdirAll(trashDir, 0755); err != nil {
		return fmt.Errorf("create trash folder: %w", err)
	}

	target := filepath.Join(trashDir, filepath.Base(path))
	for attempt := 2; ; attempt++ {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			break
		}
		base := strings.TrimSuffix(filepath.Base(path), ".md")
		target = filepath.Join(trashDir, fmt.Sprintf("%s (%d).md", base, attempt))
	}

	if err := os.Rename(path, target); err != nil {
		return fmt.Errorf("trash contact: %w", err)
	}
	return nil
}

// Rename moves a document to a new path within the collection
func (r *Repository) Rename(oldPath, newPath string) error {
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("rename contact: %s already exists", filepath.Base(newPath))
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename contact: %w", err)
	}
	return nil
}
