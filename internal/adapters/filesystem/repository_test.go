package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"friendtracker/internal/domain"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

func TestRepositoryList(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	writeDoc(t, dir, "Ada Lovelace.md", "---\nname: Ada Lovelace\n---\n")
	writeDoc(t, dir, "Broken.md", "---\nname: [unclosed\n---\n")
	writeDoc(t, dir, "notes.txt", "not a contact")
	writeDoc(t, dir, ".hidden.md", "---\nname: ghost\n---\n")
	if err := os.MkdirAll(filepath.Join(dir, TrashFolder), 0755); err != nil {
		t.Fatal(err)
	}
	writeDoc(t, filepath.Join(dir, TrashFolder), "Old.md", "---\nname: Old\n---\n")

	docs, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("List() returned %d documents, want 2", len(docs))
	}

	byName := map[string]bool{}
	for _, doc := range docs {
		byName[filepath.Base(doc.Path)] = doc.Record != nil
	}
	if parsed, ok := byName["Ada Lovelace.md"]; !ok || !parsed {
		t.Errorf("Ada Lovelace.md missing or unparsed: %v", byName)
	}
	if parsed, ok := byName["Broken.md"]; !ok || parsed {
		t.Errorf("Broken.md should be listed with nil record: %v", byName)
	}
}

func TestRepositoryListMissingFolder(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := repo.List()
	if err == nil {
		t.Fatal("List() expected error for missing folder")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestRepositoryCreate(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "contacts"))

	rec := &domain.Record{Name: "Ada Lovelace", Birthday: "1815-12-10"}
	path, err := repo.Create("Ada Lovelace", rec)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filepath.Base(path) != "Ada Lovelace.md" {
		t.Errorf("path = %q, want Ada Lovelace.md", path)
	}

	got, _, err := repo.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.Name != "Ada Lovelace" || got.Birthday != "1815-12-10" {
		t.Errorf("record = %+v", got)
	}
}

func TestRepositoryCreateDeduplicates(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	first, err := repo.Create("Ada", &domain.Record{Name: "Ada"})
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	second, err := repo.Create("Ada", &domain.Record{Name: "Ada"})
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	third, err := repo.Create("Ada", &domain.Record{Name: "Ada"})
	if err != nil {
		t.Fatalf("third Create() error = %v", err)
	}

	if filepath.Base(first) != "Ada.md" {
		t.Errorf("first = %q", first)
	}
	if filepath.Base(second) != "Ada (2).md" {
		t.Errorf("second = %q", second)
	}
	if filepath.Base(third) != "Ada (3).md" {
		t.Errorf("third = %q", third)
	}
}

func TestRepositoryCreateSanitizesName(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	path, err := repo.Create("a/b", &domain.Record{Name: "a/b"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("document escaped collection folder: %q", path)
	}
}

func TestRepositoryUpdateHeaderPreservesBody(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)
	body := "# Ada\n\nMet at the symposium.\n\n- likes math\n"
	path := writeDoc(t, dir, "Ada.md", "---\nname: Ada\n---\n"+body)

	rec, _, err := repo.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	rec.Email = "ada@example.com"
	if err := repo.UpdateHeader(path, rec); err != nil {
		t.Fatalf("UpdateHeader() error = %v", err)
	}

	got, gotBody, err := repo.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if gotBody != body {
		t.Errorf("body changed:\ngot  %q\nwant %q", gotBody, body)
	}
}

func TestRepositoryUpdateBodyPreservesHeader(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)
	path := writeDoc(t, dir, "Ada.md", "---\nname: Ada\nemail: ada@example.com\n---\nold body\n")

	if err := repo.UpdateBody(path, "new body\n"); err != nil {
		t.Fatalf("UpdateBody() error = %v", err)
	}

	rec, body, err := repo.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if rec.Name != "Ada" || rec.Email != "ada@example.com" {
		t.Errorf("header changed: %+v", rec)
	}
	if body != "new body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestRepositoryTrash(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)
	path := writeDoc(t, dir, "Ada.md", "---\nname: Ada\n---\n")

	if err := repo.Trash(path); err != nil {
		t.Fatalf("Trash() error = %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("original still present after Trash")
	}
	trashed := filepath.Join(dir, TrashFolder, "Ada.md")
	if _, err := os.Stat(trashed); err != nil {
		t.Errorf("trashed copy missing: %v", err)
	}
}

func TestRepositoryTrashDeduplicates(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	first := writeDoc(t, dir, "Ada.md", "---\nname: Ada\n---\nfirst\n")
	if err := repo.Trash(first); err != nil {
		t.Fatalf("first Trash() error = %v", err)
	}
	second := writeDoc(t, dir, "Ada.md", "---\nname: Ada\n---\nsecond\n")
	if err := repo.Trash(second); err != nil {
		t.Fatalf("second Trash() error = %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, TrashFolder))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("trash holds %d files, want 2", len(entries))
	}
	names := []string{entries[0].Name(), entries[1].Name()}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "Ada.md") || !strings.Contains(joined, "Ada (2).md") {
		t.Errorf("trash names = %v", names)
	}
}

func TestRepositoryRename(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)
	old := writeDoc(t, dir, "Ada.md", "---\nname: Ada Lovelace\n---\n")

	target := filepath.Join(dir, "Ada Lovelace.md")
	if err := repo.Rename(old, target); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}

	other := writeDoc(t, dir, "Grace.md", "---\nname: Grace\n---\n")
	if err := repo.Rename(other, target); err == nil {
		t.Error("Rename() onto existing file should fail")
	}
}
