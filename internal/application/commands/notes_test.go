package commands

import (
	"context"
	"testing"

	"friendtracker/internal/domain"
)

func TestAppendNote(t *testing.T) {
	store, path := storeWithContact(t, &domain.Record{Name: "Ada"})
	ctx := context.Background()

	if _, err := NewAppendNoteCommand(store, path, "met at the symposium").Execute(ctx); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	_, body, _ := store.Read(path)
	if body != "met at the symposium\n" {
		t.Errorf("body = %q", body)
	}

	// A second note becomes its own paragraph.
	if _, err := NewAppendNoteCommand(store, path, "prefers tea").Execute(ctx); err != nil {
		t.Fatalf("second append failed: %v", err)
	}
	_, body, _ = store.Read(path)
	want := "met at the symposium\n\nprefers tea\n"
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestAppendNote_Validate(t *testing.T) {
	cmd := NewAppendNoteCommand(newMemStore(), "c.md", "   ")
	if err := cmd.Validate(); err == nil {
		t.Error("blank note should not validate")
	}
	cmd = NewAppendNoteCommand(newMemStore(), "", "hi")
	if err := cmd.Validate(); err == nil {
		t.Error("missing path should not validate")
	}
}
