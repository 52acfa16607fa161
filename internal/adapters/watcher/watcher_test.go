package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFolderWatcherTriggersOnMarkdownChange(t *testing.T) {
	dir := t.TempDir()

	var triggered int32
	w, err := NewFolderWatcher(dir, func() {
		atomic.AddInt32(&triggered, 1)
	})
	if err != nil {
		t.Fatalf("NewFolderWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "Ada.md")
	if err := os.WriteFile(path, []byte("---\nname: Ada\n---\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for atomic.LoadInt32(&triggered) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("watcher never fired for markdown write")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestFolderWatcherIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()

	var triggered int32
	w, err := NewFolderWatcher(dir, func() {
		atomic.AddInt32(&triggered, 1)
	})
	if err != nil {
		t.Fatalf("NewFolderWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(DefaultDebounce + 300*time.Millisecond)

	if got := atomic.LoadInt32(&triggered); got != 0 {
		t.Errorf("watcher fired %d times for irrelevant files, want 0", got)
	}
}

func TestFolderWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	w, err := NewFolderWatcher(dir, func() {})
	if err != nil {
		t.Fatalf("NewFolderWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	w.Stop()
	w.Stop()
}
