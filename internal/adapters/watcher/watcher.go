package watcher

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches the event bursts editors produce on save
const DefaultDebounce = 500 * time.Millisecond

// FolderWatcher watches the contact folder and invokes onChange once per
// settled burst of filesystem events. Only markdown files outside hidden
// subfolders count as changes.
type FolderWatcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	folder   string
	debounce *Debouncer
	onChange func()
	doneCh   chan struct{}
	running  bool
}

// NewFolderWatcher creates a watcher for the given contact folder
func NewFolderWatcher(folder string, onChange func()) (*FolderWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FolderWatcher{
		fsw:      fsw,
		folder:   folder,
		debounce: NewDebouncer(DefaultDebounce),
		onChange: onChange,
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; events run in a goroutine.
func (w *FolderWatcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.fsw.Add(w.folder); err != nil {
		return err
	}
	slog.Debug("watching contacts folder", "component", "watcher", "folder", w.folder)

	go w.run()
	return nil
}

// Stop stops the watcher and discards any pending trigger
func (w *FolderWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	w.debounce.Cancel()
	w.fsw.Close()
	<-w.doneCh
}

func (w *FolderWatcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.debounce.Debounce(w.onChange)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", "component", "watcher", "error", err)
		}
	}
}

// relevant filters out events that cannot affect the roster: non-markdown
// files, hidden files, and pure chmod noise.
func (w *FolderWatcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), ".md")
}
