// Package watcher observes the contact folder for external edits and
// surfaces them as debounced refresh triggers.
package watcher

import (
	"sync"
	"time"
)

// Debouncer collapses rapid event bursts into a single callback
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a new debouncer with the specified duration
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
	}
}

// Debounce executes the function after the debounce duration has elapsed
// without any new calls. Rapid successive calls reset the timer.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Cancel existing timer if any
	if d.timer != nil {
		d.timer.Stop()
	}

	// Create new timer
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel cancels any pending debounced call
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
