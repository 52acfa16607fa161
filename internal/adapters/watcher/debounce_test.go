package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerSingleCall(t *testing.T) {
	var called int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() {
		atomic.AddInt32(&called, 1)
	})

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&called); got != 1 {
		t.Errorf("called %d times, want 1", got)
	}
}

func TestDebouncerCollapsesRapidCalls(t *testing.T) {
	var called int32
	d := NewDebouncer(50 * time.Millisecond)

	for i := 0; i < 10; i++ {
		d.Debounce(func() {
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&called); got != 1 {
		t.Errorf("burst produced %d calls, want 1", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var called int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() {
		atomic.AddInt32(&called, 1)
	})
	d.Cancel()

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&called); got != 0 {
		t.Errorf("called %d times after cancel, want 0", got)
	}
}
