package pane

import (
	"sync"
	"time"
)

// DefaultResizeDebounce is the quiet window applied to width changes.
const DefaultResizeDebounce = 200 * time.Millisecond

// ResizeDebouncer coalesces bursts of width-change signals into a single
// rebuild. Each Signal cancels and restarts the quiet window, so only the
// last width of a burst reaches the fire callback, and at most one rebuild
// is ever pending. The callback runs on a timer goroutine; it must be safe
// to call from there.
type ResizeDebouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	width  int
	fire   func(width int)
}

// NewResizeDebouncer builds a debouncer with the given quiet window.
// Non-positive windows fall back to the default.
func NewResizeDebouncer(window time.Duration, fire func(width int)) *ResizeDebouncer {
	if window <= 0 {
		window = DefaultResizeDebounce
	}
	return &ResizeDebouncer{window: window, fire: fire}
}

// Signal records a new width and restarts the quiet window.
func (d *ResizeDebouncer) Signal(width int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width = width
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.expire)
}

func (d *ResizeDebouncer) expire() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	w := d.width
	d.mu.Unlock()
	d.fire(w)
}

// Flush fires a pending rebuild immediately instead of waiting out the
// window. No-op when nothing is pending.
func (d *ResizeDebouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	w := d.width
	d.mu.Unlock()
	d.fire(w)
}

// Stop cancels any pending rebuild.
func (d *ResizeDebouncer) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
}

// Pending reports whether a rebuild is waiting for the window to elapse.
func (d *ResizeDebouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
