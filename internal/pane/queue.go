package pane

import (
	"sync"
	"time"
)

// Entry is a pending (text, level) pair waiting to be committed into the
// store by the next drain.
type Entry struct {
	Text  string
	Level Level
}

// IngestQueue buffers entries from any number of producer goroutines until
// the render goroutine drains them. Enqueue never blocks beyond a brief
// mutex hold; there is no capacity limit here because the per-frame drain
// cap already bounds how fast the store can grow.
type IngestQueue struct {
	mu      sync.Mutex
	pending []Entry

	stampTime bool
	stampDate bool
	now       func() time.Time
}

// NewIngestQueue returns a queue that optionally prefixes each line with the
// enqueue-time clock reading. Stamping at enqueue rather than at drain keeps
// displayed timestamps in call order even when rendering lags producers.
func NewIngestQueue(stampTime, stampDate bool) *IngestQueue {
	return &IngestQueue{
		stampTime: stampTime,
		stampDate: stampDate,
		now:       time.Now,
	}
}

// Enqueue adds a line for the next drain. Callable from any goroutine.
// Empty text is a silent no-op.
func (q *IngestQueue) Enqueue(text string, level Level) {
	if text == "" {
		return
	}
	if layout := q.stampLayout(); layout != "" {
		text = q.now().Format(layout) + " " + text
	}
	q.mu.Lock()
	q.pending = append(q.pending, Entry{Text: text, Level: level})
	q.mu.Unlock()
}

func (q *IngestQueue) stampLayout() string {
	switch {
	case q.stampDate && q.stampTime:
		return "2006-01-02 15:04:05"
	case q.stampDate:
		return "2006-01-02"
	case q.stampTime:
		return "15:04:05"
	default:
		return ""
	}
}

// DrainUpTo pops up to n entries in FIFO order. Only the render goroutine
// may call it. Entries from a single producer never reorder relative to
// that producer's own Enqueue calls.
func (q *IngestQueue) DrainUpTo(n int) []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n <= 0 || len(q.pending) == 0 {
		return nil
	}
	if n > len(q.pending) {
		n = len(q.pending)
	}

	batch := make([]Entry, n)
	copy(batch, q.pending[:n])
	q.pending = q.pending[n:]
	if len(q.pending) == 0 {
		q.pending = nil
	}
	return batch
}

// Len reports how many entries are waiting.
func (q *IngestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Clear discards all pending entries. Safe against concurrent Enqueue.
func (q *IngestQueue) Clear() {
	q.mu.Lock()
	q.pending = nil
	q.mu.Unlock()
}
