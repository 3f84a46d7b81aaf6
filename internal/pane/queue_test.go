package pane

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestEnqueue_EmptyTextIsNoOp(t *testing.T) {
	q := NewIngestQueue(false, false)
	q.Enqueue("", LevelInfo)
	if got := q.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

func TestDrainUpTo_FIFOAndCap(t *testing.T) {
	q := NewIngestQueue(false, false)
	for i := 0; i < 5; i++ {
		q.Enqueue(fmt.Sprintf("line-%d", i), LevelInfo)
	}

	batch := q.DrainUpTo(3)
	if len(batch) != 3 {
		t.Fatalf("len(batch) = %d, want 3", len(batch))
	}
	for i, e := range batch {
		want := fmt.Sprintf("line-%d", i)
		if e.Text != want {
			t.Fatalf("batch[%d].Text = %q, want %q", i, e.Text, want)
		}
	}

	rest := q.DrainUpTo(100)
	if len(rest) != 2 {
		t.Fatalf("len(rest) = %d, want 2", len(rest))
	}
	if rest[0].Text != "line-3" || rest[1].Text != "line-4" {
		t.Fatalf("rest = %q,%q, want line-3,line-4", rest[0].Text, rest[1].Text)
	}
}

func TestDrainUpTo_NonPositive(t *testing.T) {
	q := NewIngestQueue(false, false)
	q.Enqueue("x", LevelInfo)
	if got := q.DrainUpTo(0); got != nil {
		t.Fatalf("DrainUpTo(0) = %v, want nil", got)
	}
	if got := q.DrainUpTo(-1); got != nil {
		t.Fatalf("DrainUpTo(-1) = %v, want nil", got)
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
}

func TestEnqueue_TimestampPrefix(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)

	tests := []struct {
		name      string
		stampTime bool
		stampDate bool
		want      string
	}{
		{"none", false, false, "boot"},
		{"time only", true, false, "09:26:53 boot"},
		{"date only", false, true, "2025-03-14 boot"},
		{"date and time", true, true, "2025-03-14 09:26:53 boot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewIngestQueue(tt.stampTime, tt.stampDate)
			q.now = func() time.Time { return fixed }
			q.Enqueue("boot", LevelInfo)
			batch := q.DrainUpTo(1)
			if len(batch) != 1 {
				t.Fatalf("len(batch) = %d, want 1", len(batch))
			}
			if batch[0].Text != tt.want {
				t.Fatalf("Text = %q, want %q", batch[0].Text, tt.want)
			}
		})
	}
}

func TestClear_DiscardsPending(t *testing.T) {
	q := NewIngestQueue(false, false)
	q.Enqueue("a", LevelInfo)
	q.Enqueue("b", LevelWarning)
	q.Clear()
	if got := q.Len(); got != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", got)
	}
}

func TestEnqueue_ConcurrentProducersKeepOwnOrder(t *testing.T) {
	const producers = 3
	const perProducer = 100

	q := NewIngestQueue(false, false)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(fmt.Sprintf("p%d-%03d", p, i), LevelInfo)
			}
		}(p)
	}
	wg.Wait()

	var all []Entry
	for {
		batch := q.DrainUpTo(64)
		if batch == nil {
			break
		}
		all = append(all, batch...)
	}
	if len(all) != producers*perProducer {
		t.Fatalf("drained %d entries, want %d", len(all), producers*perProducer)
	}

	next := make([]int, producers)
	for _, e := range all {
		var p, i int
		if _, err := fmt.Sscanf(e.Text, "p%d-%03d", &p, &i); err != nil {
			t.Fatalf("unparseable entry %q: %v", e.Text, err)
		}
		if i != next[p] {
			t.Fatalf("producer %d: got sequence %d, want %d", p, i, next[p])
		}
		next[p]++
	}
}
