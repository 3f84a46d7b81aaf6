package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rburan/logpane/internal/pane"
)

const defaultFeederCount = 3

// Appender is the sink feeders write to. *pane.Pane satisfies it.
type Appender interface {
	Append(text string, level pane.Level)
}

var feederLines = []struct {
	text  string
	level pane.Level
}{
	{"request handled in %dms", pane.LevelInfo},
	{"cache hit ratio at %d%%", pane.LevelDebug},
	{"retrying upstream call, attempt %d", pane.LevelWarning},
	{"connection reset by peer on stream %d", pane.LevelError},
	{"batch %d committed", pane.LevelSuccess},
	{"gc pause %dus", pane.LevelDebug},
	{"queue depth %d", pane.LevelInfo},
}

// StartFeeders launches n goroutines that append synthetic log traffic until
// the context is cancelled. It returns immediately.
func StartFeeders(ctx context.Context, sink Appender, n int) {
	if n <= 0 {
		n = defaultFeederCount
	}
	for i := 0; i < n; i++ {
		go feed(ctx, sink, i)
	}
}

func feed(ctx context.Context, sink Appender, id int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(20+rng.Intn(180)) * time.Millisecond):
		}
		// Occasional bursts exercise the per-frame drain cap.
		burst := 1
		if rng.Intn(10) == 0 {
			burst = 20 + rng.Intn(60)
		}
		for j := 0; j < burst; j++ {
			line := feederLines[rng.Intn(len(feederLines))]
			sink.Append(fmt.Sprintf("worker-%d "+line.text, id, rng.Intn(1000)), line.level)
		}
	}
}
