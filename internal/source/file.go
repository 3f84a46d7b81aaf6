package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/rburan/logpane/internal/pane"
)

// Emit receives one log line with its inferred level.
type Emit func(text string, level pane.Level)

// Follower tails a log file and emits appended lines. It watches the parent
// directory rather than the file itself so rotations (remove + recreate)
// keep working.
type Follower struct {
	watcher *fsnotify.Watcher
	path    string
	emit    Emit
	offset  int64
	partial []byte
	done    chan struct{}
}

// NewFollower starts tailing path. Existing content is emitted first so the
// pane shows history, then the follower emits lines as they are appended.
func NewFollower(path string, emit Emit) (*Follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("init watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch log dir: %w", err)
	}

	f := &Follower{
		watcher: w,
		path:    abs,
		emit:    emit,
		done:    make(chan struct{}),
	}
	f.readNew()

	go f.loop()
	return f, nil
}

// Close stops the follower.
func (f *Follower) Close() error {
	close(f.done)
	return f.watcher.Close()
}

func (f *Follower) loop() {
	for {
		select {
		case <-f.done:
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(f.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			f.readNew()
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors surface through the pane instead of crashing
			// the host.
			f.emit(fmt.Sprintf("log follow error: %v", err), pane.LevelWarning)
		}
	}
}

// readNew emits everything appended since the last read. A shrunken file
// means rotation or truncation: start over from the beginning.
func (f *Follower) readNew() {
	file, err := os.Open(f.path)
	if err != nil {
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return
	}
	if info.Size() < f.offset {
		f.offset = 0
		f.partial = nil
	}
	if info.Size() == f.offset {
		return
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return
	}
	data, err := io.ReadAll(file)
	if err != nil && len(data) == 0 {
		return
	}
	f.offset += int64(len(data))

	data = append(f.partial, data...)
	lines := bytes.Split(data, []byte{'\n'})
	// The final element is an unterminated tail; keep it for the next read.
	f.partial = append([]byte(nil), lines[len(lines)-1]...)
	for _, raw := range lines[:len(lines)-1] {
		line := strings.TrimRight(string(raw), "\r")
		if line == "" {
			continue
		}
		f.emit(line, GuessLevel(line))
	}
}

var levelRe = regexp.MustCompile(`\b(INFO|WARN|WARNING|ERROR|DEBUG|FATAL|TRACE)\b`)

// GuessLevel infers a semantic level from free-form log text, defaulting to
// Info when nothing matches.
func GuessLevel(line string) pane.Level {
	switch levelRe.FindString(line) {
	case "WARN", "WARNING":
		return pane.LevelWarning
	case "ERROR", "FATAL":
		return pane.LevelError
	case "DEBUG", "TRACE":
		return pane.LevelDebug
	default:
		return pane.LevelInfo
	}
}
