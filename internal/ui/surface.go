package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rburan/logpane/internal/pane"
)

const measureCacheSize = 4096

type measureKey struct {
	text  string
	width int
}

// textMeasurer wraps log text at a cell width and caches the results. Full
// relayouts after a resize re-measure every stored line, and lines repeat
// heavily in real logs, so an LRU pays for itself quickly.
type textMeasurer struct {
	wrapped *lru.Cache[measureKey, string]
}

func newTextMeasurer() *textMeasurer {
	cache, err := lru.New[measureKey, string](measureCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &textMeasurer{wrapped: cache}
}

// Wrap returns text hard-wrapped at maxWidth cells. A non-positive width
// leaves the text as a single unconstrained line.
func (m *textMeasurer) Wrap(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}
	key := measureKey{text: text, width: maxWidth}
	if s, ok := m.wrapped.Get(key); ok {
		return s
	}
	s := ansi.Hardwrap(text, maxWidth, true)
	m.wrapped.Add(key, s)
	return s
}

// Height is the pane.Measurer: the number of rows text occupies when
// wrapped at maxWidth.
func (m *textMeasurer) Height(text string, maxWidth int) int {
	return strings.Count(m.Wrap(text, maxWidth), "\n") + 1
}

// termSurface is the pane.Surface backed by the terminal model. It owns the
// scroll position and keeps a copy of the last published draw commands for
// the view to render.
type termSurface struct {
	cmds   []pane.DrawCommand
	total  int
	yTop   int
	width  int
	height int
	follow bool
}

func newTermSurface(follow bool) *termSurface {
	return &termSurface{follow: follow}
}

// Present snapshots the published commands. The pane reuses the slice it
// passes in, so the surface keeps its own copy.
func (s *termSurface) Present(cmds []pane.DrawCommand) {
	s.cmds = append(s.cmds[:0], cmds...)
	s.total = 0
	if n := len(cmds); n > 0 {
		s.total = cmds[n-1].YOffset + cmds[n-1].Height
	}
	// Content may have shrunk (clear, eviction); keep the scroll in range.
	s.clamp()
}

// ScrollToEnd pins the viewport to the newest content.
func (s *termSurface) ScrollToEnd() {
	s.yTop = s.maxScroll()
}

// ViewportAtBottom reports whether the newest line is in view (or follow
// mode holds the pane there).
func (s *termSurface) ViewportAtBottom() bool {
	return s.follow || s.yTop >= s.maxScroll()
}

func (s *termSurface) ViewportWidth() int  { return s.width }
func (s *termSurface) ViewportHeight() int { return s.height }

func (s *termSurface) setSize(width, height int) {
	s.width = width
	s.height = height
	s.clamp()
}

func (s *termSurface) maxScroll() int {
	max := s.total - s.height
	if max < 0 {
		return 0
	}
	return max
}

func (s *termSurface) clamp() {
	if s.yTop < 0 {
		s.yTop = 0
	}
	if max := s.maxScroll(); s.yTop > max {
		s.yTop = max
	}
}

// scrollTo moves the viewport top to row y for user-driven scrolling and
// updates follow: scrolling away from the bottom releases the pin, scrolling
// back restores it.
func (s *termSurface) scrollTo(y int) {
	s.yTop = y
	s.clamp()
	s.follow = s.yTop >= s.maxScroll()
}

func (s *termSurface) scrollBy(delta int) {
	s.scrollTo(s.yTop + delta)
}
