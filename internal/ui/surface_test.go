package ui

import (
	"testing"

	"github.com/rburan/logpane/internal/pane"
)

func TestTextMeasurer_Height(t *testing.T) {
	m := newTextMeasurer()

	tests := []struct {
		name  string
		text  string
		width int
		want  int
	}{
		{"fits on one row", "hello", 10, 1},
		{"wraps onto two rows", "hello world", 6, 2},
		{"exact width stays single", "abcdef", 6, 1},
		{"zero width is unconstrained", "hello world this is long", 0, 1},
		{"negative width is unconstrained", "hello world", -5, 1},
		{"empty text", "", 10, 1},
	}
	for _, tt := range tests {
		if got := m.Height(tt.text, tt.width); got != tt.want {
			t.Errorf("%s: Height(%q, %d) = %d, want %d", tt.name, tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTextMeasurer_RepeatedCallsAgree(t *testing.T) {
	m := newTextMeasurer()
	first := m.Wrap("a somewhat longer log line", 10)
	second := m.Wrap("a somewhat longer log line", 10)
	if first != second {
		t.Fatalf("cached wrap differs: %q vs %q", first, second)
	}
}

func mkCmds(heights ...int) []pane.DrawCommand {
	cmds := make([]pane.DrawCommand, len(heights))
	y := 0
	for i, h := range heights {
		cmds[i] = pane.DrawCommand{Text: "x", YOffset: y, Height: h}
		y += h
	}
	return cmds
}

func TestTermSurface_PresentCopiesCommands(t *testing.T) {
	s := newTermSurface(false)
	s.setSize(80, 5)

	cmds := mkCmds(1, 2, 1)
	s.Present(cmds)
	cmds[0].Text = "mutated"

	if s.cmds[0].Text != "x" {
		t.Fatalf("surface shares caller storage")
	}
	if s.total != 4 {
		t.Fatalf("total = %d, want 4", s.total)
	}
}

func TestTermSurface_ScrollClampsAndTracksBottom(t *testing.T) {
	s := newTermSurface(false)
	s.setSize(80, 4)
	s.Present(mkCmds(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)) // 10 rows, max scroll 6

	s.scrollBy(100)
	if s.yTop != 6 {
		t.Fatalf("yTop = %d, want 6", s.yTop)
	}
	if !s.ViewportAtBottom() {
		t.Fatalf("viewport should be at bottom")
	}

	s.scrollBy(-3)
	if s.yTop != 3 {
		t.Fatalf("yTop = %d, want 3", s.yTop)
	}
	if s.ViewportAtBottom() {
		t.Fatalf("viewport should have left the bottom")
	}

	s.scrollBy(-100)
	if s.yTop != 0 {
		t.Fatalf("yTop = %d, want 0", s.yTop)
	}
}

func TestTermSurface_FollowPinsBottom(t *testing.T) {
	s := newTermSurface(true)
	s.setSize(80, 4)
	s.Present(mkCmds(1, 1, 1, 1, 1, 1, 1, 1))

	if !s.ViewportAtBottom() {
		t.Fatalf("follow mode should report at-bottom")
	}
	s.ScrollToEnd()
	if s.yTop != 4 {
		t.Fatalf("yTop = %d, want 4", s.yTop)
	}
}

func TestTermSurface_ContentShrinkKeepsScrollInRange(t *testing.T) {
	s := newTermSurface(false)
	s.setSize(80, 3)
	s.Present(mkCmds(1, 1, 1, 1, 1, 1, 1, 1, 1, 1))
	s.ScrollToEnd()
	if s.yTop != 7 {
		t.Fatalf("yTop = %d, want 7", s.yTop)
	}

	s.Present(mkCmds(1, 1))
	if s.yTop != 0 {
		t.Fatalf("yTop after shrink = %d, want 0", s.yTop)
	}
}

func TestTermSurface_EmptyContent(t *testing.T) {
	s := newTermSurface(false)
	s.setSize(80, 5)
	s.Present(nil)
	if s.total != 0 || s.yTop != 0 {
		t.Fatalf("total,yTop = %d,%d, want 0,0", s.total, s.yTop)
	}
	if !s.ViewportAtBottom() {
		t.Fatalf("empty surface should count as at-bottom")
	}
}
