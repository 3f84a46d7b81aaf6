package pane

import (
	"sort"
	"strings"
)

type selState int

const (
	selIdle selState = iota
	selDragging
)

// SelectionController maps pointer coordinates onto store indices and keeps
// the selected flags consistent. A press toggles the hit line (clearing any
// previous selection unless the multi-select modifier is held), a drag
// replaces the selection with the contiguous anchor..current range, and a
// release returns to idle leaving the selection in place.
type SelectionController struct {
	store   *Store
	state   selState
	anchor  int
	changed bool
}

// NewSelectionController binds a controller to the store whose lines it
// flags.
func NewSelectionController(store *Store) *SelectionController {
	return &SelectionController{store: store}
}

// IndexAt maps a content-space y coordinate to a line index. Coordinates
// above the first line or below the last clamp to the nearest valid index;
// ok is false only when the store is empty.
func (c *SelectionController) IndexAt(y int) (int, bool) {
	n := c.store.Len()
	if n == 0 {
		return 0, false
	}
	if y < 0 {
		return 0, true
	}
	last := c.store.At(n - 1)
	if y >= last.YOffset+last.Height {
		return n - 1, true
	}
	// First line whose bottom edge lies strictly beyond y.
	i := sort.Search(n, func(i int) bool {
		ln := c.store.At(i)
		return ln.YOffset+ln.Height > y
	})
	return i, true
}

// PointerDown starts an interaction at content-space y. Without the
// multi-select modifier the existing selection is cleared first; the hit
// line is then toggled and becomes the drag anchor.
func (c *SelectionController) PointerDown(y int, multi bool) {
	i, ok := c.IndexAt(y)
	if !ok {
		return
	}
	if !multi {
		c.clearFlags()
	}
	ln := c.store.At(i)
	ln.Selected = !ln.Selected
	c.anchor = i
	c.state = selDragging
	c.changed = true
}

// PointerMove extends a drag. The selection becomes exactly the contiguous
// range between the anchor and the current index; lines outside the range
// are deselected even if they were toggled on before the drag.
func (c *SelectionController) PointerMove(y int) {
	if c.state != selDragging {
		return
	}
	i, ok := c.IndexAt(y)
	if !ok {
		return
	}
	lo, hi := c.anchor, i
	if lo > hi {
		lo, hi = hi, lo
	}
	for j := 0; j < c.store.Len(); j++ {
		want := j >= lo && j <= hi
		ln := c.store.At(j)
		if ln.Selected != want {
			ln.Selected = want
			c.changed = true
		}
	}
}

// PointerUp ends the interaction. The selection persists until the next
// press, eviction or clear.
func (c *SelectionController) PointerUp() {
	c.state = selIdle
}

// Dragging reports whether a drag is in progress.
func (c *SelectionController) Dragging() bool { return c.state == selDragging }

// ReconcileEviction adjusts selection state after removed lines were
// trimmed from the head. Flags travel with the lines, so evicted selections
// vanish and survivors keep their flags at shifted indices; only the drag
// anchor needs re-aiming.
func (c *SelectionController) ReconcileEviction(removed int) {
	if removed <= 0 {
		return
	}
	c.anchor -= removed
	if c.anchor < 0 {
		c.anchor = 0
	}
	if c.store.Len() == 0 {
		c.state = selIdle
	}
	c.changed = true
}

// Reset drops the selection and returns to idle. Called on store clear.
func (c *SelectionController) Reset() {
	c.clearFlags()
	c.state = selIdle
	c.anchor = 0
}

// SelectedIndices returns the selected indices in ascending order.
func (c *SelectionController) SelectedIndices() []int {
	var idx []int
	for i := 0; i < c.store.Len(); i++ {
		if c.store.At(i).Selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// CopyText joins the selected lines' text in ascending index order,
// regardless of the order they were selected in.
func (c *SelectionController) CopyText() string {
	var b strings.Builder
	first := true
	for i := 0; i < c.store.Len(); i++ {
		ln := c.store.At(i)
		if !ln.Selected {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		b.WriteString(ln.Text)
		first = false
	}
	return b.String()
}

func (c *SelectionController) clearFlags() {
	for i := 0; i < c.store.Len(); i++ {
		ln := c.store.At(i)
		if ln.Selected {
			ln.Selected = false
			c.changed = true
		}
	}
}

// consumeChanged reports and resets whether the selection changed since the
// last tick published.
func (c *SelectionController) consumeChanged() bool {
	ch := c.changed
	c.changed = false
	return ch
}
