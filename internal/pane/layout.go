package pane

// Measurer reports the rendered height of text wrapped at maxWidth. A
// maxWidth of zero or less means "measure as a single unconstrained line".
type Measurer func(text string, maxWidth int) int

// Engine computes per-line heights and cumulative vertical offsets. It
// re-measures as little as possible: when only new lines were appended it
// extends the cached total, everything else falls back to a full pass.
type Engine struct {
	measure   Measurer
	width     int
	lastCount int
	total     int
	force     bool
}

// NewEngine wraps the given measurer. A nil measurer treats every line as
// one row high, which keeps the pipeline functional for tests and for
// surfaces without wrapping.
func NewEngine(measure Measurer) *Engine {
	return &Engine{measure: measure}
}

// SetWidth records a new wrap width. Any width change invalidates every
// cached height, so the next Recompute is forced to a full pass even when
// the line count is unchanged.
func (e *Engine) SetWidth(w int) {
	if w == e.width {
		return
	}
	e.width = w
	e.force = true
}

// Width returns the current wrap width.
func (e *Engine) Width() int { return e.width }

// ForceFull makes the next Recompute a full pass regardless of line count.
func (e *Engine) ForceFull() { e.force = true }

// Reset drops all cached layout state.
func (e *Engine) Reset() {
	e.lastCount = 0
	e.total = 0
	e.force = false
}

// TotalHeight reports the cumulative height of all laid-out lines.
func (e *Engine) TotalHeight() int { return e.total }

// Recompute brings heights and offsets up to date and reports whether any
// work was done. The decision policy: forced or shrunk count means a full
// pass; a grown count means measuring only the new tail; an unchanged count
// with no force flag is a no-op.
func (e *Engine) Recompute(s *Store) bool {
	count := s.Len()
	switch {
	case e.force || count < e.lastCount:
		e.layoutFrom(s, 0, 0)
	case count > e.lastCount:
		e.layoutFrom(s, e.lastCount, e.total)
	default:
		return false
	}
	e.lastCount = count
	e.force = false
	return true
}

// layoutFrom measures lines [start, len) and accumulates offsets starting
// at y.
func (e *Engine) layoutFrom(s *Store, start, y int) {
	for i := start; i < s.Len(); i++ {
		ln := s.At(i)
		ln.Height = e.measureLine(ln.Text)
		ln.YOffset = y
		y += ln.Height
	}
	e.total = y
}

func (e *Engine) measureLine(text string) int {
	if e.measure == nil {
		return 1
	}
	h := e.measure(text, e.width)
	if h < 1 {
		// A failed or nonsensical measurement must not break the offset
		// chain; fall back to a single row.
		return 1
	}
	return h
}
