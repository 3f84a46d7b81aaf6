package pane

import (
	"sync"
	"time"
)

// DefaultDrainCap bounds how many pending entries one frame may commit.
const DefaultDrainCap = 100

// Options configure a Pane. Zero values fall back to the defaults; a retain
// floor at or above the ceiling is clamped below it.
type Options struct {
	MaxEntries     int
	RetainEntries  int
	ShowTimestamp  bool
	ShowDate       bool
	ResizeDebounce time.Duration
	DrainCap       int
}

// Pane ties the queue, store, layout engine and selection controller into
// the per-frame pipeline. Append, Clear and Resize may be called from any
// goroutine; everything else belongs to the single render goroutine that
// calls Tick.
type Pane struct {
	queue     *IngestQueue
	store     *Store
	engine    *Engine
	selection *SelectionController
	debounce  *ResizeDebouncer
	surface   Surface
	arena     drawArena
	drainCap  int

	mu           sync.Mutex
	pendingWidth int
	resizeReady  bool
	clearPending bool
	sized        bool
}

// New builds a pane publishing to surface and measuring with measure.
func New(surface Surface, measure Measurer, opts Options) *Pane {
	drainCap := opts.DrainCap
	if drainCap <= 0 {
		drainCap = DefaultDrainCap
	}
	p := &Pane{
		queue:    NewIngestQueue(opts.ShowTimestamp, opts.ShowDate),
		store:    NewStore(opts.MaxEntries, opts.RetainEntries),
		engine:   NewEngine(measure),
		surface:  surface,
		drainCap: drainCap,
	}
	p.selection = NewSelectionController(p.store)
	p.debounce = NewResizeDebouncer(opts.ResizeDebounce, p.notifyResize)
	return p
}

// Append queues a line for the next frame. Callable from any goroutine;
// empty text is a silent no-op.
func (p *Pane) Append(text string, level Level) {
	p.queue.Enqueue(text, level)
}

// Clear discards all pending and stored lines as observed by the next tick.
// No line enqueued before the Clear survives it.
func (p *Pane) Clear() {
	p.queue.Clear()
	p.mu.Lock()
	p.clearPending = true
	p.mu.Unlock()
}

// Resize reports a new wrap width. The first width is applied on the next
// tick so the pane can lay out immediately; later changes are debounced
// into one full rebuild per burst.
func (p *Pane) Resize(width int) {
	p.mu.Lock()
	first := !p.sized
	p.sized = true
	p.mu.Unlock()
	if first {
		p.notifyResize(width)
		return
	}
	p.debounce.Signal(width)
}

// notifyResize is the debouncer's fire callback. It runs on a timer
// goroutine, so it only records the width for the next tick to apply.
func (p *Pane) notifyResize(width int) {
	p.mu.Lock()
	p.pendingWidth = width
	p.resizeReady = true
	p.mu.Unlock()
}

// Close cancels the pending resize rebuild, if any.
func (p *Pane) Close() {
	p.debounce.Stop()
}

// Tick runs one frame of the pipeline: drain a capped batch into the store,
// evict, recompute layout, publish, and keep the viewport pinned to the
// bottom when it was there before the new lines arrived.
func (p *Pane) Tick() {
	wasAtBottom := p.surface.ViewportAtBottom()

	if p.takeClear() {
		p.store.Clear()
		p.selection.Reset()
		p.engine.Reset()
	}

	for _, e := range p.queue.DrainUpTo(p.drainCap) {
		p.store.Append(e.Text, e.Level)
	}

	removed := p.store.EvictBatch()
	if removed > 0 {
		p.selection.ReconcileEviction(removed)
	}

	if w, ok := p.takeResize(); ok {
		p.engine.SetWidth(w)
	}

	// The dirty tri-state is consumed exactly once per frame. Appends alone
	// leave the engine free to extend its cached total; anything
	// destructive forces the full pass.
	if p.store.consumeDirty().kind == dirtyAll {
		p.engine.ForceFull()
	}
	recomputed := p.engine.Recompute(p.store)

	if recomputed || p.selection.consumeChanged() {
		p.publish()
	}

	if recomputed && wasAtBottom {
		p.surface.ScrollToEnd()
	}
}

func (p *Pane) publish() {
	cmds := p.arena.take(p.store.Len())
	for i := range cmds {
		ln := p.store.At(i)
		cmds[i] = DrawCommand{
			Text:     ln.Text,
			Level:    ln.Level,
			YOffset:  ln.YOffset,
			Height:   ln.Height,
			Selected: ln.Selected,
		}
	}
	p.surface.Present(cmds)
}

func (p *Pane) takeClear() bool {
	p.mu.Lock()
	c := p.clearPending
	p.clearPending = false
	p.mu.Unlock()
	return c
}

func (p *Pane) takeResize() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.resizeReady {
		return 0, false
	}
	p.resizeReady = false
	return p.pendingWidth, true
}

// PointerDown forwards a press at content-space y to the selection
// controller. multi is the multi-select modifier state.
func (p *Pane) PointerDown(y int, multi bool) { p.selection.PointerDown(y, multi) }

// PointerMove forwards a drag motion at content-space y.
func (p *Pane) PointerMove(y int) { p.selection.PointerMove(y) }

// PointerUp ends the pointer interaction.
func (p *Pane) PointerUp() { p.selection.PointerUp() }

// CopySelection returns the selected lines joined by newlines, oldest
// first. Empty when nothing is selected.
func (p *Pane) CopySelection() string { return p.selection.CopyText() }

// Selection exposes the controller for surfaces that need index lookups.
func (p *Pane) Selection() *SelectionController { return p.selection }

// Len reports the committed line count.
func (p *Pane) Len() int { return p.store.Len() }

// Line returns a copy of the committed line at index i.
func (p *Pane) Line(i int) Line { return *p.store.At(i) }

// TotalHeight reports the laid-out height of all committed lines.
func (p *Pane) TotalHeight() int { return p.engine.TotalHeight() }
