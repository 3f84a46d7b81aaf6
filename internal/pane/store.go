package pane

// Default store bounds, used when the caller passes zero values.
const (
	DefaultMaxEntries    = 1000
	DefaultRetainEntries = 100
)

// Line is one committed log line. Lines are owned by the Store and referred
// to by index only. Text and Level never change after commit; Height and
// YOffset are rewritten by the layout engine; Selected is flipped by the
// selection controller.
type Line struct {
	Text     string
	Level    Level
	Height   int
	YOffset  int
	Selected bool
}

type dirtyKind int

const (
	dirtyClean dirtyKind = iota
	dirtyAppended
	dirtyAll
)

// dirtyState records what changed in the store since the last tick consumed
// it. appended counts new tail lines and is only meaningful for
// dirtyAppended; any destructive mutation collapses the state to dirtyAll.
type dirtyState struct {
	kind     dirtyKind
	appended int
}

// Store holds the committed, insertion-ordered lines and owns eviction.
// The store tolerates growth up to maxEntries and then trims in one bulk
// operation down to the retain floor, so sustained overflow pays one large
// copy instead of a per-line removal on every frame.
type Store struct {
	lines  []Line
	max    int
	retain int
	dirty  dirtyState
}

// NewStore builds a store with the given ceiling and retain floor. Zero or
// negative values fall back to the defaults, and the floor is clamped
// strictly below the ceiling so eviction always removes at least one line.
func NewStore(maxEntries, retainEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if retainEntries <= 0 {
		retainEntries = DefaultRetainEntries
	}
	if retainEntries >= maxEntries {
		retainEntries = maxEntries - 1
	}
	return &Store{max: maxEntries, retain: retainEntries}
}

// Append adds a line at the tail.
func (s *Store) Append(text string, level Level) {
	s.lines = append(s.lines, Line{Text: text, Level: level})
	s.markAppended()
}

// EvictBatch trims the oldest lines in one bulk copy once the store exceeds
// its ceiling, leaving exactly the retain floor. It returns how many lines
// were removed (zero when under the ceiling); the caller must feed that
// count into selection reconciliation.
func (s *Store) EvictBatch() int {
	if len(s.lines) <= s.max {
		return 0
	}
	removed := len(s.lines) - s.retain
	s.lines = append([]Line(nil), s.lines[removed:]...)
	s.markAll()
	return removed
}

// Clear drops every line.
func (s *Store) Clear() {
	if len(s.lines) == 0 {
		return
	}
	s.lines = nil
	s.markAll()
}

// Len reports the committed line count.
func (s *Store) Len() int { return len(s.lines) }

// At returns the line at index i for in-place mutation by the layout engine
// or selection controller. The pointer is invalidated by the next Append,
// EvictBatch or Clear.
func (s *Store) At(i int) *Line { return &s.lines[i] }

// MaxEntries reports the eviction ceiling.
func (s *Store) MaxEntries() int { return s.max }

// RetainEntries reports the post-eviction floor.
func (s *Store) RetainEntries() int { return s.retain }

func (s *Store) markAppended() {
	switch s.dirty.kind {
	case dirtyClean:
		s.dirty = dirtyState{kind: dirtyAppended, appended: 1}
	case dirtyAppended:
		s.dirty.appended++
	}
}

func (s *Store) markAll() {
	s.dirty = dirtyState{kind: dirtyAll}
}

// consumeDirty hands the accumulated dirty state to the tick and resets it.
// Exactly one consumer per frame.
func (s *Store) consumeDirty() dirtyState {
	d := s.dirty
	s.dirty = dirtyState{}
	return d
}
