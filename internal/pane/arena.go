package pane

// drawArena reuses draw-command storage across frames. Commands live at
// their line position, so a steady stream of publishes rewrites the same
// slots in place; the backing array only grows, it is never reallocated
// while the line count stays under its high-water mark.
type drawArena struct {
	cmds []DrawCommand
}

// take returns a slice of exactly n commands backed by the arena. Contents
// are stale until the caller rewrites them.
func (a *drawArena) take(n int) []DrawCommand {
	if cap(a.cmds) < n {
		newCap := 2 * cap(a.cmds)
		if newCap < n {
			newCap = n
		}
		if newCap < 64 {
			newCap = 64
		}
		grown := make([]DrawCommand, n, newCap)
		copy(grown, a.cmds)
		a.cmds = grown
	}
	a.cmds = a.cmds[:n]
	return a.cmds
}
