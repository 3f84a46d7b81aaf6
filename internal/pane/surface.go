package pane

// DrawCommand is one line's publish payload: everything a surface needs to
// draw the line without reaching back into the store.
type DrawCommand struct {
	Text     string
	Level    Level
	YOffset  int
	Height   int
	Selected bool
}

// Surface is the presentation layer the pane publishes to. Implementations
// draw the commands, own the scroll position, and report viewport geometry.
// The command slice passed to Present is backed by an arena the pane reuses
// across frames; surfaces must not retain it past the call.
type Surface interface {
	Present(cmds []DrawCommand)
	ScrollToEnd()
	ViewportAtBottom() bool
	ViewportWidth() int
	ViewportHeight() int
}
