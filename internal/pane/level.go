package pane

// Level classifies a log line semantically. How a level maps to an actual
// presentation color is the surface's concern, injected via a ColorFunc.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelDebug
	LevelSuccess
)

// String returns the canonical upper-case name used in log text.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelDebug:
		return "DEBUG"
	case LevelSuccess:
		return "OK"
	default:
		return "INFO"
	}
}

// ColorFunc maps a semantic level to a presentation color token. It must be
// pure: the pane calls it at arbitrary times and caches nothing.
type ColorFunc func(Level) string
