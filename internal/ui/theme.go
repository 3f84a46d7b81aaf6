package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rburan/logpane/internal/pane"
)

// Theme defines colors for the pane chrome and the semantic log levels.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Text   string
	Muted  string
	Faint  string
	Accent string

	// Semantic level colors
	Info    string
	Warning string
	Danger  string
	Debug   string
	Success string
}

// LevelColor is the pure level-to-color mapping injected into the pane.
func (t Theme) LevelColor(l pane.Level) string {
	switch l {
	case pane.LevelWarning:
		return t.Warning
	case pane.LevelError:
		return t.Danger
	case pane.LevelDebug:
		return t.Debug
	case pane.LevelSuccess:
		return t.Success
	default:
		return t.Info
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	colorFunc := pane.ColorFunc(t.LevelColor)
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		levelColor: colorFunc,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Selected   lipgloss.Style
	Header     lipgloss.Style
	Footer     lipgloss.Style

	levelColor pane.ColorFunc
}

// Level returns the text style for a semantic log level.
func (s Styles) Level(l pane.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.levelColor(l)))
}

// Theme definitions

var themes = map[string]Theme{
	"midnight": midnightTheme(),
	"paper":    paperTheme(),
	"ember":    emberTheme(),
}

var themeOrder = []string{"midnight", "paper", "ember"}

// GetTheme returns a theme by name, falling back to midnight.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return midnightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func midnightTheme() Theme {
	return Theme{
		Name: "midnight",

		Background: "#131a24",
		Surface:    "#192330",

		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",

		Text:   "#cdcecf",
		Muted:  "#738091",
		Faint:  "#71839b",
		Accent: "#719cd6",

		Info:    "#cdcecf",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
		Debug:   "#738091",
		Success: "#81b29a",
	}
}

func paperTheme() Theme {
	return Theme{
		Name: "paper",

		Background: "#f2eede",
		Surface:    "#e7e1cd",

		SelectionBg:   "#c9c3ae",
		SelectionText: "#1f1f1f",

		Text:   "#1f1f1f",
		Muted:  "#6c6b5a",
		Faint:  "#8a8874",
		Accent: "#1e6fcc",

		Info:    "#1f1f1f",
		Warning: "#9a6a00",
		Danger:  "#b3303a",
		Debug:   "#6c6b5a",
		Success: "#2f7d4f",
	}
}

func emberTheme() Theme {
	return Theme{
		Name: "ember",

		Background: "#1c1412",
		Surface:    "#2a1e1a",

		SelectionBg:   "#4a332a",
		SelectionText: "#f1e3d3",

		Text:   "#f1e3d3",
		Muted:  "#9c8372",
		Faint:  "#7d6a5d",
		Accent: "#e8985a",

		Info:    "#f1e3d3",
		Warning: "#e3b341",
		Danger:  "#e25d4e",
		Debug:   "#9c8372",
		Success: "#a3c76d",
	}
}
