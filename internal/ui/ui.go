package ui

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rburan/logpane/internal/config"
	"github.com/rburan/logpane/internal/pane"
	"github.com/rburan/logpane/internal/prefs"
)

// Options configure the terminal UI.
type Options struct {
	Config    config.Config
	ThemeName string
	PrefsPath string
	Follow    bool
}

// frameMsg drives one pipeline tick per render frame.
type frameMsg time.Time

func frameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the Bubble Tea model hosting one log pane.
type Model struct {
	cfg       config.Config
	prefsPath string

	theme  Theme
	styles Styles
	keys   keyMap

	pane     *pane.Pane
	surface  *termSurface
	measurer *textMeasurer

	width  int
	height int

	searching   bool
	searchInput textinput.Model
	searchRe    *regexp.Regexp
	matches     []int
	matchIdx    int

	status string
}

// New builds the model and wires the pane pipeline to the terminal surface.
func New(opts Options) *Model {
	theme := GetTheme(opts.ThemeName)
	measurer := newTextMeasurer()
	surface := newTermSurface(opts.Follow)

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "regex"
	input.CharLimit = 128

	return &Model{
		cfg:         opts.Config,
		prefsPath:   opts.PrefsPath,
		theme:       theme,
		styles:      theme.Styles(),
		keys:        DefaultKeyMap(),
		pane:        pane.New(surface, measurer.Height, opts.Config.PaneOptions()),
		surface:     surface,
		measurer:    measurer,
		searchInput: input,
	}
}

// Pane exposes the underlying pipeline so sources can append lines.
func (m *Model) Pane() *pane.Pane { return m.pane }

func (m *Model) Init() tea.Cmd {
	return frameTick(m.cfg.FrameInterval)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.setSize(msg.Width, m.bodyHeight())
		m.pane.Resize(msg.Width)
		return m, nil

	case frameMsg:
		m.pane.Tick()
		return m, frameTick(m.cfg.FrameInterval)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) bodyHeight() int {
	h := m.height - 2
	if h < 0 {
		return 0
	}
	return h
}

// contentY maps a terminal row to content space: one header row above the
// body, plus the current scroll offset.
func (m *Model) contentY(row int) int {
	return row - 1 + m.surface.yTop
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.surface.scrollBy(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.surface.scrollBy(3)
		return m, nil
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			m.pane.PointerDown(m.contentY(msg.Y), msg.Ctrl)
		case tea.MouseActionMotion:
			m.pane.PointerMove(m.contentY(msg.Y))
		case tea.MouseActionRelease:
			m.pane.PointerUp()
		}
		return m, nil
	}
	if msg.Action == tea.MouseActionRelease {
		m.pane.PointerUp()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		m.pane.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		name := NextTheme(m.theme.Name)
		m.theme = GetTheme(name)
		m.styles = m.theme.Styles()
		m.status = fmt.Sprintf("theme: %s", name)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchRe = nil
		m.matches = nil
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.surface.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.surface.scrollBy(1)
	case key.Matches(msg, m.keys.Top):
		m.surface.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.surface.ScrollToEnd()
		m.surface.follow = true
	case key.Matches(msg, m.keys.PageUp):
		m.surface.scrollBy(-m.bodyHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.surface.scrollBy(m.bodyHeight())
	case key.Matches(msg, m.keys.HalfPageUp):
		m.surface.scrollBy(-m.bodyHeight() / 2)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.surface.scrollBy(m.bodyHeight() / 2)

	case key.Matches(msg, m.keys.ToggleFollow):
		m.surface.follow = !m.surface.follow
		if m.surface.follow {
			m.surface.ScrollToEnd()
		}

	case key.Matches(msg, m.keys.Copy):
		text := m.pane.CopySelection()
		if text == "" {
			m.status = "nothing selected"
			return m, nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.status = "copy failed"
			return m, nil
		}
		n := len(m.pane.Selection().SelectedIndices())
		m.status = fmt.Sprintf("copied %d line(s)", n)

	case key.Matches(msg, m.keys.ClearLines):
		m.pane.Clear()
		m.searchRe = nil
		m.matches = nil
		m.status = "cleared"

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.NextMatch):
		m.jumpMatch(1)
	case key.Matches(msg, m.keys.PrevMatch):
		m.jumpMatch(-1)
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		m.runSearch(m.searchInput.Value())
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// runSearch compiles the pattern and collects matching line indices from the
// committed store. An empty or invalid pattern clears the search.
func (m *Model) runSearch(pattern string) {
	m.searchRe = nil
	m.matches = nil
	if strings.TrimSpace(pattern) == "" {
		m.status = ""
		return
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		m.status = "invalid pattern"
		return
	}
	m.searchRe = re
	for i := 0; i < m.pane.Len(); i++ {
		if re.MatchString(m.pane.Line(i).Text) {
			m.matches = append(m.matches, i)
		}
	}
	if len(m.matches) == 0 {
		m.status = "no matches"
		return
	}
	m.matchIdx = 0
	m.status = fmt.Sprintf("%d match(es)", len(m.matches))
	m.scrollToMatch()
}

func (m *Model) jumpMatch(dir int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + dir + len(m.matches)) % len(m.matches)
	m.status = fmt.Sprintf("match %d/%d", m.matchIdx+1, len(m.matches))
	m.scrollToMatch()
}

func (m *Model) scrollToMatch() {
	i := m.matches[m.matchIdx]
	if i >= m.pane.Len() {
		return
	}
	m.surface.scrollTo(m.pane.Line(i).YOffset)
	m.surface.follow = false
}

func (m *Model) savePrefs() {
	// Preference persistence is best effort.
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:  m.theme.Name,
		Follow: m.surface.follow,
	})
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	follow := "follow off"
	if m.surface.follow {
		follow = "follow on"
	}
	left := m.styles.AccentText.Render("logpane")
	right := m.styles.MutedText.Render(fmt.Sprintf("%d lines · %s", m.pane.Len(), follow))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) footerView() string {
	if m.searching {
		return m.styles.Footer.Width(m.width).Render(m.searchInput.View())
	}
	if m.status != "" {
		return m.styles.Footer.Width(m.width).Render(m.status)
	}
	hint := "j/k scroll · space follow · y copy · / search · T theme · q quit"
	return m.styles.Footer.Width(m.width).Render(hint)
}

// bodyView renders the visible slice of the laid-out content. Draw commands
// are positioned in content rows; only rows [yTop, yTop+bodyHeight) make it
// to the screen.
func (m *Model) bodyView() string {
	bodyH := m.bodyHeight()
	cmds := m.surface.cmds
	rows := make([]string, 0, bodyH)

	yTop := m.surface.yTop
	yEnd := yTop + bodyH

	// First command whose bottom edge is below the viewport top.
	first := sort.Search(len(cmds), func(i int) bool {
		return cmds[i].YOffset+cmds[i].Height > yTop
	})

	for i := first; i < len(cmds) && cmds[i].YOffset < yEnd; i++ {
		cmd := cmds[i]
		style := m.lineStyle(cmd)
		wrapped := m.measurer.Wrap(cmd.Text, m.width)
		for j, row := range strings.Split(wrapped, "\n") {
			y := cmd.YOffset + j
			if y < yTop || y >= yEnd {
				continue
			}
			rows = append(rows, style.Render(row))
		}
	}
	for len(rows) < bodyH {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m *Model) lineStyle(cmd pane.DrawCommand) lipgloss.Style {
	if cmd.Selected {
		return m.styles.Selected
	}
	if m.searchRe != nil && m.searchRe.MatchString(cmd.Text) {
		return m.styles.AccentText
	}
	return m.styles.Level(cmd.Level)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
