// Package tui provides the Bubble Tea integration for Mind-Bender.
// It handles the terminal UI loop, input mapping, and the roster panel.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindbender/internal/core"
	"github.com/vovakirdan/mindbender/internal/games/mindbender"
	"github.com/vovakirdan/mindbender/internal/registry"
)

// Layout constants
const (
	minWidthForRoster = 80 // Narrower terminals hide the roster panel
	rosterWidth       = 40 // Roster panel width including its border
)

// SeatLister is implemented by games that can describe their roster.
type SeatLister interface {
	Seats() []mindbender.Seat
}

var (
	rosterStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for playing a match.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model
	roster table.Model
	state  core.GameState
	log    *log.Logger

	width  int
	height int

	notice   string // Result of the last screenshot
	quitting bool
	back     bool // Player asked to return to the menu
}

// NewModel creates a model for game and starts a match.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		roster: newRosterTable(),
		log:    logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}

	// The game is a pointer, so resetting here survives the value receivers below
	m.game.Reset(cfg)
	m.state = m.game.State()
	m.refreshRoster()
	m.layout()
	return m
}

// newRosterTable builds the roster panel, styled like the rest of the UI.
func newRosterTable() table.Model {
	columns := []table.Column{
		{Title: "Player", Width: 10},
		{Title: "", Width: 2},
		{Title: "Boards", Width: 6},
		{Title: "Status", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(5), // Header plus up to four seats
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the model. Play is driven by key presses, so no command
// is needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.log.Warn("screenshot failed", "err", err)
			m.notice = "Screenshot failed: " + err.Error()
		} else {
			m.log.Info("screenshot saved", "path", path)
			m.notice = "Saved " + path
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	}

	m.notice = ""
	result := m.game.Step(core.FrameOf(action))
	m.state = result.State
	m.refreshRoster()
	return m, nil
}

// handleResize keeps the match and only resizes the screen buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// showRoster reports whether the terminal is wide enough for the roster panel.
func (m Model) showRoster() bool {
	_, ok := m.game.(SeatLister)
	return ok && m.width >= minWidthForRoster
}

// footerHeight is the number of lines below the board: notice plus help.
func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// layout sizes the screen buffer to whatever the roster and footer leave.
func (m *Model) layout() {
	w := m.width
	if m.showRoster() {
		w -= rosterWidth + 1
	}
	h := m.height - m.footerHeight()
	m.config.ScreenW = max(w, 1)
	m.config.ScreenH = max(h, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
}

// refreshRoster copies the game's seats into the roster table and selects
// the seat to move.
func (m *Model) refreshRoster() {
	lister, ok := m.game.(SeatLister)
	if !ok {
		return
	}

	seats := lister.Seats()
	rows := make([]table.Row, len(seats))
	cursor := 0
	for i, s := range seats {
		rows[i] = table.Row{
			s.Player.String(),
			string(s.Symbol),
			fmt.Sprintf("%d", s.Boards),
			string(s.Status),
		}
		if s.Status == mindbender.SeatToMove || s.Status == mindbender.SeatWinner {
			cursor = i
		}
	}
	m.roster.SetRows(rows)
	m.roster.SetCursor(cursor)
}

// saveScreenshot writes the current screen as plain text under the XDG data
// directory and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path, err := xdg.DataFile(filepath.Join("mindbender", "screenshots", name))
	if err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	board := RenderScreen(m.screen)
	if m.showRoster() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, " ", rosterStyle.Render(m.roster.View()))
	}

	var b strings.Builder
	b.WriteString(board)
	b.WriteString("\n")
	b.WriteString(noticeStyle.Render(m.notice))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// State returns the game state after the last key press.
func (m Model) State() core.GameState {
	return m.state
}

// WantsMenu reports whether the player left the match for the menu.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for game. It reports whether the player
// asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.WantsMenu(), nil
}
