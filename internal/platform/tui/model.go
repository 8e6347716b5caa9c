package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/scene"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// ModelOptions configures a Model. Zero values pick defaults.
type ModelOptions struct {
	Game            *flappy.Game
	Store           *storage.Store
	Logger          *log.Logger
	Renderer        *lipgloss.Renderer
	Runtime         core.RuntimeConfig
	Player          string
	SessionID       string
	Mouse           bool
	LeaderboardSize int
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	game         *flappy.Game
	screen       *core.Screen
	tracker      *session.Tracker
	logger       *log.Logger
	palette      palette
	keys         KeyMap
	mapper       *KeyMapper
	help         help.Model
	board        Leaderboard
	config       core.RuntimeConfig
	inputFrame   core.InputFrame
	gameState    core.GameState
	showBoard    bool
	quitting     bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts ModelOptions) Model {
	if opts.Game == nil {
		opts.Game = flappy.New(flappy.Options{Seed: opts.Runtime.Seed})
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	tracker := session.New(opts.Store, opts.Logger, opts.Player, opts.SessionID)
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	width, height := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	return Model{
		game:       opts.Game,
		screen:     core.NewScreen(width, playHeight(height)),
		tracker:    tracker,
		logger:     tracker.Logger(),
		palette:    newPalette(opts.Renderer),
		keys:       keys,
		mapper:     NewKeyMapper(keys, opts.Mouse),
		help:       h,
		board:      NewLeaderboard(opts.Store, opts.Renderer, opts.LeaderboardSize, tracker.ID(), width, height),
		config:     opts.Runtime,
		inputFrame: core.NewInputFrame(),
		gameState:  opts.Game.State(),
	}
}

// playHeight leaves the last row for the help bar.
func playHeight(height int) int {
	return max(height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session ready", "player", m.tracker.Player(), "tick_rate", m.config.EffectiveTickRate())
	return tickCmd(m.config.EffectiveTickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleInput(msg)

	case tea.MouseMsg:
		return m.handleInput(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleInput processes keyboard and mouse input.
func (m Model) handleInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m.handleBoardInput(msg)
	}

	switch m.mapper.MapToFrame(msg, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeaderboard:
		// The board would hide a running attempt.
		if !m.gameState.Playing {
			m.openBoard()
		}
	}
	return m, nil
}

func (m Model) handleBoardInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mapper.MapKey(keyMsg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeaderboard:
		m.showBoard = false
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Close) {
		m.showBoard = false
		return m, nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(keyMsg)
	return m, cmd
}

func (m *Model) openBoard() {
	if err := m.board.Refresh(); err != nil {
		m.logger.Warn("could not load leaderboard", "error", err)
	}
	m.showBoard = true
}

// handleResize processes window resize events. The game keeps its state;
// only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.board.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.tracker.Observe(m.game, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.EffectiveTickRate())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.View() + "\n\n" + m.help.View(m.keys)
	}

	Rasterize(scene.Build(m.game.Snapshot()), m.screen)
	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Screen returns the cell buffer of the last rendered frame.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// ShowingLeaderboard reports whether the leaderboard replaces the game view.
func (m Model) ShowingLeaderboard() bool {
	return m.showBoard
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts a local Bubble Tea program and blocks until the player quits.
func Run(opts ModelOptions) error {
	if opts.Player == "" {
		opts.Player = os.Getenv("USER")
	}
	model := NewModel(opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, programOpts...)
	_, err := p.Run()
	return err
}
