package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// runStatser is implemented by games that count shots and spawns.
type runStatser interface {
	RunStats() (shotsFired, obstaclesSpawned int)
}

// recordKeeper is implemented by games that show the ledger's record.
type recordKeeper interface {
	SetRecord(best, runs int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	ledger     *storage.Ledger
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	board      *BoardModel
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// ledger and logger may be nil.
func NewModel(game registry.Game, ledger *storage.Ledger, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		ledger:     ledger,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		if _, isQuit := m.keys.MapKey(msg); isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		board, cmd := m.board.Update(msg)
		if board.Closed() {
			m.board = nil
			return m, cmd
		}
		m.board = &board
		return m, cmd
	}

	if m.keys.IsBoard(msg) && !m.gameState.Playing {
		board := NewBoardModel(m.ledger, m.game.ID(), m.game.Title(), m.config.TickRate, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns pointer motion into a pointer event for the next tick.
// The terminal size is the pointer's viewport.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.board != nil || msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	m.inputFrame.Point(msg.X, msg.Y, m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleResize processes window resize events.
// Game coordinates are normalized, so the game itself keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.board != nil {
		board, cmd := m.board.Update(msg)
		m.board = &board
		return m, cmd
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if from, to := phaseName(prev), phaseName(m.gameState); from != to {
		m.logger.Debug("phase changed", "from", from, "to", to, "score", m.gameState.Score)
	}

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.recordRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun books the finished run in the ledger and hands the updated
// record back to the game. Failures are logged; the game continues regardless.
func (m *Model) recordRun() {
	if m.ledger == nil {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Ticks:  m.gameState.Ticks,
	}
	if rs, ok := m.game.(runStatser); ok {
		run.ShotsFired, run.ObstaclesSpawned = rs.RunStats()
	}

	id, err := m.ledger.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id, "score", run.Score, "ticks", run.Ticks)

	rk, ok := m.game.(recordKeeper)
	if !ok {
		return
	}
	stats, err := m.ledger.GameStats(run.GameID)
	if err != nil {
		m.logger.Warn("could not read run record", "error", err)
		return
	}
	rk.SetRecord(stats.BestScore, stats.Runs)
}

// phaseName describes the screen a game state belongs to.
func phaseName(st core.GameState) string {
	switch {
	case st.Playing:
		return "playing"
	case st.GameOver:
		return "game_over"
	default:
		return "start"
	}
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// BoardOpen reports whether the run board is shown.
func (m Model) BoardOpen() bool {
	return m.board != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, ledger *storage.Ledger, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, ledger, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
