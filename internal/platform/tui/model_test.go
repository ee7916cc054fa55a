package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type harness struct {
	t      *testing.T
	m      Model
	game   *shooter.Game
	ledger *storage.Ledger
}

// newHarness wires a shooter game into a model. rng 0.99 never spawns,
// rng 0 spawns an obstacle at x=-1 every tick.
func newHarness(t *testing.T, rng float64) *harness {
	t.Helper()
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })

	game := shooter.NewGame(config.DefaultShooterConfig(), shooter.WithRand(constRand(rng)))
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	cfg.Seed = 1

	m := NewModel(game, ledger, nil, cfg)
	m.Init()
	return &harness{t: t, m: m, game: game, ledger: ledger}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.m = m
	return cmd
}

func (h *harness) tick(n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		cmd = h.send(TickMsg{})
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeysApplyOnNextTick(t *testing.T) {
	h := newHarness(t, 0.99)

	h.send(runeKey('1'))
	h.send(runeKey('d'))
	if h.game.Session().Phase() != shooter.PhaseStart {
		t.Fatal("input must not be applied before the tick")
	}

	h.tick(1)
	if !h.m.State().Playing {
		t.Fatal("expected Playing after the tick")
	}
	if x := h.game.Session().Snapshot().Ship.X; x < 0.049 || x > 0.051 {
		t.Errorf("ship x = %f, expected 0.05", x)
	}
}

func TestQuitFromStartMenu(t *testing.T) {
	h := newHarness(t, 0.99)

	h.send(runeKey('2'))
	if cmd := h.tick(1); !isQuit(cmd) {
		t.Error("selecting quit on the start menu should end the program")
	}
	if h.m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCtrlCQuits(t *testing.T) {
	h := newHarness(t, 0.99)
	if cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
}

func TestMouseMotionMovesShip(t *testing.T) {
	h := newHarness(t, 0.99)
	h.send(runeKey('1'))
	h.tick(1)

	h.send(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	h.send(tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.tick(1)

	if ship := h.game.Session().Snapshot().Ship; ship != (core.Vec2{X: -1, Y: 1}) {
		t.Errorf("ship = %+v, expected (-1, 1)", ship)
	}
}

func TestGameOverRecordsRunOnce(t *testing.T) {
	h := newHarness(t, 0)

	// Park the ship under the spawn column
	h.send(runeKey('1'))
	for i := 0; i < 25; i++ {
		h.send(runeKey('a'))
	}
	h.tick(120)

	if !h.m.State().GameOver {
		t.Fatal("expected the run to end")
	}
	h.tick(30)

	runs, err := h.ledger.TopRuns(shooter.ID, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Ticks == 0 || runs[0].ObstaclesSpawned == 0 {
		t.Errorf("run stats not recorded: %+v", runs[0])
	}

	// A second run is recorded separately
	h.send(runeKey('1'))
	for i := 0; i < 25; i++ {
		h.send(runeKey('a'))
	}
	h.tick(150)

	runs, _ = h.ledger.TopRuns(shooter.ID, 10)
	if len(runs) != 2 {
		t.Errorf("expected 2 recorded runs, got %d", len(runs))
	}

	// The game over screen shows the ledger's best once there is history
	if view := h.m.View(); !strings.Contains(view, "Session best:") {
		t.Errorf("game over view should show the session best:\n%s", view)
	}
}

func TestBoardOnlyOutsidePlaying(t *testing.T) {
	h := newHarness(t, 0.99)

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	if !h.m.BoardOpen() {
		t.Fatal("tab on the start menu should open the board")
	}
	if h.m.View() == "" {
		t.Error("board view should not be empty")
	}

	// Game keys go to the board while it is open
	h.send(runeKey('1'))
	h.tick(1)
	if h.m.State().Playing {
		t.Error("game must not start while the board is open")
	}

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.m.BoardOpen() {
		t.Fatal("esc should close the board")
	}

	h.send(runeKey('1'))
	h.tick(1)
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	if h.m.BoardOpen() {
		t.Error("tab must not open the board while playing")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	h := newHarness(t, 0.99)
	h.send(runeKey('1'))
	h.tick(5)

	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	h.tick(1)

	if !h.m.State().Playing || h.m.State().Ticks != 6 {
		t.Errorf("resize should not reset the run: %+v", h.m.State())
	}
}
