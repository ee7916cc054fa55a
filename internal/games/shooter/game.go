package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// ID is the registry identifier of the shooter.
const ID = "shooter"

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	cfg     config.ShooterConfig
	opts    []Option
	session *Session

	best int // Best recorded score
	runs int // Recorded runs
}

// New creates a game with the built-in configuration.
func New() *Game {
	return NewGame(config.DefaultShooterConfig())
}

// NewGame creates a game with the given configuration.
// Options are applied to every session the game creates; when none sets a
// random source, the runtime seed is used.
func NewGame(cfg config.ShooterConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg, opts: opts}
	g.session = NewSession(cfg, opts...)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Shooter"
}

// Reset starts a fresh session on the Start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := append([]Option{WithSeed(cfg.Seed)}, g.opts...)
	g.session = NewSession(g.cfg, opts...)
}

// Step replays the frame's input in arrival order, then runs one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events() {
		if ev.Pointer != nil {
			g.session.HandlePointer(ev.Pointer.X, ev.Pointer.Y, ev.Pointer.Width, ev.Pointer.Height)
			continue
		}
		g.session.HandleKey(ev.Action)
	}
	g.session.Update()
	return core.StepResult{State: g.State()}
}

// Render draws the current session.
func (g *Game) Render(dst *core.Screen) {
	snap := g.session.Snapshot()
	snap.Best, snap.Runs = g.best, g.runs
	Render(dst, snap)
}

// SetRecord sets the best score and number of finished runs shown on the
// game over screen. It survives Reset.
func (g *Game) SetRecord(best, runs int) {
	g.best, g.runs = best, runs
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Ticks:    g.session.Stats().Ticks,
		Playing:  g.session.Phase() == PhasePlaying,
		GameOver: g.session.Phase() == PhaseGameOver,
		Quit:     g.session.QuitRequested(),
	}
}

// RunStats returns the shot and spawn counters of the current run.
func (g *Game) RunStats() (shotsFired, obstaclesSpawned int) {
	st := g.session.Stats()
	return st.ShotsFired, st.ObstaclesSpawned
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
