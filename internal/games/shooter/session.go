// Package shooter implements a vertical arcade shooter.
// The player steers a ship across a normalized [-1, 1] playfield, shooting
// obstacles that fall from the top. Touching an obstacle ends the run.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Stats are counters for the current run.
type Stats struct {
	Ticks            int // Ticks simulated while Playing
	ShotsFired       int
	ObstaclesSpawned int
}

// Session is one game session: the ship, entities, score and phase.
// It is not safe for concurrent use; the caller serializes ticks and input.
type Session struct {
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager
	store      *Store
	spawner    *Spawner

	phase Phase
	score int
	stats Stats
	quit  bool
}

// Option customizes a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	rng RandSource
}

// WithRand sets the random source used for spawning.
func WithRand(rng RandSource) Option {
	return func(o *sessionOptions) {
		o.rng = rng
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(o *sessionOptions) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSession creates a session on the Start screen.
// cfg is expected to have passed config.ShooterConfig.Validate.
func NewSession(cfg config.ShooterConfig, opts ...Option) *Session {
	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		store:      NewStore(cfg.Store.CompactAfter),
		spawner:    NewSpawner(o.rng),
		phase:      PhaseStart,
	}
	s.store.Ship = core.Vec2{X: cfg.Ship.StartX, Y: cfg.Ship.StartY}
	return s
}

// Update advances the session by one tick. Outside Playing it does nothing.
//
// Order within a tick: spawn, move, ship collision, shot collisions,
// compaction. A ship collision switches to GameOver at once, but the shot
// collisions of the same tick are still resolved.
func (s *Session) Update() {
	if s.phase != PhasePlaying {
		return
	}
	s.stats.Ticks++

	chance := s.difficulty.SpawnChance(s.cfg.Spawner.Chance, s.score, s.stats.Ticks)
	if s.spawner.Spawn(s.store, chance) {
		s.stats.ObstaclesSpawned++
	}

	speed := s.difficulty.Speed(s.cfg.Physics.ObstacleSpeed, s.score, s.stats.Ticks)
	advance(s.store, s.cfg.Physics.ShotSpeed, speed)

	threshold := s.cfg.Physics.HitThreshold
	if shipHit(s.store.Ship, s.store.Obstacles(), threshold) {
		s.phase = PhaseGameOver
	}
	s.score += resolveShots(s.store.Shots(), s.store.Obstacles(), threshold)

	s.store.Compact()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.score
}

// Stats returns the counters of the current or last run.
func (s *Session) Stats() Stats {
	return s.stats
}

// QuitRequested reports whether quit was selected on the Start screen.
func (s *Session) QuitRequested() bool {
	return s.quit
}
