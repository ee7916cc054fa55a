package core

import (
	"errors"
	"fmt"
)

// ErrInvalidRuntime is returned by RuntimeConfig.Validate for unusable settings.
var ErrInvalidRuntime = errors.New("core: invalid runtime config")

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Validate reports settings the tick loop cannot run with.
// It is meant to be called once at startup, before any game is created.
func (c RuntimeConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidRuntime, c.TickRate)
	}
	if c.ScreenW < 0 || c.ScreenH < 0 {
		return fmt.Errorf("%w: negative screen size %dx%d", ErrInvalidRuntime, c.ScreenW, c.ScreenH)
	}
	return nil
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Ticks    int  // Ticks simulated in the current run
	Playing  bool // Whether a run is in progress
	GameOver bool // Whether the last run has ended
	Quit     bool // Whether the game asked the platform to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
