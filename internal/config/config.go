// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// ShooterConfig contains all configuration for the shooter game.
type ShooterConfig struct {
	Physics    ShooterPhysics   `yaml:"physics"`
	Spawner    ShooterSpawner   `yaml:"spawner"`
	Ship       ShooterShip      `yaml:"ship"`
	Store      ShooterStore     `yaml:"store"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPhysics defines movement and collision parameters.
// All distances are in normalized units per tick.
type ShooterPhysics struct {
	ShotSpeed     float64 `yaml:"shot_speed"`
	ObstacleSpeed float64 `yaml:"obstacle_speed"`
	HitThreshold  float64 `yaml:"hit_threshold"`
}

// ShooterSpawner defines obstacle spawning.
type ShooterSpawner struct {
	Chance float64 `yaml:"chance"` // Probability of a new obstacle per tick
}

// ShooterShip defines the player ship.
type ShooterShip struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Step   float64 `yaml:"step"`  // Distance moved per key press
	Clamp  bool    `yaml:"clamp"` // Keep the ship inside [-1, 1]
}

// ShooterStore tunes entity storage.
type ShooterStore struct {
	CompactAfter int `yaml:"compact_after"` // Inactive entries tolerated before compaction
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to obstacle speed factor at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to spawn chance factor at max difficulty
}

// Validate checks that the configuration can drive a session.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Physics.ShotSpeed <= 0:
		return fmt.Errorf("%w: physics.shot_speed must be positive, got %g", ErrInvalid, c.Physics.ShotSpeed)
	case c.Physics.ObstacleSpeed <= 0:
		return fmt.Errorf("%w: physics.obstacle_speed must be positive, got %g", ErrInvalid, c.Physics.ObstacleSpeed)
	case c.Physics.HitThreshold <= 0:
		return fmt.Errorf("%w: physics.hit_threshold must be positive, got %g", ErrInvalid, c.Physics.HitThreshold)
	case c.Spawner.Chance < 0 || c.Spawner.Chance > 1:
		return fmt.Errorf("%w: spawner.chance must be within [0, 1], got %g", ErrInvalid, c.Spawner.Chance)
	case c.Ship.Step <= 0:
		return fmt.Errorf("%w: ship.step must be positive, got %g", ErrInvalid, c.Ship.Step)
	case c.Store.CompactAfter < 0:
		return fmt.Errorf("%w: store.compact_after must not be negative, got %d", ErrInvalid, c.Store.CompactAfter)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be within [0, 1], got %g", ErrInvalid, c.Difficulty.InitialLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// The empty string means "keep the file's settings" and is returned as-is.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
