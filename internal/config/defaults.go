package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Physics: ShooterPhysics{
			ShotSpeed:     0.05,
			ObstacleSpeed: 0.02,
			HitThreshold:  0.1,
		},
		Spawner: ShooterSpawner{
			Chance: 0.02,
		},
		Ship: ShooterShip{
			StartX: 0.0,
			StartY: -0.8,
			Step:   0.05,
			Clamp:  true,
		},
		Store: ShooterStore{
			CompactAfter: 64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				SpawnMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
