package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultShooterConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(0.02, 500, 10000); got != 0.02 {
		t.Errorf("Speed() = %g, expected base 0.02", got)
	}
	if got := d.SpawnChance(0.02, 500, 10000); got != 0.02 {
		t.Errorf("SpawnChance() = %g, expected base 0.02", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpawnMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		level float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{400, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.level) > 1e-9 {
			t.Errorf("Level(%d) = %g, expected %g", tc.score, got, tc.level)
		}
	}

	if got := d.Speed(0.02, 100, 0); math.Abs(got-0.04) > 1e-9 {
		t.Errorf("Speed at max = %g, expected 0.04", got)
	}
}

func TestDifficultySpawnChanceCapped(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:      ScalingConfig{SpawnMultiplier: 10},
	}
	d := NewDifficultyManager(cfg)

	if got := d.SpawnChance(0.5, 0, 0); got != 1.0 {
		t.Errorf("SpawnChance() = %g, expected cap 1.0", got)
	}
}
