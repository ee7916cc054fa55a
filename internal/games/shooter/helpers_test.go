package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

const eps = 1e-9

// scriptedRand returns queued values, then a value that never spawns.
type scriptedRand struct {
	values []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	if r.i >= len(r.values) {
		return 0.99
	}
	v := r.values[r.i]
	r.i++
	return v
}

func noSpawn() *scriptedRand {
	return &scriptedRand{}
}

// newPlaying returns a session that has just entered Playing and never spawns.
func newPlaying(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.DefaultShooterConfig(), WithRand(noSpawn()))
	s.HandleKey(core.ActionPrimary)
	if s.Phase() != PhasePlaying {
		t.Fatalf("expected Playing after start, got %v", s.Phase())
	}
	return s
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}
