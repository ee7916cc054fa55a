package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// RandSource is the randomness the spawner draws from.
// *math/rand.Rand satisfies it; tests can script values.
type RandSource interface {
	Float64() float64
}

// Spawner drops new obstacles at the top edge.
type Spawner struct {
	rng RandSource
}

// NewSpawner creates a spawner using rng.
func NewSpawner(rng RandSource) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn rolls once against chance and, on success, appends an obstacle at a
// uniformly random x in [-1, 1) on the top edge. Reports whether one was added.
func (sp *Spawner) Spawn(store *Store, chance float64) bool {
	if sp.rng.Float64() >= chance {
		return false
	}
	x := sp.rng.Float64()*2 - 1
	store.AddObstacle(core.Vec2{X: x, Y: topEdge})
	return true
}
