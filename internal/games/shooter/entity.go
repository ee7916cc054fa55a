package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Shot is a projectile fired upwards from the ship.
type Shot struct {
	Pos    core.Vec2
	Active bool
}

// Obstacle is a block falling from the top of the playfield.
type Obstacle struct {
	Pos    core.Vec2
	Active bool
}

func (s Shot) alive() bool     { return s.Active }
func (o Obstacle) alive() bool { return o.Active }

// Store owns the ship position and the shot and obstacle collections.
// Entities are never removed individually: they are switched off and
// skipped, and Compact drops them in bulk once enough have piled up.
type Store struct {
	Ship core.Vec2

	shots        []Shot
	obstacles    []Obstacle
	compactAfter int
}

// NewStore creates an empty store. compactAfter is the number of inactive
// entries a collection may hold before Compact reclaims them.
func NewStore(compactAfter int) *Store {
	return &Store{
		shots:        make([]Shot, 0, 16),
		obstacles:    make([]Obstacle, 0, 16),
		compactAfter: compactAfter,
	}
}

// AddShot appends an active shot at p.
func (s *Store) AddShot(p core.Vec2) {
	s.shots = append(s.shots, Shot{Pos: p, Active: true})
}

// AddObstacle appends an active obstacle at p.
func (s *Store) AddObstacle(p core.Vec2) {
	s.obstacles = append(s.obstacles, Obstacle{Pos: p, Active: true})
}

// Shots returns the shot collection in insertion order.
// Callers may mutate entries in place.
func (s *Store) Shots() []Shot {
	return s.shots
}

// Obstacles returns the obstacle collection in insertion order.
// Callers may mutate entries in place.
func (s *Store) Obstacles() []Obstacle {
	return s.obstacles
}

// Clear removes every shot and obstacle.
func (s *Store) Clear() {
	s.shots = s.shots[:0]
	s.obstacles = s.obstacles[:0]
}

// Compact drops inactive entries from a collection once it holds more than
// compactAfter of them and they make up more than half of it.
// Relative order of the remaining entries is preserved.
func (s *Store) Compact() int {
	var removed, n int
	s.shots, n = compact(s.shots, s.compactAfter)
	removed += n
	s.obstacles, n = compact(s.obstacles, s.compactAfter)
	removed += n
	return removed
}

func compact[T interface{ alive() bool }](items []T, threshold int) ([]T, int) {
	inactive := 0
	for _, it := range items {
		if !it.alive() {
			inactive++
		}
	}
	if inactive <= threshold || inactive*2 <= len(items) {
		return items, 0
	}

	kept := items[:0]
	for _, it := range items {
		if it.alive() {
			kept = append(kept, it)
		}
	}
	return kept, inactive
}

// countActive returns the number of active entries.
func countActive[T interface{ alive() bool }](items []T) int {
	n := 0
	for _, it := range items {
		if it.alive() {
			n++
		}
	}
	return n
}
