package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Snapshot is a read-only copy of everything needed to draw a frame.
// Only active entities are included. Best and Runs come from the run
// record kept outside the session; see Game.SetRecord.
type Snapshot struct {
	Phase     Phase
	Ship      core.Vec2
	Shots     []core.Vec2
	Obstacles []core.Vec2
	Score     int
	Best      int
	Runs      int
	Stats     Stats
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.phase,
		Ship:      s.store.Ship,
		Shots:     make([]core.Vec2, 0, countActive(s.store.Shots())),
		Obstacles: make([]core.Vec2, 0, countActive(s.store.Obstacles())),
		Score:     s.score,
		Stats:     s.stats,
	}
	for _, sh := range s.store.Shots() {
		if sh.Active {
			snap.Shots = append(snap.Shots, sh.Pos)
		}
	}
	for _, o := range s.store.Obstacles() {
		if o.Active {
			snap.Obstacles = append(snap.Obstacles, o.Pos)
		}
	}
	return snap
}
