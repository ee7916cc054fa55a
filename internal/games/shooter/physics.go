package shooter

// Playfield bounds in normalized coordinates.
const (
	topEdge    = 1.0
	bottomEdge = -1.0
)

// advance moves active shots up and active obstacles down by one tick,
// switching off anything that left the playfield.
func advance(store *Store, shotSpeed, obstacleSpeed float64) {
	shots := store.Shots()
	for i := range shots {
		if !shots[i].Active {
			continue
		}
		shots[i].Pos.Y += shotSpeed
		if shots[i].Pos.Y > topEdge {
			shots[i].Active = false
		}
	}

	obstacles := store.Obstacles()
	for i := range obstacles {
		if !obstacles[i].Active {
			continue
		}
		obstacles[i].Pos.Y -= obstacleSpeed
		if obstacles[i].Pos.Y < bottomEdge {
			obstacles[i].Active = false
		}
	}
}
