package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// shipHit reports whether any active obstacle is within threshold of the ship.
// Every obstacle is tested, there is no early exit, and each one that touches
// the ship is switched off.
func shipHit(ship core.Vec2, obstacles []Obstacle, threshold float64) bool {
	hit := false
	for i := range obstacles {
		if obstacles[i].Active && ship.Near(obstacles[i].Pos, threshold) {
			obstacles[i].Active = false
			hit = true
		}
	}
	return hit
}

// resolveShots pairs shots with obstacles, obstacle-major, switching both
// off on contact. Activity is re-read on every pass so a spent shot cannot
// score again and the first obstacle in collection order wins.
// Returns the number of obstacles destroyed.
func resolveShots(shots []Shot, obstacles []Obstacle, threshold float64) int {
	hits := 0
	for i := range obstacles {
		if !obstacles[i].Active {
			continue
		}
		for j := range shots {
			if !obstacles[i].Active {
				break
			}
			if !shots[j].Active {
				continue
			}
			if shots[j].Pos.Near(obstacles[i].Pos, threshold) {
				shots[j].Active = false
				obstacles[i].Active = false
				hits++
			}
		}
	}
	return hits
}
