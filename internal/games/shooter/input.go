package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// moves are unit directions for the movement actions.
var moves = map[core.Action]core.Vec2{
	core.ActionLeft:  {X: -1},
	core.ActionRight: {X: 1},
	core.ActionUp:    {Y: 1},
	core.ActionDown:  {Y: -1},
}

// HandleKey applies one semantic action. Movement and firing only work while
// Playing; the selector actions drive the menus. Anything else is ignored.
func (s *Session) HandleKey(a core.Action) {
	if s.phase == PhasePlaying {
		if dir, ok := moves[a]; ok {
			step := s.cfg.Ship.Step
			s.moveShip(s.store.Ship.Add(core.Vec2{X: dir.X * step, Y: dir.Y * step}))
			return
		}
		if a == core.ActionFire {
			s.store.AddShot(s.store.Ship)
			s.stats.ShotsFired++
			return
		}
	}

	s.apply(commandFor(s.phase, a))
}

// HandlePointer moves the ship to the pointer position, given in a
// width x height viewport with the origin at the top-left corner.
// Ignored outside Playing or for an empty viewport.
func (s *Session) HandlePointer(x, y, width, height int) {
	if s.phase != PhasePlaying {
		return
	}
	p, ok := core.FromPixel(x, y, width, height)
	if !ok {
		return
	}
	s.moveShip(p)
}

func (s *Session) moveShip(p core.Vec2) {
	if s.cfg.Ship.Clamp {
		p = p.Clamp(bottomEdge, topEdge)
	}
	s.store.Ship = p
}
