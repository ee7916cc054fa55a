package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestMovementPerTick(t *testing.T) {
	s := newPlaying(t)
	s.HandleKey(core.ActionFire)
	s.store.AddObstacle(core.Vec2{X: 0.9, Y: 0.9})

	shotY := s.store.Shots()[0].Pos.Y
	obstY := s.store.Obstacles()[0].Pos.Y

	for tick := 0; tick < 20; tick++ {
		s.Update()
		shot := s.store.Shots()[0]
		obst := s.store.Obstacles()[0]

		if shot.Active {
			if !near(shot.Pos.Y, shotY+0.05) {
				t.Fatalf("tick %d: shot y = %f, expected %f", tick, shot.Pos.Y, shotY+0.05)
			}
			shotY = shot.Pos.Y
		}
		if obst.Active {
			if !near(obst.Pos.Y, obstY-0.02) {
				t.Fatalf("tick %d: obstacle y = %f, expected %f", tick, obst.Pos.Y, obstY-0.02)
			}
			obstY = obst.Pos.Y
		}
	}
}

func TestShotLeavesTopEdge(t *testing.T) {
	s := newPlaying(t)
	s.store.Ship = core.Vec2{X: 0, Y: 0.98}
	s.HandleKey(core.ActionFire)

	s.Update()
	if s.store.Shots()[0].Active {
		t.Errorf("shot at y=%f should be inactive", s.store.Shots()[0].Pos.Y)
	}
}

func TestObstacleLeavesBottomEdge(t *testing.T) {
	s := newPlaying(t)
	s.store.Ship = core.Vec2{X: 0.9, Y: 0.9}
	s.store.AddObstacle(core.Vec2{X: -0.5, Y: -0.99})

	s.Update()
	if s.store.Obstacles()[0].Active {
		t.Error("obstacle below the bottom edge should be inactive")
	}
	if s.Phase() != PhasePlaying {
		t.Error("leaving obstacles must not end the run")
	}
}

func TestShipCollisionEndsRun(t *testing.T) {
	s := newPlaying(t)
	s.store.Ship = core.Vec2{X: 0, Y: 0}
	s.store.AddObstacle(core.Vec2{X: 0.05, Y: 0.05})
	s.store.AddObstacle(core.Vec2{X: 0.8, Y: 0.8})

	s.Update()
	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected GameOver, got %v", s.Phase())
	}
	if s.store.Obstacles()[0].Active {
		t.Error("the obstacle that hit the ship should be inactive")
	}
	if !s.store.Obstacles()[1].Active {
		t.Error("obstacles away from the ship should stay active")
	}

	// GameOver ticks are inert
	before := s.Snapshot()
	s.Update()
	after := s.Snapshot()
	if len(after.Obstacles) != 1 || before.Obstacles[0] != after.Obstacles[0] {
		t.Errorf("obstacles must not move after GameOver: %+v -> %+v", before.Obstacles, after.Obstacles)
	}
}

func TestCrashObstacleCannotBeShot(t *testing.T) {
	s := newPlaying(t)
	s.store.Ship = core.Vec2{X: 0, Y: 0}
	s.store.AddObstacle(core.Vec2{X: 0.05, Y: 0.07})
	s.store.AddShot(core.Vec2{X: 0, Y: -0.05})

	s.Update()

	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected GameOver, got %v", s.Phase())
	}
	if s.store.Obstacles()[0].Active {
		t.Error("the obstacle that hit the ship should be inactive")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0: the crash obstacle must not score", s.Score())
	}
	if !s.store.Shots()[0].Active {
		t.Error("the shot should survive, it hit nothing")
	}
}

func TestShotScoresOnlyOnce(t *testing.T) {
	s := newPlaying(t)
	s.store.AddShot(core.Vec2{X: 0, Y: 0})
	s.store.AddObstacle(core.Vec2{X: 0, Y: 0})
	s.store.AddObstacle(core.Vec2{X: 0.01, Y: 0.01})

	s.Update()

	if s.Score() != 1 {
		t.Errorf("score = %d, expected exactly 1", s.Score())
	}
	if s.store.Shots()[0].Active {
		t.Error("shot should be inactive after a hit")
	}
	obstacles := s.store.Obstacles()
	if obstacles[0].Active {
		t.Error("first obstacle in collection order should be destroyed")
	}
	if !obstacles[1].Active {
		t.Error("second obstacle should survive")
	}
}

func TestOneObstacleOneScore(t *testing.T) {
	s := newPlaying(t)
	s.store.AddShot(core.Vec2{X: 0, Y: 0})
	s.store.AddShot(core.Vec2{X: 0.02, Y: 0})
	s.store.AddObstacle(core.Vec2{X: 0, Y: 0.05})

	s.Update()

	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1", s.Score())
	}
	if !s.store.Shots()[1].Active {
		t.Error("second shot should survive once the obstacle is gone")
	}
}

func TestScoreResetsOnNewRun(t *testing.T) {
	s := newPlaying(t)
	s.store.AddShot(core.Vec2{X: 0.5, Y: 0})
	s.store.AddObstacle(core.Vec2{X: 0.5, Y: 0})
	s.Update()
	if s.Score() != 1 {
		t.Fatalf("score = %d, expected 1", s.Score())
	}

	// Crash into an obstacle
	s.store.AddObstacle(s.store.Ship)
	s.Update()
	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected GameOver, got %v", s.Phase())
	}
	if s.Score() != 1 {
		t.Errorf("GameOver should keep the score, got %d", s.Score())
	}

	s.HandleKey(core.ActionPrimary) // restart
	if s.Phase() != PhasePlaying || s.Score() != 0 {
		t.Errorf("restart: phase=%v score=%d", s.Phase(), s.Score())
	}
	if len(s.store.Shots()) != 0 || len(s.store.Obstacles()) != 0 {
		t.Error("restart should clear entities")
	}
	if s.store.Ship != (core.Vec2{X: 0, Y: -0.8}) {
		t.Errorf("restart should reset the ship, got %+v", s.store.Ship)
	}
	if s.Stats() != (Stats{}) {
		t.Errorf("restart should reset stats, got %+v", s.Stats())
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Spawner.Chance = 0.2
	s := NewSession(cfg, WithSeed(7))
	s.HandleKey(core.ActionPrimary)

	last := 0
	for tick := 0; tick < 600 && s.Phase() == PhasePlaying; tick++ {
		if tick%3 == 0 {
			s.HandleKey(core.ActionFire)
		}
		s.Update()
		if s.Score() < last {
			t.Fatalf("tick %d: score went from %d to %d", tick, last, s.Score())
		}
		last = s.Score()
	}
}

func TestInactiveNeverReactivates(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Spawner.Chance = 0.3
	cfg.Store.CompactAfter = 1 << 30 // keep every entry so indexes stay stable
	s := NewSession(cfg, WithSeed(99))
	s.HandleKey(core.ActionPrimary)

	deadShots := map[int]bool{}
	deadObstacles := map[int]bool{}
	for tick := 0; tick < 300 && s.Phase() == PhasePlaying; tick++ {
		s.HandleKey(core.ActionFire)
		s.Update()

		for i, sh := range s.store.Shots() {
			if deadShots[i] && sh.Active {
				t.Fatalf("tick %d: shot %d came back to life", tick, i)
			}
			if !sh.Active {
				deadShots[i] = true
			}
		}
		for i, o := range s.store.Obstacles() {
			if deadObstacles[i] && o.Active {
				t.Fatalf("tick %d: obstacle %d came back to life", tick, i)
			}
			if !o.Active {
				deadObstacles[i] = true
			}
		}
	}
}

func TestSpawnFromScriptedSource(t *testing.T) {
	rng := &scriptedRand{values: []float64{0.01, 0.75}}
	s := NewSession(config.DefaultShooterConfig(), WithRand(rng))
	s.HandleKey(core.ActionPrimary)

	s.Update()

	obstacles := s.store.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("expected one spawned obstacle, got %d", len(obstacles))
	}
	if !near(obstacles[0].Pos.X, 0.5) {
		t.Errorf("spawn x = %f, expected 0.5", obstacles[0].Pos.X)
	}
	// Spawned at the top edge, then moved once this tick
	if !near(obstacles[0].Pos.Y, 1.0-0.02) {
		t.Errorf("spawn y after one tick = %f, expected 0.98", obstacles[0].Pos.Y)
	}
	if s.Stats().ObstaclesSpawned != 1 {
		t.Errorf("ObstaclesSpawned = %d", s.Stats().ObstaclesSpawned)
	}
}

func TestUpdateOutsidePlayingIsInert(t *testing.T) {
	rng := &scriptedRand{values: []float64{0.0, 0.5}}
	s := NewSession(config.DefaultShooterConfig(), WithRand(rng))

	s.Update()
	if len(s.store.Obstacles()) != 0 || s.Stats().Ticks != 0 {
		t.Error("Update on the Start screen must not simulate")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultShooterConfig()
		cfg.Spawner.Chance = 0.1
		s := NewSession(cfg, WithSeed(12345))
		s.HandleKey(core.ActionPrimary)
		for tick := 0; tick < 400 && s.Phase() == PhasePlaying; tick++ {
			switch tick % 20 {
			case 0:
				s.HandleKey(core.ActionFire)
			case 5:
				s.HandleKey(core.ActionLeft)
			case 15:
				s.HandleKey(core.ActionRight)
			}
			s.Update()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Phase != b.Phase || a.Stats != b.Stats {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
	if len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newPlaying(t)
	s.HandleKey(core.ActionFire)
	s.store.AddObstacle(core.Vec2{X: 0.5, Y: 0.5})
	s.store.obstacles[0].Active = false
	s.store.AddObstacle(core.Vec2{X: -0.5, Y: 0.5})

	snap := s.Snapshot()
	if len(snap.Obstacles) != 1 || snap.Obstacles[0].X != -0.5 {
		t.Fatalf("snapshot should only hold active obstacles, got %+v", snap.Obstacles)
	}

	snap.Shots[0].Y = 42
	if s.store.Shots()[0].Pos.Y == 42 {
		t.Error("mutating the snapshot must not touch the session")
	}
}
