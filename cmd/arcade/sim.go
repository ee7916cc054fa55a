package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagSimTicks     int
	flagSimRuns      int
	flagSimFireEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the shooter headless and print the runs",
	Long: `Play the shooter without a terminal UI. A simple autopilot steers the
ship away from blocks that are about to hit it and fires at a fixed interval.
Each run ends on game over or after --ticks ticks.

Runs use consecutive seeds starting at --seed, so equal flags give equal output.

Examples:
  arcade sim
  arcade sim --runs 10 --seed 7
  arcade sim --ticks 600 --fire-every 5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().IntVar(&flagSimFireEvery, "fire-every", 10, "Fire every N ticks (0 = never)")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rc, err := runtimeConfig(80, 24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimTicks <= 0 || flagSimRuns <= 0 || flagSimFireEvery < 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks and --runs must be positive, --fire-every must not be negative")
		os.Exit(1)
	}

	ledger, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run ledger: %v\n", err)
		os.Exit(1)
	}
	defer ledger.Close()

	game := newShooter(cfg)
	for i := 0; i < flagSimRuns; i++ {
		runRC := rc
		runRC.Seed = rc.Seed + int64(i)
		game.Reset(runRC)

		run := simulate(game, flagSimTicks, flagSimFireEvery)
		if _, err := ledger.SaveRun(run); err != nil {
			logger.Warn("could not record run", "error", err)
			continue
		}
		logger.Info("run finished", "seed", runRC.Seed, "score", run.Score, "ticks", run.Ticks)
	}

	printRuns(ledger, flagSimRuns)
}

// simulate plays one run from the start menu and returns its record.
func simulate(game *shooter.Game, maxTicks, fireEvery int) storage.Run {
	in := core.NewInputFrame()
	in.Set(core.ActionPrimary)
	game.Step(in)

	for tick := 1; tick < maxTicks && !game.State().GameOver; tick++ {
		in.Clear()
		in.Set(steer(game.Session().Snapshot()))
		if fireEvery > 0 && tick%fireEvery == 0 {
			in.Set(core.ActionFire)
		}
		game.Step(in)
	}

	st := game.State()
	shots, spawned := game.RunStats()
	return storage.Run{
		GameID:           game.ID(),
		Score:            st.Score,
		Ticks:            st.Ticks,
		ShotsFired:       shots,
		ObstaclesSpawned: spawned,
	}
}

// Autopilot tuning, in normalized units
const (
	dangerHeight = 0.35
	dangerWidth  = 0.15
	aimTolerance = 0.05
)

// steer picks a movement for the autopilot. It sidesteps the closest block
// coming down on the ship, otherwise lines up under the lowest block.
func steer(snap shooter.Snapshot) core.Action {
	ship := snap.Ship

	var threat, target *core.Vec2
	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		dy := o.Y - ship.Y
		if dy < 0 {
			continue
		}
		if dy < dangerHeight && math.Abs(o.X-ship.X) < dangerWidth {
			if threat == nil || o.Y < threat.Y {
				threat = o
			}
		}
		if target == nil || o.Y < target.Y {
			target = o
		}
	}

	switch {
	case threat != nil:
		if threat.X > ship.X || ship.X >= 0.95 {
			return core.ActionLeft
		}
		return core.ActionRight
	case target == nil:
		return core.ActionNone
	case target.X < ship.X-aimTolerance:
		return core.ActionLeft
	case target.X > ship.X+aimTolerance:
		return core.ActionRight
	}
	return core.ActionNone
}

// printRuns prints the recorded runs, best first.
func printRuns(ledger *storage.Ledger, limit int) {
	runs, err := ledger.TopRuns(shooter.ID, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Simulated runs - Star Shooter")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Ticks", "Shots", "Spawned")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "-------")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %d\n", i+1, r.Score, r.Ticks, r.ShotsFired, r.ObstaclesSpawned)
	}

	stats, err := ledger.GameStats(shooter.ID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Average: %.1f   Total ticks: %d\n", stats.BestScore, stats.AvgScore, stats.TotalTicks)
}
