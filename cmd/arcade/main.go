// arcade runs Star Shooter, a small arcade shooter, in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: shooter)
//	arcade sim               - Run the game headless and print a summary
//	arcade config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Game config flags, shared by play, sim and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Star Shooter - dodge and shoot in your terminal",
	Long: `Star Shooter is a minimal arcade shooter for the terminal: steer the
ship, shoot the falling blocks and avoid being hit.

Available commands:
  list     - Show all available games
  play     - Play a game
  sim      - Run the game headless and print the runs
  config   - Print the effective configuration

Examples:
  arcade play
  arcade play --difficulty hard
  arcade sim --runs 5 --seed 42
  arcade config --config ./my-shooter.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	for _, c := range []*cobra.Command{playCmd, simCmd, configCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The terminal belongs to the game,
// so logs only go somewhere when --log-file is set.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the shooter config and applies --difficulty.
func loadGameConfig() (config.ShooterConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, err
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyShooterPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc, rc.Validate()
}

// newShooter creates a shooter game for the loaded configuration.
func newShooter(cfg config.ShooterConfig) *shooter.Game {
	return shooter.NewGame(cfg)
}
