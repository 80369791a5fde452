// zombiejump is a terminal platformer: ride the safe platforms scrolling up
// the screen, dodge the lethal ones and keep off the top and bottom edges.
//
// Usage:
//
//	zombiejump play [game]     - Play a game (default: zombiejump)
//	zombiejump list            - List available games
//	zombiejump menu            - Pick games interactively
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 50, a 20ms loop)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load game config from a YAML file
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/zombie-jump/internal/games/turtle"
	_ "github.com/vovakirdan/zombie-jump/internal/games/zombiejump"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombiejump",
	Short: "Zombie Jump - a platformer in your terminal",
	Long: `Zombie Jump is a terminal platformer. Platforms scroll up the screen;
land on the safe '=' ones, avoid the lethal 'x' ones and keep away from
the top and bottom of the screen.

Available commands:
  play     - Play a game directly
  list     - Show all available games
  menu     - Interactive game picker

Examples:
  zombiejump play
  zombiejump play --preset hard
  zombiejump play turtle
  zombiejump menu --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (loop iterations per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger opens the log destination. The terminal belongs to the game
// while it runs, so without --log-file logs are discarded.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "zombiejump",
		Level:           level,
	})
	closeLog := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return logger, closeLog, nil
}
