package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-jump/internal/config"
	"github.com/vovakirdan/zombie-jump/internal/core"
	"github.com/vovakirdan/zombie-jump/internal/games/turtle"
	"github.com/vovakirdan/zombie-jump/internal/games/zombiejump"
	"github.com/vovakirdan/zombie-jump/internal/platform/tui"
	"github.com/vovakirdan/zombie-jump/internal/registry"
)

const defaultGame = "zombiejump"

var (
	flagPreset string
	flagLevel  int
	flagSpeed  string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: zombiejump).

Controls:
  Left/Right, 4/6  - Move
  Down, 2          - Move down
  Up, 8            - Move up (level 2 and above)
  A / S / D        - Slow / normal / fast scrolling
  L                - Next level
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Presets:
  easy   - Level 1, slow scrolling, 5 lives
  normal - Level 1, normal scrolling
  hard   - Last level, fast scrolling, 2 lives

Examples:
  zombiejump play
  zombiejump play --preset easy
  zombiejump play --level 2 --speed fast
  zombiejump play --config ./my-zombiejump.yaml
  zombiejump play turtle`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = from config)")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Starting scroll speed: slow, normal, fast")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'zombiejump list' to see available games", gameID)
	}
	if err := applyGameSettings(gameID); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		logger.Error("game failed", "game", gameID, "error", err)
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// applyGameSettings validates the CLI settings against the game's config
// and hands them to the game package before it is created.
func applyGameSettings(gameID string) error {
	switch gameID {
	case "zombiejump":
		if _, err := config.ParsePreset(flagPreset); err != nil {
			return err
		}
		if _, err := config.ParseSpeed(flagSpeed); err != nil {
			return err
		}
		cfg, err := config.LoadZombie(flagConfig)
		if err != nil {
			return err
		}
		if flagLevel < 0 || flagLevel > len(cfg.Levels) {
			return fmt.Errorf("%w: --level %d out of range 1..%d", config.ErrInvalidConfig, flagLevel, len(cfg.Levels))
		}

		zombiejump.SetConfigPath(flagConfig)
		zombiejump.SetPreset(flagPreset)
		zombiejump.SetStartLevel(flagLevel)
		zombiejump.SetStartSpeed(flagSpeed)

	case "turtle":
		if _, err := config.LoadTurtle(flagConfig); err != nil {
			return err
		}
		turtle.SetConfigPath(flagConfig)
	}
	return nil
}

// runtimeConfig sizes the playfield to the terminal, leaving one line for
// the key help.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  core.Max(height-1, 1),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
