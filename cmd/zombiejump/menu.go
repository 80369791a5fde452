package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-jump/internal/platform/tui"
	"github.com/vovakirdan/zombie-jump/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start in interactive menu mode.

Use the arrow keys or j/k to choose a game and Enter to play it.
After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  zombiejump menu
  zombiejump menu --fps 30
  zombiejump menu --log-file ./zombiejump.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		if err := applyGameSettings(menuResult.GameID); err != nil {
			return err
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// Each game gets a fresh seed unless one was given
		cfg.Seed = flagSeed
		if err := tui.Run(game, cfg, logger); err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
			return err
		}
	}
}
