package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/desktop"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play at full pixel resolution.

Controls:
  Up/W         - Move up (hold)
  Down/S       - Move down (hold)
  Space        - Fire
  Enter/P      - Play (or click the PLAY button)
  Q/Escape     - Quit

Examples:
  invasion window
  invasion window invasion_classic --scale 0.75`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale relative to the field (0 = fit)")
}

func runWindow(_ *cobra.Command, args []string) {
	defer closeLog()

	gameID := modeArg(args)
	cfg := checkConfig(gameID)

	world, err := invasion.NewWorld(cfg, flagFPS, logger)
	if err != nil {
		fail("%v", err)
	}

	title := "Alien Invasion"
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	store := openStore()
	runErr := desktop.Run(world, desktop.Options{
		Title:    title,
		TickRate: flagFPS,
		Scale:    flagScale,
		Logger:   logger,
		Store:    store,
		GameID:   gameID,
		Player:   playerName(),
	})
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running window: %v", runErr)
	}
}
