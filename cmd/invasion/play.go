package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The mode defaults to "invasion".

Controls:
  W/Up/K       - Move up
  S/Down/J     - Move down
  Space        - Fire
  Enter/P      - Play (or click the PLAY button)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 spare ships, 5 bullets in flight, gentle speed-up
  normal - Configured values
  hard   - 1 spare ship, 2 bullets, faster fleet, sharp speed-up
  fixed  - Speeds and points never grow

Examples:
  invasion play
  invasion play invasion_classic
  invasion play --difficulty hard
  invasion play --config ./my-invasion.yaml --log ./invasion.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	defer closeLog()

	gameID := modeArg(args)
	checkConfig(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore()
	runErr := tui.Run(game, store, logger, runtimeConfig(), playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
