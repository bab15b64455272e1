package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// logger is shared by every command. Terminal commands keep it off the
// screen unless --log names a file.
var logger = log.New(io.Discard)

// logFile is closed by closeLog.
var logFile *os.File

// setup applies the global flags before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	switch {
	case flagLogPath != "":
		f, err := openLogFile(flagLogPath)
		if err != nil {
			return err
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			Prefix:          "invasion",
			Level:           level,
		})
	case cmd == serveCmd || cmd == windowCmd:
		// These commands leave the terminal free, so log to it.
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "invasion",
			Level:           level,
		})
	}

	invasion.SetConfigPath(flagConfig)
	invasion.SetDifficultyPreset(flagDifficulty)
	invasion.SetLogger(logger)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- path is a CLI flag
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return f, nil
}

func closeLog() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// fail reports err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	closeLog()
	os.Exit(1)
}

// modeArg resolves an optional mode argument to a registered game ID.
func modeArg(args []string) string {
	gameID := "invasion"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invasion list' to see available modes.")
		closeLog()
		os.Exit(1)
	}
	return gameID
}

// modeFor maps a game ID to its wave-clear mode.
func modeFor(gameID string) invasion.GameMode {
	if gameID == "invasion_classic" {
		return invasion.ModeClassic
	}
	return invasion.ModeStandard
}

// checkConfig loads the game config once so a malformed file stops the
// command before the terminal is taken over.
func checkConfig(gameID string) config.InvasionConfig {
	cfg, err := invasion.LoadConfig(modeFor(gameID))
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the run journal. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("run journal unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playerName names the local player in the journal.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
