package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/input"
	"github.com/vovakirdan/dash-arena/internal/scripting"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

// newLogger builds the command logger. The terminal frontends own stderr
// while a game runs, so without --log everything is discarded.
func newLogger(prefix string) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if flagLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
			return nil, closeFn, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the score database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	// Runner wallets and upgrades persist in the same database.
	dino.SetProgressionStore(store)
	return store
}

// keysPath resolves the bindings file location.
func keysPath() string {
	if flagKeysPath != "" {
		return flagKeysPath
	}
	return input.DefaultKeyPath()
}

// loadKeys reads the bindings file, falling back to the defaults.
func loadKeys(logger *log.Logger) *input.KeyFile {
	keys, err := input.LoadKeyFile(keysPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using default keys)\n", err)
		logger.Warn("could not load key bindings", "error", err)
	}
	return &keys
}

// configureGames applies the config path and difficulty to every game.
func configureGames() {
	dino.SetConfigPath(flagConfig)
	dino.SetDifficultyPreset(flagDifficulty)
	fighter.SetConfigPath(flagConfig)
	fighter.SetDifficultyPreset(flagDifficulty)
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// cpuFactory loads the opponent script once to report errors early, then
// builds a fresh brain per match. Brains hold a Lua VM and are not shared.
func cpuFactory(path string, logger *log.Logger) (func() fighter.Brain, error) {
	brain, err := scripting.NewBrain(path, logger)
	if err != nil {
		return nil, err
	}
	brain.Close()

	return func() fighter.Brain {
		b, err := scripting.NewBrain(path, logger)
		if err != nil {
			logger.Warn("cpu script failed to load, opponent stays idle", "error", err)
			return fighter.BrainFunc(func(fighter.Snapshot, core.PlayerID) core.InputFrame {
				return core.InputFrame{}
			})
		}
		return b
	}, nil
}
