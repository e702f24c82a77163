package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arena/internal/audio"
	"github.com/vovakirdan/dash-arena/internal/engine"
	"github.com/vovakirdan/dash-arena/internal/platform/tui"
	"github.com/vovakirdan/dash-arena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
The fighter appears twice: local two-player and versus the computer.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagCPUScript, "cpu-script", "", "Lua script for the computer opponent")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	configureGames()
	cpu, err := cpuFactory(flagCPUScript, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading CPU script: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store := openStore(logger)
	keys := loadKeys(logger)

	var sink engine.CueSink = engine.NopSink{}
	if !flagMute {
		sink = audio.OpenOrNop(logger)
	}

	cfg := runtimeConfig()

	// Menu loop
menu:
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		item := menuResult.Item
		switch item.Screen {
		case tui.ScreenScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break menu // User quit from scoreboard

		case tui.ScreenShop:
			goBack, shopErr := runShopScreen(store, cfg.ScreenW, cfg.ScreenH)
			if shopErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", shopErr)
			}
			if goBack {
				continue
			}
			break menu
		}

		// Create game instance
		game, err := registry.Create(item.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		opts := tui.Options{
			Store:     store,
			Sink:      sink,
			Logger:    logger,
			Keys:      keys,
			Clipboard: true,
		}
		if item.CPU {
			opts.CPU = cpu
		}

		// Run the game
		if err := tui.Run(game, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if c, ok := sink.(io.Closer); ok {
		c.Close()
	}
	if store != nil {
		store.Close()
	}
}
