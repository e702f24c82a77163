package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arena/internal/audio"
	"github.com/vovakirdan/dash-arena/internal/engine"
	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/platform/gui"
	"github.com/vovakirdan/dash-arena/internal/platform/tui"
	"github.com/vovakirdan/dash-arena/internal/registry"
)

var (
	flagGUI       bool
	flagCPU       bool
	flagCPUScript string
	flagTheme     string
	flagSkin      string
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Dino Dash controls:
  Space/Up/W - Jump
  Down/S     - Duck

Fighting Arena controls:
  Player 1   - A/D move, W jump, F attack, G block, H special
  Player 2   - Arrows move and jump, J attack, K block, L special

System keys:
  P/Esc      - Pause
  R          - Restart (after game over)
  B          - Back (when paused or over)
  Q/Ctrl+C   - Quit

Keys can be remapped with 'arcade keys set'.

Difficulty options:
  easy   - Longer levels and rounds
  normal - Defaults
  hard   - Shorter levels, faster spawns, shorter rounds
  fixed  - No level progression

Examples:
  arcade play dino
  arcade play dino --theme neon --skin gold
  arcade play dino --difficulty hard
  arcade play fighter --cpu
  arcade play fighter --cpu --cpu-script ./aggressive.lua
  arcade play fighter --gui`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagCPU, "cpu", false, "Fighter: player two is computer-controlled")
	playCmd.Flags().StringVar(&flagCPUScript, "cpu-script", "", "Fighter: Lua script for the computer opponent")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Dino: world theme (desert, jungle, neon, volcano)")
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Dino: runner skin (classic, red, cyber, gold, shadow)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if flagCPUScript != "" {
		flagCPU = true
	}

	logger, closeLog, err := newLogger("arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Set config path and difficulty for games before creation
	configureGames()
	if flagTheme != "" {
		if _, ok := dino.ThemeByID(flagTheme); !ok {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default\n", flagTheme)
		}
		dino.SetTheme(flagTheme)
	}
	if flagSkin != "" {
		if _, ok := dino.SkinByID(flagSkin); !ok {
			fmt.Fprintf(os.Stderr, "Warning: unknown skin %q, using default\n", flagSkin)
		}
		dino.SetSkin(flagSkin)
	}

	var cpu func() fighter.Brain
	if flagCPU {
		cpu, err = cpuFactory(flagCPUScript, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading CPU script: %v\n", err)
			os.Exit(1)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage; the game still works without it
	store := openStore(logger)
	keys := loadKeys(logger)

	var sink engine.CueSink = engine.NopSink{}
	if !flagMute {
		sink = audio.OpenOrNop(logger)
	}

	cfg := runtimeConfig()

	// Run the game
	var runErr error
	if flagGUI {
		runErr = gui.Run(game, cfg, gui.Options{
			Store:  store,
			Sink:   sink,
			Logger: logger,
			Keys:   keys,
			CPU:    cpu,
		})
	} else {
		runErr = tui.Run(game, cfg, tui.Options{
			Store:     store,
			Sink:      sink,
			Logger:    logger,
			Keys:      keys,
			CPU:       cpu,
			Clipboard: true,
		})
	}

	// Close sound and store before potential exit
	if c, ok := sink.(io.Closer); ok {
		c.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
