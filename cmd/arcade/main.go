// arcade is a small game platform: an endless runner and a two-player
// fighter, playable in the terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade shop              - Spend runner coins on upgrades
//	arcade keys              - Show or change key bindings
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores or match history for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--keys <path>   - Set key bindings file (default: ~/.arcade/keys.toml)
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/dash-arena/internal/games/dino"
	_ "github.com/vovakirdan/dash-arena/internal/games/fighter"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagKeysPath   string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Dash Arena - a runner and a fighter on one engine",
	Long: `Dash Arena bundles two games on one fixed-tick engine:

  dino     - Dino Dash, an endless runner with coins and upgrades
  fighter  - Fighting Arena, a two-player brawler (or one player vs CPU)

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  shop     - Buy runner upgrades with collected coins
  keys     - Show or remap key bindings
  serve    - Start SSH server for remote play
  scores   - View high scores and match history

Examples:
  arcade list
  arcade play dino
  arcade play fighter --cpu
  arcade play dino --gui
  arcade menu
  arcade serve --ssh :2222
  arcade scores fighter`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagKeysPath, "keys", "", "Path to key bindings file (default ~/.arcade/keys.toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
