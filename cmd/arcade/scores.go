package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arena/internal/registry"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores or match history for a game",
	Long: `Display the top 10 high scores for the specified game. Two-player
games show the most recent matches and the win tally instead.

Examples:
  arcade scores dino
  arcade scores fighter`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if registry.PlayerCount(game) == 2 {
		err = printMatches(store, gameID, game.Title())
	} else {
		err = printScores(store, gameID, game.Title())
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printMatches(store *storage.Store, gameID, title string) error {
	matches, err := store.RecentMatches(gameID, 10)
	if err != nil {
		return err
	}
	sum, err := store.MatchStats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Matches - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to fight the first match!\n", gameID)
		return nil
	}

	fmt.Printf("  %-6s  %-9s  %-6s  %-6s  %s\n", "Winner", "HP", "Time", "Mode", "Date")
	fmt.Printf("  %-6s  %-9s  %-6s  %-6s  %s\n", "------", "--", "----", "----", "----")
	for _, m := range matches {
		mode := "2P"
		if m.VsCPU {
			mode = "CPU"
		}
		hp := fmt.Sprintf("%d-%d", m.P1Health, m.P2Health)
		fmt.Printf("  %-6s  %-9s  %-6s  %-6s  %s\n",
			m.Winner, hp, fmt.Sprintf("%ds", m.DurationSecs), mode, m.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("P1 wins: %d  P2 wins: %d  Draws: %d  Total: %d\n", sum.P1Wins, sum.P2Wins, sum.Draws, sum.Total)
	return nil
}
