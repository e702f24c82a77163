package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/platform/tui"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend runner coins on upgrades",
	Long: `Open the Dino Dash upgrade shop.

Coins collected in runs stay in your wallet. Each upgrade level costs
more than the last.

  jump    - Moon Boots: stronger jumps
  speed   - Time Snail: slower world
  magnet  - Magnetic Skin: pulls nearby coins in

Without a subcommand the shop opens interactively.

Examples:
  arcade shop
  arcade shop list
  arcade shop buy magnet`,
	Run: runShop,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show wallet and upgrade levels",
	Run:   runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <upgrade>",
	Short: "Buy the next level of an upgrade",
	Args:  cobra.ExactArgs(1),
	Run:   runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
}

// runShopScreen opens the interactive shop. A missing store still shows
// prices but cannot buy.
func runShopScreen(store *storage.Store, width, height int) (bool, error) {
	var ps dino.ProgressionStore
	if store != nil {
		ps = store
	}
	return tui.RunShop(ps, width, height)
}

func runShop(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	configureGames()
	store := openStore(logger)
	cfg := runtimeConfig()

	_, runErr := runShopScreen(store, cfg.ScreenW, cfg.ScreenH)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// mustProgression opens the store and loads the runner's progression.
func mustProgression() (*storage.Store, dino.Progression) {
	configureGames()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	p, err := dino.LoadProgression(store)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading progression: %v\n", err)
		os.Exit(1)
	}
	return store, p
}

func printProgression(p dino.Progression) {
	prices := dino.ShopPrices()

	fmt.Printf("Wallet: %d coins\n", p.Coins)
	fmt.Println()
	fmt.Printf("  %-8s  %-14s  %-5s  %s\n", "ID", "Upgrade", "Level", "Next")
	fmt.Printf("  %-8s  %-14s  %-5s  %s\n", "--", "-------", "-----", "----")
	for _, k := range dino.UpgradeKinds() {
		name := dino.UpgradeConfig(prices, k).Name
		fmt.Printf("  %-8s  %-14s  %-5d  %d\n", k, name, p.Level(k), p.NextCost(prices, k))
	}
}

func runShopList(_ *cobra.Command, _ []string) {
	store, p := mustProgression()
	defer store.Close()
	printProgression(p)
}

func runShopBuy(_ *cobra.Command, args []string) {
	kind, ok := dino.ParseUpgrade(strings.ToLower(args[0]))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown upgrade %q (try jump, speed or magnet)\n", args[0])
		os.Exit(1)
	}

	store, _ := mustProgression()
	defer store.Close()

	prices := dino.ShopPrices()
	p, bought, err := dino.Buy(store, prices, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving progression: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	if !bought {
		fmt.Fprintf(os.Stderr, "Not enough coins: %s costs %d, wallet has %d\n", kind, p.NextCost(prices, kind), p.Coins)
		store.Close()
		os.Exit(1)
	}

	cost := dino.Cost(dino.UpgradeConfig(prices, kind), p.Level(kind)-1)
	fmt.Printf("Bought %s level %d for %d coins.\n", kind, p.Level(kind), cost)
	fmt.Println()
	printProgression(p)
}
