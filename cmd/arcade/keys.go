package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show or change key bindings",
	Long: `Show the key bindings used by the games.

Bindings live in a TOML file (default ~/.arcade/keys.toml). A missing
file means the stock layout.

Examples:
  arcade keys
  arcade keys set runner jump k
  arcade keys set p1 attack r
  arcade keys reset`,
	Run: runKeysShow,
}

var keysSetCmd = &cobra.Command{
	Use:   "set <runner|p1|p2> <action> <key>",
	Short: "Bind an action to a key",
	Args:  cobra.ExactArgs(3),
	Run:   runKeysSet,
}

var keysResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default bindings",
	Args:  cobra.NoArgs,
	Run:   runKeysReset,
}

func init() {
	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysResetCmd)
}

func printKeys(k input.KeyFile) {
	fmt.Printf("Key bindings (%s)\n", keysPath())
	fmt.Println()
	fmt.Println("Runner")
	fmt.Printf("  %-8s  %s\n", "jump", strings.Join(k.Runner.Jump, ", "))
	fmt.Printf("  %-8s  %s\n", "duck", strings.Join(k.Runner.Duck, ", "))

	for _, p := range []struct {
		name string
		keys input.FighterKeys
	}{{"Player 1", k.Player1}, {"Player 2", k.Player2}} {
		fmt.Println()
		fmt.Println(p.name)
		fmt.Printf("  %-8s  %s\n", "left", p.keys.Left)
		fmt.Printf("  %-8s  %s\n", "right", p.keys.Right)
		fmt.Printf("  %-8s  %s\n", "jump", p.keys.Jump)
		fmt.Printf("  %-8s  %s\n", "attack", p.keys.Attack)
		fmt.Printf("  %-8s  %s\n", "block", p.keys.Block)
		fmt.Printf("  %-8s  %s\n", "special", p.keys.Special)
	}
}

func runKeysShow(_ *cobra.Command, _ []string) {
	k, err := input.LoadKeyFile(keysPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (showing defaults)\n", err)
	}
	printKeys(k)
}

func runKeysSet(_ *cobra.Command, args []string) {
	scope := strings.ToLower(args[0])
	action, ok := core.ParseAction(strings.ToLower(args[1]))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown action %q\n", args[1])
		os.Exit(1)
	}

	path := keysPath()
	k, err := input.LoadKeyFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := k.Rebind(scope, action, args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := input.SaveKeyFile(path, k); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bindings: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bound %s %s to %q.\n", scope, action, input.NormalizeKey(args[2]))
}

func runKeysReset(_ *cobra.Command, _ []string) {
	if err := input.SaveKeyFile(keysPath(), input.DefaultKeyFile()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bindings: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Key bindings reset to defaults.")
}
