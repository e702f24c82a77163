package input

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// RunnerKeys are the runner's bindings. Several keys may share an action.
type RunnerKeys struct {
	Jump []string `toml:"jump"`
	Duck []string `toml:"duck"`
}

// FighterKeys are one fighter's bindings, one key per action.
type FighterKeys struct {
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Jump    string `toml:"jump"`
	Attack  string `toml:"attack"`
	Block   string `toml:"block"`
	Special string `toml:"special"`
}

// KeyFile is the persisted remap table.
type KeyFile struct {
	Runner  RunnerKeys  `toml:"runner"`
	Player1 FighterKeys `toml:"player1"`
	Player2 FighterKeys `toml:"player2"`
}

// Scopes accepted by Rebind.
const (
	ScopeRunner  = "runner"
	ScopePlayer1 = "p1"
	ScopePlayer2 = "p2"
)

// DefaultKeyFile returns the stock layout.
func DefaultKeyFile() KeyFile {
	return KeyFile{
		Runner: RunnerKeys{
			Jump: []string{"space", "up", "w"},
			Duck: []string{"down", "s"},
		},
		Player1: FighterKeys{
			Left: "a", Right: "d", Jump: "w",
			Attack: "f", Block: "g", Special: "h",
		},
		Player2: FighterKeys{
			Left: "left", Right: "right", Jump: "up",
			Attack: "j", Block: "k", Special: "l",
		},
	}
}

func (f FighterKeys) pairs() []struct {
	action core.Action
	key    string
} {
	return []struct {
		action core.Action
		key    string
	}{
		{core.ActionLeft, f.Left},
		{core.ActionRight, f.Right},
		{core.ActionJump, f.Jump},
		{core.ActionAttack, f.Attack},
		{core.ActionBlock, f.Block},
		{core.ActionSpecial, f.Special},
	}
}

func (f *FighterKeys) set(a core.Action, key string) bool {
	switch a {
	case core.ActionLeft:
		f.Left = key
	case core.ActionRight:
		f.Right = key
	case core.ActionJump:
		f.Jump = key
	case core.ActionAttack:
		f.Attack = key
	case core.ActionBlock:
		f.Block = key
	case core.ActionSpecial:
		f.Special = key
	default:
		return false
	}
	return true
}

// RunnerBindings builds the runner's table (player one only).
func (k KeyFile) RunnerBindings() *Bindings {
	b := NewBindings()
	for _, key := range k.Runner.Jump {
		b.Bind(key, core.Player1, core.ActionJump)
	}
	for _, key := range k.Runner.Duck {
		b.Bind(key, core.Player1, core.ActionDuck)
	}
	return b
}

// FighterBindings builds the two-player table.
func (k KeyFile) FighterBindings() *Bindings {
	b := NewBindings()
	for _, p := range k.Player1.pairs() {
		b.Bind(p.key, core.Player1, p.action)
	}
	for _, p := range k.Player2.pairs() {
		b.Bind(p.key, core.Player2, p.action)
	}
	return b
}

// Validate rejects empty fighter keys and keys bound twice within a game.
func (k KeyFile) Validate() error {
	seen := make(map[string]string)
	claim := func(owner, key string) error {
		key = NormalizeKey(key)
		if key == "" {
			return fmt.Errorf("input: %s has no key", owner)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("input: key %q bound to both %s and %s", key, prev, owner)
		}
		seen[key] = owner
		return nil
	}

	for _, p := range k.Player1.pairs() {
		if err := claim("p1 "+p.action.String(), p.key); err != nil {
			return err
		}
	}
	for _, p := range k.Player2.pairs() {
		if err := claim("p2 "+p.action.String(), p.key); err != nil {
			return err
		}
	}

	clear(seen)
	for _, key := range k.Runner.Jump {
		if err := claim("runner jump", key); err != nil {
			return err
		}
	}
	for _, key := range k.Runner.Duck {
		if err := claim("runner duck", key); err != nil {
			return err
		}
	}
	if len(k.Runner.Jump) == 0 || len(k.Runner.Duck) == 0 {
		return errors.New("input: runner needs at least one jump and one duck key")
	}
	return nil
}

// Rebind points an action at a new key. For the runner the key replaces
// the whole list for that action. The result must still validate.
func (k *KeyFile) Rebind(scope string, a core.Action, key string) error {
	key = NormalizeKey(key)
	next := *k
	next.Runner.Jump = append([]string(nil), k.Runner.Jump...)
	next.Runner.Duck = append([]string(nil), k.Runner.Duck...)

	switch scope {
	case ScopeRunner:
		switch a {
		case core.ActionJump:
			next.Runner.Jump = []string{key}
		case core.ActionDuck:
			next.Runner.Duck = []string{key}
		default:
			return fmt.Errorf("input: runner has no %s action", a)
		}
	case ScopePlayer1:
		if !next.Player1.set(a, key) {
			return fmt.Errorf("input: fighter has no %s action", a)
		}
	case ScopePlayer2:
		if !next.Player2.set(a, key) {
			return fmt.Errorf("input: fighter has no %s action", a)
		}
	default:
		return fmt.Errorf("input: unknown scope %q", scope)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*k = next
	return nil
}

// DefaultKeyPath returns ~/.arcade/keys.toml, or keys.toml if home is unknown.
func DefaultKeyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "keys.toml"
	}
	return filepath.Join(home, ".arcade", "keys.toml")
}

// LoadKeyFile reads a key file. A missing file yields the defaults.
// Sections absent from the file keep their default values.
func LoadKeyFile(path string) (KeyFile, error) {
	k := DefaultKeyFile()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return k, nil
	}
	if err != nil {
		return k, fmt.Errorf("input: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &k); err != nil {
		return DefaultKeyFile(), fmt.Errorf("input: parse %s: %w", path, err)
	}
	if err := k.Validate(); err != nil {
		return DefaultKeyFile(), fmt.Errorf("%w (in %s)", err, path)
	}
	return k, nil
}

// SaveKeyFile writes the key file, creating parent directories.
func SaveKeyFile(path string, k KeyFile) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("input: create dir for %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(k); err != nil {
		return fmt.Errorf("input: encode keys: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("input: write %s: %w", path, err)
	}
	return nil
}
