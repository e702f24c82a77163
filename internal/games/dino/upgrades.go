package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dash-arena/internal/config"
)

// MaxCoins caps the lifetime wallet.
const MaxCoins = 999_999_999

// UpgradeKind identifies a shop upgrade.
type UpgradeKind int

const (
	UpgradeJump UpgradeKind = iota
	UpgradeSpeed
	UpgradeMagnet
	upgradeCount
)

var upgradeNames = [...]string{"jump", "speed", "magnet"}

func (k UpgradeKind) String() string {
	if k < 0 || k >= upgradeCount {
		return "unknown"
	}
	return upgradeNames[k]
}

// UpgradeKinds lists every upgrade in shop order.
func UpgradeKinds() []UpgradeKind {
	return []UpgradeKind{UpgradeJump, UpgradeSpeed, UpgradeMagnet}
}

// ParseUpgrade resolves an upgrade name.
func ParseUpgrade(name string) (UpgradeKind, bool) {
	for i, n := range upgradeNames {
		if n == name {
			return UpgradeKind(i), true
		}
	}
	return 0, false
}

// UpgradeConfig returns the price table for an upgrade kind.
func UpgradeConfig(u config.DinoUpgrades, k UpgradeKind) config.UpgradeConfig {
	switch k {
	case UpgradeSpeed:
		return u.Speed
	case UpgradeMagnet:
		return u.Magnet
	default:
		return u.Jump
	}
}

// Cost returns floor(base * mult^level). Costs past the wallet cap are
// clamped just above it so they stay unaffordable.
func Cost(u config.UpgradeConfig, level int) int {
	c := math.Floor(u.BaseCost * math.Pow(u.CostMult, float64(level)))
	if math.IsNaN(c) || c > MaxCoins {
		return MaxCoins + 1
	}
	if c < 0 {
		return 0
	}
	return int(c)
}

// Progression is the runner's persistent economy: the lifetime wallet and
// the level of each upgrade. It survives across runs.
type Progression struct {
	Coins  int
	Levels [upgradeCount]int
}

// Level returns the purchased level of an upgrade.
func (p Progression) Level(k UpgradeKind) int {
	if k < 0 || k >= upgradeCount {
		return 0
	}
	return p.Levels[k]
}

// NextCost returns the price of the next level of an upgrade.
func (p Progression) NextCost(u config.DinoUpgrades, k UpgradeKind) int {
	return Cost(UpgradeConfig(u, k), p.Level(k))
}

// Earn adds coins to the wallet, saturating at MaxCoins.
func (p *Progression) Earn(n int) {
	if n <= 0 {
		return
	}
	if p.Coins > MaxCoins-n {
		p.Coins = MaxCoins
		return
	}
	p.Coins += n
}

// Purchase buys the next level of an upgrade. It succeeds iff the wallet
// covers the cost; a failed purchase leaves the progression untouched.
func (p *Progression) Purchase(u config.DinoUpgrades, k UpgradeKind) bool {
	if k < 0 || k >= upgradeCount {
		return false
	}
	cost := p.NextCost(u, k)
	if p.Coins < cost {
		return false
	}
	p.Coins -= cost
	p.Levels[k]++
	return true
}

// ProgressionStore persists the wallet, upgrade levels and best score.
// Earnings are credited as increments and purchases run in a single
// transaction, so several sessions can share one wallet. The storage
// package satisfies it.
type ProgressionStore interface {
	LoadProgression(gameID string) (coins int, levels map[string]int, err error)
	AddCoins(gameID string, delta int) (balance int, err error)
	UpdateProgression(gameID string, fn func(coins int, levels map[string]int) (int, map[string]int, bool)) error
	HighScore(gameID string) (int, error)
}

// LoadProgression reads the runner's progression from a store.
// Unknown upgrade names are ignored and values are clamped into range.
func LoadProgression(store ProgressionStore) (Progression, error) {
	coins, levels, err := store.LoadProgression(gameID)
	if err != nil {
		return Progression{}, fmt.Errorf("dino: load progression: %w", err)
	}
	return progressionFrom(coins, levels), nil
}

func progressionFrom(coins int, levels map[string]int) Progression {
	var p Progression
	p.Earn(coins)
	for name, lvl := range levels {
		if k, ok := ParseUpgrade(name); ok && lvl > 0 {
			p.Levels[k] = lvl
		}
	}
	return p
}

func (p Progression) levelMap() map[string]int {
	levels := make(map[string]int, upgradeCount)
	for _, k := range UpgradeKinds() {
		levels[k.String()] = p.Level(k)
	}
	return levels
}

// Buy purchases the next level of an upgrade against the stored wallet.
// The balance check and the debit happen in one store transaction, so a
// wallet is never spent twice. It returns the progression as stored after
// the attempt and whether the purchase went through.
func Buy(store ProgressionStore, u config.DinoUpgrades, k UpgradeKind) (Progression, bool, error) {
	var (
		after  Progression
		bought bool
	)
	err := store.UpdateProgression(gameID, func(coins int, levels map[string]int) (int, map[string]int, bool) {
		after = progressionFrom(coins, levels)
		bought = after.Purchase(u, k)
		return after.Coins, after.levelMap(), bought
	})
	if err != nil {
		return Progression{}, false, fmt.Errorf("dino: buy %s: %w", k, err)
	}
	return after, bought, nil
}

// ShopPrices returns the upgrade tables the next run will use, honoring
// the config path and difficulty preset.
func ShopPrices() config.DinoUpgrades {
	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDinoPreset(&cfg, difficultyPreset)
	}
	return cfg.Upgrades
}

// CurrentLook returns the theme and skin the next run will use.
func CurrentLook() (Theme, Skin) {
	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	if themeID != "" {
		cfg.Theme = themeID
	}
	if skinID != "" {
		cfg.Skin = skinID
	}
	t, _ := ThemeByID(cfg.Theme)
	s, _ := SkinByID(cfg.Skin)
	return t, s
}
