package dino

import (
	"math"
	"testing"

	"github.com/vovakirdan/dash-arena/internal/config"
)

func TestLevelAt(t *testing.T) {
	p := config.DefaultDinoConfig().Progression
	tests := []struct {
		elapsed float64
		want    int
	}{
		{0, 1},
		{14.99, 1},
		{15, 2},
		{31, 3},
		{1e6, 80},
	}
	for _, tc := range tests {
		if got := LevelAt(tc.elapsed, p); got != tc.want {
			t.Errorf("LevelAt(%v) = %d, expected %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestSpeedFor(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	tests := []struct {
		level, speedLvl int
		want            float64
	}{
		{1, 0, 9.5},
		{2, 0, 10},
		{1, 1, 9.5 * 0.95},
		{80, 0, 49},
	}
	for _, tc := range tests {
		if got := SpeedFor(tc.level, tc.speedLvl, cfg); math.Abs(got-tc.want) > eps {
			t.Errorf("SpeedFor(%d, %d) = %v, expected %v", tc.level, tc.speedLvl, got, tc.want)
		}
	}

	// Multiplier stays positive at any level
	if m := SpeedMultiplier(cfg.Upgrades.Speed, 500); m <= 0 {
		t.Errorf("SpeedMultiplier(500) = %v, expected > 0", m)
	}
}

func TestCostTable(t *testing.T) {
	u := config.DefaultDinoConfig().Upgrades
	tests := []struct {
		kind  UpgradeKind
		level int
		want  int
	}{
		{UpgradeJump, 0, 10},
		{UpgradeJump, 1, 15},
		{UpgradeJump, 2, 22},
		{UpgradeJump, 3, 33},
		{UpgradeMagnet, 0, 20},
		{UpgradeMagnet, 1, 32},
		{UpgradeMagnet, 2, 51},
	}
	for _, tc := range tests {
		if got := Cost(UpgradeConfig(u, tc.kind), tc.level); got != tc.want {
			t.Errorf("Cost(%v, %d) = %d, expected %d", tc.kind, tc.level, got, tc.want)
		}
	}
}

func TestCostMonotonic(t *testing.T) {
	u := config.DefaultDinoConfig().Upgrades
	for _, k := range UpgradeKinds() {
		prev := -1
		for n := 0; n <= 200; n++ {
			c := Cost(UpgradeConfig(u, k), n)
			if c < prev {
				t.Fatalf("%v: cost(%d)=%d < cost(%d)=%d", k, n, c, n-1, prev)
			}
			prev = c
		}
		if prev <= MaxCoins {
			t.Errorf("%v: far levels should be unaffordable, got %d", k, prev)
		}
	}
}

func TestPurchaseIsAtomic(t *testing.T) {
	u := config.DefaultDinoConfig().Upgrades
	p := Progression{Coins: 14}

	if !p.Purchase(u, UpgradeJump) {
		t.Fatal("affordable purchase should succeed")
	}
	if p.Coins != 4 || p.Level(UpgradeJump) != 1 {
		t.Errorf("after purchase: %+v", p)
	}

	before := p
	if p.Purchase(u, UpgradeJump) {
		t.Fatal("unaffordable purchase should fail")
	}
	if p != before {
		t.Errorf("failed purchase mutated progression: %+v", p)
	}
}

func TestEarnSaturates(t *testing.T) {
	p := Progression{Coins: MaxCoins - 1}
	p.Earn(5)
	if p.Coins != MaxCoins {
		t.Errorf("coins = %d, expected cap %d", p.Coins, MaxCoins)
	}
	p.Earn(-3)
	if p.Coins != MaxCoins {
		t.Error("negative earnings should be ignored")
	}
}

func TestParseUpgrade(t *testing.T) {
	for _, k := range UpgradeKinds() {
		got, ok := ParseUpgrade(k.String())
		if !ok || got != k {
			t.Errorf("ParseUpgrade(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseUpgrade("laser"); ok {
		t.Error("unknown upgrade should not parse")
	}
}

func TestThemeAndSkinLookup(t *testing.T) {
	if th, ok := ThemeByID("NEON"); !ok || th.Name != "Neon City" {
		t.Errorf("ThemeByID(NEON) = %+v, %v", th, ok)
	}
	if th, ok := ThemeByID("moon"); ok || th.ID != "desert" {
		t.Errorf("unknown theme should fall back to desert, got %+v", th)
	}
	if s, ok := SkinByID("red"); !ok || s.Name != "Red Rex" {
		t.Errorf("SkinByID(red) = %+v, %v", s, ok)
	}
	if len(Themes()) != 4 || len(Skins()) != 5 {
		t.Error("unexpected catalog size")
	}
}
