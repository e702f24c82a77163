package dino

import (
	"math"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// CoinKind distinguishes currency from power-ups.
type CoinKind int

const (
	CoinGold CoinKind = iota
	CoinBlue
)

func (k CoinKind) String() string {
	if k == CoinBlue {
		return "blue"
	}
	return "gold"
}

// Coin is a collectible. Blue coins grant a shield and carry no value.
type Coin struct {
	Kind  CoinKind
	X, Y  float64
	W, H  float64
	Value int
	Float float64 // bob animation phase
}

// Box returns the coin's bounding box.
func (c Coin) Box() core.Box {
	return core.Box{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// spawnCoin may append one coin at ground height or up on the jump arc.
func (g *Game) spawnCoin() {
	cc := g.cfg.Coins
	width := g.cfg.World.Width

	if n := len(g.obstacles); n > 0 && g.obstacles[n-1].X > width-cc.ObstacleClearance {
		return
	}
	if n := len(g.coins); n > 0 && g.coins[n-1].X > width-cc.CoinClearance {
		return
	}
	if g.rng.Float64() > cc.SpawnChance {
		return
	}

	kind, value := CoinGold, 1
	if g.rng.Float64() < cc.BlueChance {
		kind, value = CoinBlue, 0
	}

	groundY := g.cfg.World.Height - g.cfg.World.GroundHeight - cc.Height - cc.GroundClearance
	y := groundY
	if g.rng.Float64() > 0.5 {
		y = groundY - cc.AirLift
	}

	g.coins = append(g.coins, Coin{
		Kind:  kind,
		X:     width,
		Y:     y,
		W:     cc.Width,
		H:     cc.Height,
		Value: value,
		Float: g.rng.Float64() * 2 * math.Pi,
	})
}

// updateCoins pulls coins toward the runner when the magnet is owned,
// scrolls them and resolves collection against the full body box.
func (g *Game) updateCoins() {
	cc := g.cfg.Coins
	magnet := g.progress.Level(UpgradeMagnet)
	radius := MagnetRadius(g.cfg.Upgrades.Magnet, magnet)
	body := g.dino.Box()
	kept := g.coins[:0]

	for _, c := range g.coins {
		if magnet > 0 {
			dx := body.CenterX() - c.Box().CenterX()
			dy := body.CenterY() - c.Box().CenterY()
			if math.Hypot(dx, dy) < radius {
				c.X += dx * cc.MagnetPull
				c.Y += dy * cc.MagnetPull
			}
		}

		c.X -= g.speed
		c.Float += cc.FloatStep

		if body.Overlaps(c.Box()) {
			g.collect(c)
			continue
		}
		if c.X+c.W < 0 {
			continue
		}
		kept = append(kept, c)
	}

	clearTail(g.coins, len(kept))
	g.coins = kept
}

// collect applies a coin. A second shield does not stack.
func (g *Game) collect(c Coin) {
	switch c.Kind {
	case CoinBlue:
		g.dino.Shield = true
	default:
		g.runCoins += c.Value
		g.unsaved += c.Value
		g.progress.Earn(c.Value)
	}
	g.cue(core.CueCoin)
}
