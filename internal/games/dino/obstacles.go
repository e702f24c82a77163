package dino

import (
	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
)

// ObstacleKind is the closed set of hazards.
type ObstacleKind int

const (
	CactusSmall ObstacleKind = iota
	CactusLarge
	Bird
	River
	obstacleKindCount
)

var obstacleNames = [...]string{"cactus_small", "cactus_large", "bird", "river"}

func (k ObstacleKind) String() string {
	if k < 0 || k >= obstacleKindCount {
		return "unknown"
	}
	return obstacleNames[k]
}

// Size returns the fixed width and height of a kind.
func (k ObstacleKind) Size() (w, h float64) {
	switch k {
	case CactusLarge:
		return 30, 60
	case Bird:
		return 40, 30
	case River:
		return 120, 20
	default:
		return 20, 40
	}
}

// Obstacle is a hazard scrolling toward the runner. Its velocity is fixed
// when it spawns, so it keeps the pace of the level it was born in.
type Obstacle struct {
	Kind  ObstacleKind
	X, Y  float64
	W, H  float64
	VX    float64
	Color core.Color
}

// Box returns the obstacle's nominal bounding box.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// pickObstacleKind maps a roll to a kind. Rivers unlock after birds, so
// their band is checked first or it would be shadowed by the bird band.
func pickObstacleKind(level int, r float64, sp config.DinoSpawn) ObstacleKind {
	switch {
	case level > sp.RiverLevel && r > 0.9:
		return River
	case level > sp.BirdLevel && r > 0.7:
		return Bird
	case r > 0.5:
		return CactusLarge
	default:
		return CactusSmall
	}
}

// newObstacle builds an obstacle of a kind at the right edge of the world.
// Rivers sit in the ground band below the runner's feet.
func newObstacle(kind ObstacleKind, cfg config.DinoConfig, speed float64, rng engine.RNG, theme Theme) Obstacle {
	groundY := cfg.World.Height - cfg.World.GroundHeight
	w, h := kind.Size()
	o := Obstacle{
		Kind:  kind,
		X:     cfg.World.Width,
		W:     w,
		H:     h,
		VX:    -speed,
		Color: theme.Obstacles[kind],
	}
	switch kind {
	case Bird:
		o.Y = groundY - 80 - rng.Float64()*40
		o.VX = -(speed + cfg.Spawn.BirdSpeedBonus)
	case River:
		o.Y = groundY
	default:
		o.Y = groundY - h
	}
	return o
}

// spawnObstacle may append one obstacle. The gap check looks only at the
// newest obstacle since the list is ordered by spawn time. An empty list
// always spawns, but the chance roll is drawn either way.
func (g *Game) spawnObstacle() {
	sp := g.cfg.Spawn
	width := g.cfg.World.Width

	if n := len(g.obstacles); n > 0 {
		last := g.obstacles[n-1]
		if width-last.X < sp.MinGapBase+g.speed*sp.MinGapPerSpeed {
			return
		}
	}

	chance := sp.BaseChance + float64(g.level)*sp.LevelChance
	if g.rng.Float64() > chance && len(g.obstacles) > 0 {
		return
	}

	kind := pickObstacleKind(g.level, g.rng.Float64(), sp)
	g.obstacles = append(g.obstacles, newObstacle(kind, g.cfg, g.speed, g.rng, g.theme))
}

// updateObstacles moves obstacles, resolves collisions and retires the
// ones that left the screen. Both hitboxes are inset for forgiveness.
func (g *Game) updateObstacles() {
	hitbox := g.dino.Hitbox(g.cfg.Player.HitboxInset)
	kept := g.obstacles[:0]

	for _, o := range g.obstacles {
		o.X += o.VX

		if !g.gameOver && hitbox.Overlaps(o.Box().Inset(g.cfg.Spawn.HitboxInset)) {
			if g.dino.Shield {
				g.dino.Shield = false
				g.cue(core.CueShieldBreak)
				continue
			}
			g.gameOver = true
			g.cue(core.CueGameOver)
		}

		if o.X+o.W < 0 {
			g.score += g.cfg.Progression.ScorePerObstacle
			continue
		}
		kept = append(kept, o)
	}

	clearTail(g.obstacles, len(kept))
	g.obstacles = kept
}

// clearTail zeroes the abandoned tail after an in-place filter.
func clearTail[T any](s []T, n int) {
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
}
