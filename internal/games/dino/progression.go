package dino

import (
	"math"

	"github.com/vovakirdan/dash-arena/internal/config"
)

// LevelAt returns the level reached after elapsed seconds of running.
// Levels start at 1 and are capped at MaxLevels.
func LevelAt(elapsed float64, p config.DinoProgression) int {
	maxLevels := p.MaxLevels
	if maxLevels < 1 {
		maxLevels = 1
	}
	if p.LevelDuration <= 0 || elapsed < 0 {
		return 1
	}
	level := int(math.Floor(elapsed/p.LevelDuration)) + 1
	if level > maxLevels {
		return maxLevels
	}
	return level
}

// SpeedFor returns the scroll speed for a level, slowed by the speed upgrade.
func SpeedFor(level, speedLevel int, cfg config.DinoConfig) float64 {
	base := cfg.Physics.BaseSpeed + float64(level)*cfg.Progression.SpeedPerLevel
	return base * SpeedMultiplier(cfg.Upgrades.Speed, speedLevel)
}

// StartSpeed is the scroll speed at the start of a run. The level-based
// formula only takes over at the first level change.
func StartSpeed(speedLevel int, cfg config.DinoConfig) float64 {
	return cfg.Physics.BaseSpeed * SpeedMultiplier(cfg.Upgrades.Speed, speedLevel)
}

// SpeedMultiplier decays exponentially so any upgrade level stays positive.
func SpeedMultiplier(u config.UpgradeConfig, level int) float64 {
	return math.Pow(1-u.Bonus, float64(level))
}

// JumpMultiplier scales the jump impulse linearly with the upgrade level.
func JumpMultiplier(u config.UpgradeConfig, level int) float64 {
	return 1 + float64(level)*u.Bonus
}

// MagnetRadius is the pull radius in world pixels for a magnet level.
func MagnetRadius(u config.UpgradeConfig, level int) float64 {
	return u.BaseRadius + float64(level)*u.Bonus
}
