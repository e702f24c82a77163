package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

//go:embed defaults/fighter.yaml
var defaultFighterYAML []byte

// DefaultDinoConfig returns the hardcoded runner configuration.
// It mirrors defaults/dino.yaml and is used if the embedded file fails to parse.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: DinoWorld{
			Width:        800,
			Height:       400,
			GroundHeight: 50,
		},
		Physics: DinoPhysics{
			Gravity:   0.8,
			BaseSpeed: 9,
			JumpForce: -11.5,
		},
		Player: DinoPlayer{
			X:           50,
			Width:       44,
			Height:      47,
			DuckHeight:  25,
			HitboxInset: 5,
		},
		Spawn: DinoSpawn{
			BaseChance:     0.01,
			LevelChance:    0.001,
			MinGapBase:     200,
			MinGapPerSpeed: 10,
			BirdSpeedBonus: 2,
			HitboxInset:    2,
			BirdLevel:      2,
			RiverLevel:     4,
		},
		Coins: DinoCoins{
			Width:             24,
			Height:            24,
			SpawnChance:       0.02,
			BlueChance:        0.05,
			GroundClearance:   10,
			AirLift:           120,
			ObstacleClearance: 150,
			CoinClearance:     50,
			MagnetPull:        0.15,
			FloatStep:         0.1,
		},
		Progression: DinoProgression{
			LevelDuration:    15,
			MaxLevels:        80,
			SpeedPerLevel:    0.5,
			ScorePerObstacle: 10,
			NominalTickRate:  60,
		},
		Upgrades: DinoUpgrades{
			Jump:   UpgradeConfig{Name: "Moon Boots", BaseCost: 10, CostMult: 1.5, Bonus: 0.08},
			Speed:  UpgradeConfig{Name: "Time Snail", BaseCost: 10, CostMult: 1.5, Bonus: 0.05},
			Magnet: UpgradeConfig{Name: "Magnetic Skin", BaseCost: 20, CostMult: 1.6, Bonus: 40, BaseRadius: 100},
		},
		Theme: "desert",
		Skin:  "classic",
	}
}

// DefaultFighterConfig returns the hardcoded fighter configuration.
func DefaultFighterConfig() FighterConfig {
	return FighterConfig{
		Arena: FighterArena{Width: 1000, Height: 500, GroundY: 400},
		Body:  FighterBody{Width: 60, Height: 120, StartInset: 150},
		Physics: FighterPhysics{
			MoveSpeed: 5,
			JumpForce: -15,
			Gravity:   0.6,
		},
		Attack:  FighterMove{Damage: 10, Range: 80, Duration: 20, ActiveOffset: 5},
		Special: FighterMove{Damage: 30, Range: 120, Duration: 40, ActiveOffset: 10, Cost: 50},
		Combat: FighterCombat{
			MaxHealth:       100,
			MaxEnergy:       100,
			EnergyRegen:     0.15,
			HitStun:         15,
			BlockReduction:  0.8,
			BlockEnergyGain: 10,
		},
		Round: FighterRound{Time: 60, TickRate: 60},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dino":
		return defaultDinoYAML
	case "fighter":
		return defaultFighterYAML
	default:
		return nil
	}
}
