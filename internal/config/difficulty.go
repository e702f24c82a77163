package config

// ApplyDinoPreset tunes the runner for a difficulty preset.
// Easy levels up slower with sparser obstacles, hard the reverse.
// Fixed pins the run at level one.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.LevelDuration *= 4.0 / 3.0
		cfg.Spawn.BaseChance *= 0.8
	case DifficultyHard:
		cfg.Progression.LevelDuration *= 2.0 / 3.0
		cfg.Spawn.BaseChance *= 1.4
	case DifficultyFixed:
		cfg.Progression.MaxLevels = 1
	}
}

// ApplyFighterPreset tunes the fighter for a difficulty preset.
// Presets change round length and how quickly specials recharge.
func ApplyFighterPreset(cfg *FighterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Round.Time = 90
		cfg.Combat.EnergyRegen *= 1.5
	case DifficultyHard:
		cfg.Round.Time = 45
		cfg.Combat.EnergyRegen *= 0.66
	}
}
