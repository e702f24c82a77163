// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

// DinoConfig contains all configuration for the Dino Dash runner.
// Distances are in world pixels; the world is scaled to the terminal at
// render time only.
type DinoConfig struct {
	World       DinoWorld       `yaml:"world"`
	Physics     DinoPhysics     `yaml:"physics"`
	Player      DinoPlayer      `yaml:"player"`
	Spawn       DinoSpawn       `yaml:"spawn"`
	Coins       DinoCoins       `yaml:"coins"`
	Progression DinoProgression `yaml:"progression"`
	Upgrades    DinoUpgrades    `yaml:"upgrades"`
	Theme       string          `yaml:"theme"`
	Skin        string          `yaml:"skin"`
}

// DinoWorld defines the simulated playfield.
type DinoWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// DinoPhysics defines per-tick physics constants.
type DinoPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	BaseSpeed float64 `yaml:"base_speed"`
	JumpForce float64 `yaml:"jump_force"`
}

// DinoPlayer defines the runner's body.
type DinoPlayer struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DuckHeight  float64 `yaml:"duck_height"`
	HitboxInset float64 `yaml:"hitbox_inset"`
}

// DinoSpawn defines obstacle generation.
type DinoSpawn struct {
	BaseChance     float64 `yaml:"base_chance"`
	LevelChance    float64 `yaml:"level_chance"`
	MinGapBase     float64 `yaml:"min_gap_base"`
	MinGapPerSpeed float64 `yaml:"min_gap_per_speed"`
	BirdSpeedBonus float64 `yaml:"bird_speed_bonus"`
	HitboxInset    float64 `yaml:"hitbox_inset"`
	BirdLevel      int     `yaml:"bird_level"`
	RiverLevel     int     `yaml:"river_level"`
}

// DinoCoins defines collectible generation and the magnet pull.
type DinoCoins struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	SpawnChance       float64 `yaml:"spawn_chance"`
	BlueChance        float64 `yaml:"blue_chance"`
	GroundClearance   float64 `yaml:"ground_clearance"`
	AirLift           float64 `yaml:"air_lift"`
	ObstacleClearance float64 `yaml:"obstacle_clearance"`
	CoinClearance     float64 `yaml:"coin_clearance"`
	MagnetPull        float64 `yaml:"magnet_pull"`
	FloatStep         float64 `yaml:"float_step"`
}

// DinoProgression defines level and score pacing.
type DinoProgression struct {
	LevelDuration    float64 `yaml:"level_duration"` // seconds per level
	MaxLevels        int     `yaml:"max_levels"`
	SpeedPerLevel    float64 `yaml:"speed_per_level"`
	ScorePerObstacle int     `yaml:"score_per_obstacle"`
	NominalTickRate  int     `yaml:"nominal_tick_rate"` // ticks counted as one second
}

// DinoUpgrades holds the shop's upgrade tables.
type DinoUpgrades struct {
	Jump   UpgradeConfig `yaml:"jump"`
	Speed  UpgradeConfig `yaml:"speed"`
	Magnet UpgradeConfig `yaml:"magnet"`
}

// UpgradeConfig prices one upgrade kind and sets its per-level effect.
type UpgradeConfig struct {
	Name       string  `yaml:"name"`
	BaseCost   float64 `yaml:"base_cost"`
	CostMult   float64 `yaml:"cost_mult"`
	Bonus      float64 `yaml:"bonus"`
	BaseRadius float64 `yaml:"base_radius,omitempty"`
}

// FighterConfig contains all configuration for the Fighting Arena.
type FighterConfig struct {
	Arena   FighterArena   `yaml:"arena"`
	Body    FighterBody    `yaml:"body"`
	Physics FighterPhysics `yaml:"physics"`
	Attack  FighterMove    `yaml:"attack"`
	Special FighterMove    `yaml:"special"`
	Combat  FighterCombat  `yaml:"combat"`
	Round   FighterRound   `yaml:"round"`
}

// FighterArena defines the stage bounds.
type FighterArena struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// FighterBody defines fighter size and start placement.
type FighterBody struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	StartInset float64 `yaml:"start_inset"`
}

// FighterPhysics defines movement constants.
type FighterPhysics struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpForce float64 `yaml:"jump_force"`
	Gravity   float64 `yaml:"gravity"`
}

// FighterMove describes an attack. The hit lands only on the tick where
// the remaining state timer equals Duration-ActiveOffset.
type FighterMove struct {
	Damage       int     `yaml:"damage"`
	Range        float64 `yaml:"range"`
	Duration     int     `yaml:"duration"`
	ActiveOffset int     `yaml:"active_offset"`
	Cost         float64 `yaml:"cost,omitempty"`
}

// FighterCombat defines health, energy and blocking.
type FighterCombat struct {
	MaxHealth       int     `yaml:"max_health"`
	MaxEnergy       float64 `yaml:"max_energy"`
	EnergyRegen     float64 `yaml:"energy_regen"`
	HitStun         int     `yaml:"hit_stun"`
	BlockReduction  float64 `yaml:"block_reduction"`
	BlockEnergyGain float64 `yaml:"block_energy_gain"`
}

// FighterRound defines match timing.
type FighterRound struct {
	Time     int `yaml:"time"`      // seconds
	TickRate int `yaml:"tick_rate"` // physics ticks per second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}
