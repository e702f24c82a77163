// Package dino implements Dino Dash, an endless runner with coins, a shop
// of upgrades and unlockable looks. The player jumps and ducks past
// procedurally spawned hazards while the world speeds up level by level.
package dino

import (
	"fmt"

	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
	"github.com/vovakirdan/dash-arena/internal/registry"
)

const gameID = "dino"

// Game implements the Dino Dash runner.
type Game struct {
	cfg     config.DinoConfig
	runtime core.RuntimeConfig
	rng     engine.RNG

	dino      Dino
	obstacles []Obstacle
	coins     []Coin

	speed    float64
	level    int
	ticks    int
	score    int
	runCoins int
	best     int
	newBest  bool
	gameOver bool
	paused   bool

	progress Progression
	unsaved  int // coins earned since the last Save
	store    ProgressionStore
	theme    Theme
	skin     Skin

	cues []core.Cue
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var themeID, skinID string
var progressStore ProgressionStore

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetTheme overrides the configured theme.
func SetTheme(id string) {
	themeID = id
}

// SetSkin overrides the configured skin.
func SetSkin(id string) {
	skinID = id
}

// SetProgressionStore sets where wallets and upgrades persist.
// Without a store progression lives only as long as the game value.
func SetProgressionStore(s ProgressionStore) {
	progressStore = s
}

// New creates a new Dino Dash game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Dash"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDinoPreset(&cfg, difficultyPreset)
	}
	if themeID != "" {
		cfg.Theme = themeID
	}
	if skinID != "" {
		cfg.Skin = skinID
	}
	g.cfg = cfg

	g.theme, _ = ThemeByID(cfg.Theme)
	g.skin, _ = SkinByID(cfg.Skin)
	g.rng = engine.NewRNG(runtime.Seed)

	g.store = progressStore
	if g.store != nil {
		// A failed flush keeps the coins pending on top of the reload
		_ = g.Save()
		if p, err := LoadProgression(g.store); err == nil {
			p.Earn(g.unsaved)
			g.progress = p
		}
		if best, err := g.store.HighScore(gameID); err == nil && best > g.best {
			g.best = best
		}
	}

	g.dino = newDino(cfg)
	g.obstacles = g.obstacles[:0]
	g.coins = g.coins[:0]
	g.speed = StartSpeed(g.progress.Level(UpgradeSpeed), cfg)
	g.level = 1
	g.ticks = 0
	g.score = 0
	g.runCoins = 0
	g.newBest = false
	g.gameOver = false
	g.paused = false
	g.cues = nil
}

// Step advances the game by one tick. The order is fixed: input, level,
// physics, spawning, coins, then obstacles.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.cues = nil
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	p := in.P1
	if p.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(p)
	g.updateLevel()
	g.dino.step(g.cfg.Physics.Gravity, g.groundY())
	g.spawnObstacle()
	g.spawnCoin()
	g.updateCoins()
	g.updateObstacles()

	if g.gameOver && g.score > g.best {
		g.best = g.score
		g.newBest = true
	}
	g.ticks++

	return core.StepResult{State: g.State(), Cues: g.cues}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		force := g.cfg.Physics.JumpForce * JumpMultiplier(g.cfg.Upgrades.Jump, g.progress.Level(UpgradeJump))
		if g.dino.Jump(force) {
			g.cue(core.CueJump)
		}
	}
	g.dino.SetDucking(in.Has(core.ActionDuck))
}

// updateLevel derives the level from elapsed run time. Speed only changes
// when the level does.
func (g *Game) updateLevel() {
	rate := g.cfg.Progression.NominalTickRate
	if rate <= 0 {
		rate = 60
	}
	level := LevelAt(float64(g.ticks)/float64(rate), g.cfg.Progression)
	if level != g.level {
		g.level = level
		g.speed = SpeedFor(level, g.progress.Level(UpgradeSpeed), g.cfg)
	}
}

func (g *Game) groundY() float64 {
	return g.cfg.World.Height - g.cfg.World.GroundHeight
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Progression returns a copy of the current wallet and upgrades.
func (g *Game) Progression() Progression {
	return g.progress
}

// Save credits the coins earned since the last save to the stored wallet
// and picks up the resulting balance. It is a no-op without a store.
func (g *Game) Save() error {
	if g.store == nil || g.unsaved == 0 {
		return nil
	}
	balance, err := g.store.AddCoins(gameID, g.unsaved)
	if err != nil {
		return fmt.Errorf("dino: save coins: %w", err)
	}
	g.unsaved = 0
	g.progress.Coins = 0
	g.progress.Earn(balance)
	return nil
}

// Register the game with the registry
func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
