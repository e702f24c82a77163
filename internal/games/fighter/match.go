// Package fighter implements Fighting Arena, a two-player local fighting
// game. Physics runs on the fixed tick while the round clock counts down
// on its own one-second timer.
package fighter

import (
	"io"

	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/registry"
)

const gameID = "fighter"

// Outcome is the result of a match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeP1
	OutcomeP2
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeP1:
		return "p1"
	case OutcomeP2:
		return "p2"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Brain chooses inputs for a computer-controlled fighter.
type Brain interface {
	Decide(s Snapshot, self core.PlayerID) core.InputFrame
}

// BrainFunc adapts a plain function to Brain.
type BrainFunc func(s Snapshot, self core.PlayerID) core.InputFrame

// Decide calls f.
func (f BrainFunc) Decide(s Snapshot, self core.PlayerID) core.InputFrame {
	return f(s, self)
}

// Game implements the Fighting Arena match.
type Game struct {
	cfg     config.FighterConfig
	runtime core.RuntimeConfig

	p1, p2   Fighter
	timeLeft int
	winner   Outcome
	paused   bool
	ticks    int

	cpu      Brain
	cpuMaker func() Brain
	cues     []core.Cue
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// UseCPU makes player 2 computer-controlled. Each match gets a fresh
// brain from the factory; a nil factory restores two human players.
// It takes effect at the next Reset.
func (g *Game) UseCPU(factory func() Brain) {
	g.cpuMaker = factory
}

// New creates a new Fighting Arena game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fighting Arena"
}

// Players reports that two fighters share the keyboard.
func (g *Game) Players() int {
	return 2
}

// Reset starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFighter(configPath)
	if err != nil {
		cfg = config.DefaultFighterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFighterPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.p1 = newFighter(cfg.Body.StartInset, 1, cfg)
	g.p2 = newFighter(cfg.Arena.Width-cfg.Body.StartInset-cfg.Body.Width, -1, cfg)
	g.timeLeft = cfg.Round.Time
	g.winner = OutcomeNone
	g.paused = false
	g.ticks = 0
	g.cues = nil

	g.closeCPU()
	if g.cpuMaker != nil {
		g.cpu = g.cpuMaker()
	}
}

// Step advances physics and combat by one tick.
// Order: P1 input, P2 input, physics for both, facing for both, P1's
// swing, P2's swing, then win resolution.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.cues = nil
	if g.winner != OutcomeNone {
		return core.StepResult{State: g.State()}
	}

	if in.P1.Has(core.ActionPause) || in.P2.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	in1, in2 := in.P1, in.P2
	if g.cpu != nil {
		in2 = g.cpu.Decide(g.Snapshot(), core.Player2)
	}

	if g.p1.applyInput(in1, g.cfg) {
		g.cue(core.CueJump)
	}
	if g.p2.applyInput(in2, g.cfg) {
		g.cue(core.CueJump)
	}

	g.p1.step(g.cfg)
	g.p2.step(g.cfg)
	g.p1.face(&g.p2)
	g.p2.face(&g.p1)

	g.cues = append(g.cues, resolveHit(&g.p1, &g.p2, g.cfg)...)
	g.cues = append(g.cues, resolveHit(&g.p2, &g.p1, g.cfg)...)

	g.winner = decideWinner(&g.p1, &g.p2, g.timeLeft)
	g.ticks++

	return core.StepResult{State: g.State(), Cues: g.cues}
}

// ClockTick counts the round clock down by one second.
// The clock stops with pause and once the match is decided.
func (g *Game) ClockTick() core.StepResult {
	g.cues = nil
	if g.winner != OutcomeNone || g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.timeLeft > 0 {
		g.timeLeft--
	}
	g.winner = decideWinner(&g.p1, &g.p2, g.timeLeft)
	return core.StepResult{State: g.State()}
}

// SetPaused sets the pause flag directly.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// decideWinner applies the win rules in order: a knocked out P1 loses,
// then a knocked out P2 loses, then at time out the healthier fighter
// wins and equal health is a draw.
func decideWinner(p1, p2 *Fighter, timeLeft int) Outcome {
	switch {
	case p1.Health <= 0:
		return OutcomeP2
	case p2.Health <= 0:
		return OutcomeP1
	case timeLeft <= 0:
		switch {
		case p1.Health > p2.Health:
			return OutcomeP1
		case p2.Health > p1.Health:
			return OutcomeP2
		default:
			return OutcomeDraw
		}
	default:
		return OutcomeNone
	}
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

// Winner returns the match outcome so far.
func (g *Game) Winner() Outcome {
	return g.winner
}

// TimeLeft returns the seconds remaining on the round clock.
func (g *Game) TimeLeft() int {
	return g.timeLeft
}

// State returns the current game state. Score is the winner's remaining
// health, and zero for a draw or an undecided match.
func (g *Game) State() core.GameState {
	score := 0
	switch g.winner {
	case OutcomeP1:
		score = g.p1.Health
	case OutcomeP2:
		score = g.p2.Health
	}
	return core.GameState{
		Score:    score,
		GameOver: g.winner != OutcomeNone,
		Paused:   g.paused,
	}
}

// Result summarizes a finished match for storage.
type Result struct {
	Winner   Outcome
	P1Health int
	P2Health int
	TimeLeft int
	Ticks    int
	CPU      bool
}

// Result returns the match summary.
func (g *Game) Result() Result {
	return Result{
		Winner:   g.winner,
		P1Health: g.p1.Health,
		P2Health: g.p2.Health,
		TimeLeft: g.timeLeft,
		Ticks:    g.ticks,
		CPU:      g.cpu != nil,
	}
}

// Close releases the computer brain, if it holds resources.
func (g *Game) Close() error {
	return g.closeCPU()
}

func (g *Game) closeCPU() error {
	if c, ok := g.cpu.(io.Closer); ok {
		g.cpu = nil
		return c.Close()
	}
	g.cpu = nil
	return nil
}

// Register the game with the registry
func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
