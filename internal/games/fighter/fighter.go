package fighter

import (
	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
)

// State is a fighter's discrete state. Exactly one is active at a time.
type State int

const (
	StateIdle State = iota
	StateWalk
	StateJump
	StateAttack
	StateSpecial
	StateBlock
	StateHit
	StateKO
)

var stateNames = [...]string{"idle", "walk", "jump", "attack", "special", "block", "hit", "ko"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Fighter is one combatant. Position is the top-left of the body box.
type Fighter struct {
	engine.Body
	Health     int
	MaxHealth  int
	Energy     float64
	MaxEnergy  float64
	Facing     int // 1 faces right, -1 faces left
	State      State
	StateTimer int
	Blocking   bool
	Combo      int

	swingLanded bool
}

func newFighter(x float64, facing int, cfg config.FighterConfig) Fighter {
	return Fighter{
		Body: engine.Body{
			X:        x,
			Y:        cfg.Arena.GroundY - cfg.Body.Height,
			W:        cfg.Body.Width,
			H:        cfg.Body.Height,
			Grounded: true,
		},
		Health:    cfg.Combat.MaxHealth,
		MaxHealth: cfg.Combat.MaxHealth,
		MaxEnergy: cfg.Combat.MaxEnergy,
		Facing:    facing,
		State:     StateIdle,
	}
}

// enter switches to a timed state. Entering clears the landed flag so
// each activation of a move can connect once.
func (f *Fighter) enter(s State, frames int) {
	f.State = s
	f.StateTimer = frames
	f.swingLanded = false
}

// ko ends the fighter's part in the match. It is terminal; a running
// stun timer still counts down but never leaves ko.
func (f *Fighter) ko() {
	f.State = StateKO
	f.Blocking = false
}

func (f *Fighter) gainEnergy(n float64) {
	f.Energy = core.ClampF(f.Energy+n, 0, f.MaxEnergy)
}

// applyInput turns held actions into intent. Stunned and knocked out
// fighters ignore input, and a running state timer locks the fighter
// into its current move.
func (f *Fighter) applyInput(in core.InputFrame, cfg config.FighterConfig) (jumped bool) {
	if f.State == StateKO || f.State == StateHit {
		return false
	}
	if f.StateTimer > 0 {
		return false
	}

	f.VX = 0
	if in.Has(core.ActionLeft) {
		f.VX = -cfg.Physics.MoveSpeed
		f.State = StateWalk
	}
	if in.Has(core.ActionRight) {
		f.VX = cfg.Physics.MoveSpeed
		f.State = StateWalk
	}

	if in.Has(core.ActionJump) && f.Launch(cfg.Physics.JumpForce) {
		f.State = StateJump
		jumped = true
	}

	f.Blocking = in.Has(core.ActionBlock)
	if f.Blocking {
		f.State = StateBlock
		f.VX = 0
	}

	if in.Has(core.ActionAttack) && !f.Blocking {
		f.enter(StateAttack, cfg.Attack.Duration)
	}
	if in.Has(core.ActionSpecial) && !f.Blocking && f.Energy >= cfg.Special.Cost {
		f.enter(StateSpecial, cfg.Special.Duration)
		f.Energy -= cfg.Special.Cost
	}

	if f.VX == 0 && f.Grounded && !f.Blocking && f.State != StateAttack && f.State != StateSpecial {
		f.State = StateIdle
	}
	return jumped
}

// face turns the fighter toward its opponent. It runs every tick, even
// mid-swing or in hit-stun; only a knocked out fighter keeps its facing.
func (f *Fighter) face(opp *Fighter) {
	if f.State == StateKO {
		return
	}
	if opp.X > f.X {
		f.Facing = 1
	} else {
		f.Facing = -1
	}
}

// step integrates one physics tick, counts down the state timer and
// regenerates energy.
func (f *Fighter) step(cfg config.FighterConfig) {
	f.ApplyGravity(cfg.Physics.Gravity)
	f.Integrate()
	f.Land(cfg.Arena.GroundY)
	f.ClampX(0, cfg.Arena.Width)

	if f.StateTimer > 0 {
		f.StateTimer--
		if f.StateTimer <= 0 && f.State != StateKO {
			f.State = StateIdle
		}
	}

	f.gainEnergy(cfg.Combat.EnergyRegen)
}
