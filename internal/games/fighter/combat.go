package fighter

import (
	"math"

	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/core"
)

// activeMove reports the move whose hit frame is this tick, if any.
func activeMove(f *Fighter, cfg config.FighterConfig) (config.FighterMove, bool) {
	switch {
	case f.State == StateAttack && f.StateTimer == cfg.Attack.Duration-cfg.Attack.ActiveOffset:
		return cfg.Attack, true
	case f.State == StateSpecial && f.StateTimer == cfg.Special.Duration-cfg.Special.ActiveOffset:
		return cfg.Special, true
	default:
		return config.FighterMove{}, false
	}
}

// facingToward reports whether a's facing points at d's center.
func facingToward(a, d *Fighter) bool {
	ac, dc := a.Box().CenterX(), d.Box().CenterX()
	if a.Facing == 1 {
		return dc > ac
	}
	return dc <= ac
}

// blockedDamage applies the block reduction. The small bias keeps
// products like 10*(1-0.8) from flooring a representation error away.
func blockedDamage(damage int, reduction float64) int {
	return int(math.Floor(float64(damage)*(1-reduction) + 1e-9))
}

// resolveHit lands a's swing on d when a is on its hit frame, in range
// and facing d. A swing connects at most once per activation. The
// attacker's combo resets once the defender has recovered.
func resolveHit(a, d *Fighter, cfg config.FighterConfig) []core.Cue {
	var cues []core.Cue

	if move, ok := activeMove(a, cfg); ok && !a.swingLanded {
		dist := math.Abs(a.Box().CenterX() - d.Box().CenterX())
		if dist <= move.Range && facingToward(a, d) {
			a.swingLanded = true
			damage := move.Damage

			if d.Blocking {
				damage = blockedDamage(damage, cfg.Combat.BlockReduction)
				d.gainEnergy(cfg.Combat.BlockEnergyGain)
				cues = append(cues, core.CueBlock)
			} else {
				d.enter(StateHit, cfg.Combat.HitStun)
				a.Combo++
				cues = append(cues, core.CueHit)
			}

			d.Health = core.Clamp(d.Health-damage, 0, d.MaxHealth)
			if d.Health <= 0 && d.State != StateKO {
				d.ko()
				cues = append(cues, core.CueKO)
			}
		}
	}

	if d.State != StateHit && d.StateTimer <= 0 {
		a.Combo = 0
	}
	return cues
}
