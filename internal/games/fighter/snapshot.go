package fighter

import "github.com/vovakirdan/dash-arena/internal/core"

// Snapshot is an immutable copy of a match frame. Fighters are values, so
// the copy is independent of the simulation.
type Snapshot struct {
	ArenaWidth  float64
	ArenaHeight float64
	GroundY     float64

	P1, P2   Fighter
	TimeLeft int
	Winner   Outcome
	Paused   bool
	Tick     int

	AttackRange  float64
	SpecialRange float64
	SpecialCost  float64
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ArenaWidth:   g.cfg.Arena.Width,
		ArenaHeight:  g.cfg.Arena.Height,
		GroundY:      g.cfg.Arena.GroundY,
		P1:           g.p1,
		P2:           g.p2,
		TimeLeft:     g.timeLeft,
		Winner:       g.winner,
		Paused:       g.paused,
		Tick:         g.ticks,
		AttackRange:  g.cfg.Attack.Range,
		SpecialRange: g.cfg.Special.Range,
		SpecialCost:  g.cfg.Special.Cost,
	}
}

// Player returns the fighter in a player slot.
func (s Snapshot) Player(id core.PlayerID) Fighter {
	if id == core.Player2 {
		return s.P2
	}
	return s.P1
}
