package dino

import (
	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
)

// Dino is the runner. Its x never changes; the world scrolls past it.
type Dino struct {
	engine.Body
	Ducking bool
	Shield  bool

	standH float64
	duckH  float64
}

func newDino(cfg config.DinoConfig) Dino {
	groundY := cfg.World.Height - cfg.World.GroundHeight
	return Dino{
		Body: engine.Body{
			X:        cfg.Player.X,
			Y:        groundY - cfg.Player.Height,
			W:        cfg.Player.Width,
			H:        cfg.Player.Height,
			Grounded: true,
		},
		standH: cfg.Player.Height,
		duckH:  cfg.Player.DuckHeight,
	}
}

// Jump launches a grounded dino. Returns false while airborne.
func (d *Dino) Jump(force float64) bool {
	return d.Launch(force)
}

// SetDucking shrinks or restores the body, shifting y by the height
// difference so the feet stay where they were. Velocity is untouched.
func (d *Dino) SetDucking(on bool) {
	if on == d.Ducking {
		return
	}
	delta := d.standH - d.duckH
	if on {
		d.H = d.duckH
		d.Y += delta
	} else {
		d.H = d.standH
		d.Y -= delta
	}
	d.Ducking = on
}

// Hitbox returns the body box shrunk by inset on every side.
func (d *Dino) Hitbox(inset float64) core.Box {
	return d.Box().Inset(inset)
}

// step applies gravity while airborne, integrates and lands on the ground.
func (d *Dino) step(gravity, groundY float64) {
	if !d.Grounded {
		d.ApplyGravity(gravity)
	}
	d.Y += d.VY
	d.Land(groundY)
}
