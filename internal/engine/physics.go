// Package engine holds the simulation pieces shared by both games: the
// physics integrator, the injected random source, the audio cue seam and the
// fixed-rate scheduler that drives ticks.
package engine

import "github.com/vovakirdan/dash-arena/internal/core"

// Body is a movable actor in world units.
type Body struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	Grounded bool
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// ApplyGravity accumulates gravity into vertical velocity.
func (b *Body) ApplyGravity(g float64) {
	b.VY += g
}

// Integrate advances position by one Euler step.
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// Land clamps the body to the ground line groundY (the y of the floor
// surface). A body whose bottom reaches or passes the line is snapped onto
// it with zero vertical velocity and becomes grounded; otherwise it is
// airborne. Reports whether the body is grounded afterwards.
func (b *Body) Land(groundY float64) bool {
	if b.Y+b.H >= groundY {
		b.Y = groundY - b.H
		b.VY = 0
		b.Grounded = true
	} else {
		b.Grounded = false
	}
	return b.Grounded
}

// ClampX keeps the body horizontally inside [minX, maxX-W].
func (b *Body) ClampX(minX, maxX float64) {
	b.X = core.ClampF(b.X, minX, maxX-b.W)
}

// Launch gives a grounded body an upward velocity.
// Returns false when the body is airborne and nothing changed.
func (b *Body) Launch(vy float64) bool {
	if !b.Grounded {
		return false
	}
	b.VY = vy
	b.Grounded = false
	return true
}
