package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Avatar is the falling player entity. Only Y moves; X is fixed at spawn.
type Avatar struct {
	X        float64 // Horizontal center, constant for the avatar's lifetime
	Y        float64 // Vertical center
	Velocity float64 // Vertical speed, positive is down
	Radius   float64 // Collision and draw radius
	Alive    bool    // Cleared by the ground or an obstacle, never set again
	Flaps    int     // Number of flaps this attempt
}

// NewAvatar returns an avatar at the default spawn position, at rest.
func NewAvatar() Avatar {
	return Avatar{
		X:      AvatarX,
		Y:      AvatarStartY,
		Radius: AvatarRadius,
		Alive:  true,
	}
}

// Flap overwrites the vertical velocity with the upward impulse.
func (a *Avatar) Flap() {
	a.Velocity = FlapImpulse
	a.Flaps++
}

// Advance applies one tick of gravity and integrates the position.
// Hitting the ceiling stops upward motion; reaching the ground kills the
// avatar and leaves its velocity as it was.
func (a *Avatar) Advance() {
	a.Velocity += Gravity
	a.Y += a.Velocity

	if a.Y < a.Ceiling() {
		a.Y = a.Ceiling()
		a.Velocity = 0
	}
	if a.Y > a.Floor() {
		a.Y = a.Floor()
		a.Alive = false
	}
}

// Ceiling is the smallest legal Y.
func (a *Avatar) Ceiling() float64 {
	return a.Radius
}

// Floor is the largest legal Y, where the avatar rests on the ground.
func (a *Avatar) Floor() float64 {
	return PlayBottom - a.Radius
}

// Box returns the collision square of side 2*Radius around the center.
func (a *Avatar) Box() core.Box {
	return core.BoxAround(a.X, a.Y, a.Radius)
}
