// Package actors holds the concrete simulated bodies: the player, the enemy
// variants, bullets, lobbed projectiles and cosmetic particles.
package actors

import (
	"math"

	"github.com/automoto/onionrun/shared/gamemath"
)

// Actor is any body with a movement hitbox.
type Actor interface {
	MovementHitbox() gamemath.Rect
}

// Damageable is anything a player bullet can hit.
type Damageable interface {
	Actor
	TakeDamage()
	IsAlive() bool
}

// Frame is what the renderer needs to draw an actor for the current tick.
type Frame struct {
	Clip     string
	Index    int
	FlipH    bool
	Flash    bool
	Position gamemath.Vector // top-left anchor of the sprite frame
}

// decay counts a timer down by delta without going below zero.
func decay(ticks, delta float64) float64 {
	return math.Max(0, ticks-delta)
}
