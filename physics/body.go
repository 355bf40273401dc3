// Package physics integrates gravity and velocity for actors and resolves
// their movement hitboxes against solid rectangles one axis at a time.
package physics

import (
	"math"

	"github.com/automoto/onionrun/shared/gamemath"
)

// ColliderSource yields the solid rectangles an actor may touch while
// moving through area, in resolution order.
type ColliderSource interface {
	Colliders(area gamemath.Rect) []gamemath.Rect
}

// Static is a fixed list of colliders returned regardless of area.
type Static []gamemath.Rect

func (s Static) Colliders(gamemath.Rect) []gamemath.Rect { return s }

// TerrainSource is a ColliderSource that can tell static terrain apart from
// other actors' bodies. Sources that do not implement it are all terrain.
type TerrainSource interface {
	ColliderSource
	Split(area gamemath.Rect) (terrain, bodies []gamemath.Rect)
}

// Body is the physics state shared by the player and every enemy kind.
// Position is the top-left anchor of the sprite frame; Hitbox is the
// movement box relative to it.
type Body struct {
	Position gamemath.Vector
	Velocity gamemath.Vector
	Movement gamemath.Vector // displacement requested by the last Integrate

	Speed        float64
	Gravity      float64
	MaxFallSpeed float64

	Hitbox   gamemath.Rect // offset (X, Y) and size (W, H)
	Grounded bool

	// TerrainContact is set by Resolve when a terrain collider blocked the
	// last movement.
	TerrainContact bool

	origin gamemath.Vector // position before the last move
}

// MovementHitbox returns the hitbox in world space.
func (b *Body) MovementHitbox() gamemath.Rect {
	return b.hitboxAt(b.Position)
}

func (b *Body) hitboxAt(pos gamemath.Vector) gamemath.Rect {
	return gamemath.Rect{
		X: pos.X + b.Hitbox.X,
		Y: pos.Y + b.Hitbox.Y,
		W: b.Hitbox.W,
		H: b.Hitbox.H,
	}
}

// Center returns the center of the movement hitbox.
func (b *Body) Center() gamemath.Vector {
	return b.MovementHitbox().Center()
}

// Integrate sets horizontal velocity from direction, applies gravity and
// moves the body by velocity*delta.
func (b *Body) Integrate(direction, delta float64) {
	b.Velocity.X = direction * b.Speed
	b.Fall(delta)
}

// Fall applies gravity and moves the body without touching horizontal
// velocity, for callers that drive Velocity.X themselves.
func (b *Body) Fall(delta float64) {
	b.Velocity.Y = math.Min(b.Velocity.Y+b.Gravity*delta, b.MaxFallSpeed)
	b.Movement = b.Velocity.MulScalar(delta)
	b.origin = b.Position
	b.Position = b.Position.Add(b.Movement)
}

// Step integrates and resolves in one call. It reports whether any collider
// blocked the movement.
func (b *Body) Step(direction, delta float64, solids ColliderSource) bool {
	b.Integrate(direction, delta)
	return b.Resolve(solids)
}

// Resolve undoes the last movement against every collider it overlaps and
// re-applies whichever axes stay clear, horizontal first. A blocked axis is
// moved up to exact contact when the body started clear of that collider.
// Grounded and TerrainContact are recomputed on every call.
func (b *Body) Resolve(solids ColliderSource) bool {
	b.Grounded = false
	b.TerrainContact = false
	if solids == nil {
		return false
	}

	m := b.Movement
	area := b.hitboxAt(b.origin).Union(b.MovementHitbox())
	falling := b.Velocity.Y > 0
	collided := false

	// While an axis still carries the untouched movement, rolling it back
	// lands exactly on the origin instead of accumulating rounding error.
	movedX, movedY := true, true

	colliders, terrain := collidersIn(solids, area)
	for i, c := range colliders {
		if !b.MovementHitbox().Intersects(c) {
			continue
		}
		collided = true
		if i < terrain {
			b.TerrainContact = true
		}

		to := b.Position
		from := to.Sub(m)
		if movedX {
			from.X = b.origin.X
		}
		if movedY {
			from.Y = b.origin.Y
		}

		x := to.X
		if b.hitboxAt(gamemath.Vec(to.X, from.Y)).Intersects(c) {
			x = b.contactX(from, m.X, c)
			movedX = false
		}

		y := to.Y
		if b.hitboxAt(gamemath.Vec(x, to.Y)).Intersects(c) {
			y = b.contactY(from, m.Y, c)
			movedY = false
			if falling {
				b.Grounded = true
			}
			b.Velocity.Y = 0
		}

		b.Position = gamemath.Vec(x, y)
	}
	return collided
}

// collidersIn returns the colliders for area with terrain first, and how
// many of them are terrain.
func collidersIn(solids ColliderSource, area gamemath.Rect) ([]gamemath.Rect, int) {
	ts, ok := solids.(TerrainSource)
	if !ok {
		all := solids.Colliders(area)
		return all, len(all)
	}
	terrain, bodies := ts.Split(area)
	all := make([]gamemath.Rect, 0, len(terrain)+len(bodies))
	all = append(all, terrain...)
	return append(all, bodies...), len(terrain)
}

// contactX returns the x position that puts the hitbox flush against c when
// approaching it along dx, or from.X when the hitbox already overlapped c
// horizontally before moving.
func (b *Body) contactX(from gamemath.Vector, dx float64, c gamemath.Rect) float64 {
	box := b.hitboxAt(from)
	switch {
	case dx > 0 && box.Right() <= c.X:
		return c.X - b.Hitbox.X - b.Hitbox.W
	case dx < 0 && box.X >= c.Right():
		return c.Right() - b.Hitbox.X
	}
	return from.X
}

func (b *Body) contactY(from gamemath.Vector, dy float64, c gamemath.Rect) float64 {
	box := b.hitboxAt(from)
	switch {
	case dy > 0 && box.Bottom() <= c.Y:
		return c.Y - b.Hitbox.Y - b.Hitbox.H
	case dy < 0 && box.Y >= c.Bottom():
		return c.Bottom() - b.Hitbox.Y
	}
	return from.Y
}
