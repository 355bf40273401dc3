package physics

import (
	"testing"

	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerBody(x, y float64) *Body {
	return &Body{
		Position:     gamemath.Vec(x, y),
		Speed:        2,
		Gravity:      0.1,
		MaxFallSpeed: 2,
		Hitbox:       gamemath.R(9, 11, 14, 21),
	}
}

func TestFallsOntoPlatformAndRestsFlush(t *testing.T) {
	floor := Static{gamemath.R(0, 300, 400, 20)}
	b := playerBody(50, 200)
	require.False(t, b.Grounded)

	for i := 0; i < 600 && !b.Grounded; i++ {
		b.Step(0, 1, floor)
	}

	require.True(t, b.Grounded)
	assert.Equal(t, 300.0, b.Position.Y+b.Hitbox.Y+b.Hitbox.H)
	assert.False(t, b.MovementHitbox().Intersects(floor[0]))

	// Resting is re-verified every tick.
	for i := 0; i < 10; i++ {
		b.Step(0, 1, floor)
		assert.True(t, b.Grounded)
		assert.Equal(t, 300.0, b.MovementHitbox().Bottom())
	}
}

func TestFallsWithLargeDelta(t *testing.T) {
	floor := Static{gamemath.R(0, 300, 400, 20)}
	b := playerBody(50, 250)

	for i := 0; i < 200 && !b.Grounded; i++ {
		b.Step(0, 2.5, floor)
	}

	require.True(t, b.Grounded)
	assert.Equal(t, 300.0, b.MovementHitbox().Bottom())
}

func TestDiagonalCornerClipNeverEndsInside(t *testing.T) {
	platform := gamemath.R(100, 100, 50, 50)
	b := &Body{
		Position:     gamemath.Vec(85-9, 78-11), // hitbox at (85, 78)
		Velocity:     gamemath.Vec(0, 3),
		Speed:        3,
		MaxFallSpeed: 3,
		Hitbox:       gamemath.R(9, 11, 14, 21),
	}

	// Each axis alone stays clear; only the diagonal move clips the corner.
	collided := b.Step(1, 1, Static{platform})

	box := b.MovementHitbox()
	assert.True(t, collided)
	assert.False(t, box.Intersects(platform))
	assert.Equal(t, 88.0, box.X, "horizontal is applied first")
	assert.Equal(t, 100.0, box.Bottom(), "vertical is stopped at the platform top")
	assert.True(t, b.Grounded)
}

func TestDiagonalIntoCornerFromManyAngles(t *testing.T) {
	platform := gamemath.R(100, 100, 50, 50)

	for _, v := range []gamemath.Vector{{X: 3, Y: 1}, {X: 1, Y: 3}, {X: 2.5, Y: 2.5}, {X: -3, Y: 2}} {
		start := gamemath.Vec(76, 67)
		if v.X < 0 {
			start = gamemath.Vec(150-9+2, 67)
		}
		b := &Body{Position: start, Velocity: gamemath.Vec(0, v.Y), Speed: 3, MaxFallSpeed: 10, Hitbox: gamemath.R(9, 11, 14, 21)}
		dir := v.X / 3

		for i := 0; i < 30; i++ {
			b.Velocity.Y = v.Y
			b.Step(dir, 1, Static{platform})
			require.False(t, b.MovementHitbox().Intersects(platform), "velocity %v tick %d", v, i)
		}
	}
}

func TestWallStopsHorizontalFlush(t *testing.T) {
	wall := gamemath.R(120, 0, 10, 400)
	b := playerBody(90, 100)
	b.Gravity = 0

	for i := 0; i < 20; i++ {
		b.Step(1, 1, Static{wall})
	}

	assert.Equal(t, 120.0, b.MovementHitbox().Right())
	assert.False(t, b.Grounded)
}

func TestCeilingBumpStopsRise(t *testing.T) {
	ceiling := gamemath.R(0, 0, 400, 50)
	b := playerBody(50, 41) // hitbox top at 52
	b.Velocity.Y = -3

	b.Step(0, 1, Static{ceiling})

	assert.Equal(t, 50.0, b.MovementHitbox().Y)
	assert.Equal(t, 0.0, b.Velocity.Y)
	assert.False(t, b.Grounded)

	b.Step(0, 1, Static{ceiling})
	assert.Greater(t, b.Velocity.Y, 0.0)
	assert.False(t, b.MovementHitbox().Intersects(ceiling))
}

func TestWalkingOffLedgeClearsGrounded(t *testing.T) {
	ledge := gamemath.R(0, 300, 40, 20)
	b := playerBody(0, 300-32)
	b.Step(0, 1, Static{ledge})
	require.True(t, b.Grounded)

	for i := 0; i < 40; i++ {
		b.Step(1, 1, Static{ledge})
	}
	assert.False(t, b.Grounded)
	assert.Greater(t, b.MovementHitbox().Bottom(), 300.0)
}

func TestAdjacentPlatformsDoNotSnag(t *testing.T) {
	floor := Static{
		gamemath.R(0, 300, 100, 20),
		gamemath.R(100, 300, 100, 20),
	}
	b := playerBody(60, 300-32)

	for i := 0; i < 40; i++ {
		b.Step(1, 1, floor)
		require.True(t, b.Grounded, "tick %d", i)
	}
	assert.Equal(t, 60+40*2.0, b.Position.X)
}

func TestIntegrateClampsFallSpeed(t *testing.T) {
	b := playerBody(0, 0)
	for i := 0; i < 100; i++ {
		b.Integrate(0, 1)
	}
	assert.Equal(t, 2.0, b.Velocity.Y)
	assert.Equal(t, gamemath.Vec(0, 2), b.Movement)
}

func TestNilSourceOnlyResetsGrounded(t *testing.T) {
	b := playerBody(0, 0)
	b.Grounded = true
	assert.False(t, b.Step(1, 1, nil))
	assert.False(t, b.Grounded)
	assert.Equal(t, 2.0, b.Position.X)
}

type layered struct{ terrain, bodies []gamemath.Rect }

func (l layered) Colliders(area gamemath.Rect) []gamemath.Rect {
	return append(append([]gamemath.Rect{}, l.terrain...), l.bodies...)
}

func (l layered) Split(gamemath.Rect) ([]gamemath.Rect, []gamemath.Rect) {
	return l.terrain, l.bodies
}

func TestTerrainContactIgnoresBodies(t *testing.T) {
	other := gamemath.R(24, 0, 20, 40)

	b := playerBody(0, 0) // hitbox 9..23
	assert.True(t, b.Step(1, 1, layered{bodies: []gamemath.Rect{other}}))
	assert.False(t, b.TerrainContact)
	assert.Equal(t, 24.0, b.MovementHitbox().Right())

	b = playerBody(0, 0)
	assert.True(t, b.Step(1, 1, layered{terrain: []gamemath.Rect{other}}))
	assert.True(t, b.TerrainContact)

	b = playerBody(0, 0)
	b.Step(1, 1, Static{other})
	assert.True(t, b.TerrainContact, "plain sources count as terrain")

	b.Step(-1, 1, Static{other})
	assert.False(t, b.TerrainContact)
}

func TestWalkingOffLedgeStartsFallFromRest(t *testing.T) {
	ledge := gamemath.R(0, 300, 40, 20)
	b := playerBody(0, 300-32)
	for i := 0; i < 10; i++ {
		b.Step(0, 1, Static{ledge})
	}
	require.True(t, b.Grounded)
	assert.Equal(t, 0.0, b.Velocity.Y, "resting contact does not build up fall speed")

	for b.Grounded {
		b.Step(1, 1, Static{ledge})
	}
	assert.InDelta(t, 0.1, b.Velocity.Y, 1e-9)
}
