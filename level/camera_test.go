package level

import (
	"testing"

	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestCameraDeadZone(t *testing.T) {
	c := NewCamera(640, 360, 2560)

	steps := []struct {
		x    float64
		want float64
	}{
		{100, 0},     // left of the zone but clamped at the level start
		{500, 116},   // past 60% of the viewport
		{450, 116},   // inside the zone, no movement
		{400, 116},   // still inside (400-116 = 284 >= 256)
		{300, 44},    // back past 40%
		{3000, 1920}, // clamped at the level end
	}
	for _, s := range steps {
		c.Follow(s.x)
		assert.Equal(t, s.want, c.Offset.X, "x=%v", s.x)
	}
	assert.Zero(t, c.Offset.Y)
}

func TestCameraNarrowLevel(t *testing.T) {
	c := NewCamera(640, 360, 300)
	c.Follow(280)
	assert.Zero(t, c.Offset.X)
}

func TestCameraTransforms(t *testing.T) {
	c := NewCamera(640, 360, 2560)
	c.Offset = gamemath.Vec(100, 0)

	assert.Equal(t, gamemath.Vec(20, 50), c.ToScreen(gamemath.Vec(120, 50)))
	assert.Equal(t, gamemath.Vec(120, 50), c.ToWorld(gamemath.Vec(20, 50)))
	assert.True(t, c.Visible(gamemath.R(90, 0, 20, 20)))
	assert.False(t, c.Visible(gamemath.R(80, 0, 20, 20)), "touching the edge is off screen")
	assert.False(t, c.Visible(gamemath.R(800, 0, 20, 20)))
}
