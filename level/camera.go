package level

import (
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Camera follows the player horizontally with a dead zone. The vertical
// offset stays fixed.
type Camera struct {
	Offset gamemath.Vector

	ViewportWidth  float64
	ViewportHeight float64
	LevelWidth     float64

	DeadZoneLeft  float64 // fraction of the viewport width
	DeadZoneRight float64
}

func NewCamera(viewportW, viewportH, levelW float64) *Camera {
	return &Camera{
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
		LevelWidth:     levelW,
		DeadZoneLeft:   config.Camera.DeadZoneLeft,
		DeadZoneRight:  config.Camera.DeadZoneRight,
	}
}

// Follow moves the camera only when x leaves the dead zone, then clamps
// the offset to the level.
func (c *Camera) Follow(x float64) {
	left := c.ViewportWidth * c.DeadZoneLeft
	right := c.ViewportWidth * c.DeadZoneRight
	switch rel := x - c.Offset.X; {
	case rel < left:
		c.Offset.X = x - left
	case rel > right:
		c.Offset.X = x - right
	}
	c.Offset.X = gamemath.Clamp(c.Offset.X, 0, max(0, c.LevelWidth-c.ViewportWidth))
}

// View is the visible world rectangle.
func (c *Camera) View() gamemath.Rect {
	return gamemath.Rect{X: c.Offset.X, Y: c.Offset.Y, W: c.ViewportWidth, H: c.ViewportHeight}
}

// Visible reports whether r overlaps the view.
func (c *Camera) Visible(r gamemath.Rect) bool {
	return c.View().Intersects(r)
}

// ToScreen converts a world position to screen space.
func (c *Camera) ToScreen(p gamemath.Vector) gamemath.Vector {
	return p.Sub(c.Offset)
}

// ToWorld converts a screen position to world space.
func (c *Camera) ToWorld(p gamemath.Vector) gamemath.Vector {
	return p.Add(c.Offset)
}
