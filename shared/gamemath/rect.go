package gamemath

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// It is used for movement hitboxes, hurtboxes, platforms and UI hit areas.
type Rect struct {
	X, Y, W, H float64
}

func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Pos() Vector { return Vector{X: r.X, Y: r.Y} }

func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inflate grows r by n on every side.
func (r Rect) Inflate(n float64) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// Intersects reports whether r and o overlap with positive area.
// Edges that only touch do not count, so adjacent platforms never
// resolve a shared edge twice.
func (r Rect) Intersects(o Rect) bool {
	if r.X+r.W <= o.X || o.X+o.W <= r.X {
		return false
	}
	if r.Y+r.H <= o.Y || o.Y+o.H <= r.Y {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside r, edges included.
// Meant for UI hit-testing, not physics.
func (r Rect) ContainsPoint(p Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
