// Package gamemath holds the small geometry toolkit shared by the simulation
// and the host: vectors, axis-aligned rectangles and the ballistic solve.
// It has no dependencies on ebitengine so the simulation stays testable.
package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Vector is donburi's 2D value vector. All operations return a new value.
type Vector = dmath.Vec2

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return dmath.NewVec2(x, y)
}

// Sign returns -1, 0 or 1 following the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
