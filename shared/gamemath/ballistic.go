package gamemath

// SolveLob returns the launch velocity that carries a body from start
// through target under constant downward gravity, travelling horizontally
// at speed toward the target's side.
//
// The time of flight is t = dx/vx and the vertical launch speed is
// vy = (dy - g*t*t/2) / t. ok is false when the target sits exactly at the
// launch x or speed is not positive, since no finite flight time exists.
func SolveLob(start, target Vector, speed, gravity float64) (v Vector, t float64, ok bool) {
	dx := target.X - start.X
	if dx == 0 || speed <= 0 {
		return Vector{}, 0, false
	}
	vx := Sign(dx) * speed
	t = dx / vx
	dy := target.Y - start.Y
	vy := (dy - 0.5*gravity*t*t) / t
	return Vector{X: vx, Y: vy}, t, true
}
