package level

import "github.com/automoto/onionrun/config"

// Input holds the level-scoped action state. The host feeds raw key
// transitions through Press and Release; the level loop reads the arrays
// and calls Flush once per tick.
type Input struct {
	Pressed      [config.ActionCount]bool
	JustPressed  [config.ActionCount]bool
	JustReleased [config.ActionCount]bool
}

func (in *Input) Press(a config.ActionID) {
	in.Pressed[a] = true
	in.JustPressed[a] = true
}

func (in *Input) Release(a config.ActionID) {
	in.Pressed[a] = false
	in.JustReleased[a] = true
}

// Flush clears the one-tick edges.
func (in *Input) Flush() {
	in.JustPressed = [config.ActionCount]bool{}
	in.JustReleased = [config.ActionCount]bool{}
}

// Reset forgets everything, used when the level regains focus.
func (in *Input) Reset() {
	in.Pressed = [config.ActionCount]bool{}
	in.Flush()
}

// Direction returns the movement intent after this tick's edges. Pressing a
// direction takes over; releasing it falls back to the other key if that
// one is still held. Right is evaluated last and wins ties.
func (in *Input) Direction(current float64) float64 {
	dir := current
	if in.JustPressed[config.ActionLeft] {
		dir = -1
	} else if in.JustReleased[config.ActionLeft] {
		dir = in.heldOr(config.ActionRight, 1)
	}
	if in.JustPressed[config.ActionRight] {
		dir = 1
	} else if in.JustReleased[config.ActionRight] {
		dir = in.heldOr(config.ActionLeft, -1)
	}
	return dir
}

func (in *Input) heldOr(a config.ActionID, dir float64) float64 {
	if in.Pressed[a] {
		return dir
	}
	return 0
}
