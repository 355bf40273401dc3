package scenes

import (
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/level"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings maps each action to the keys that trigger it.
type Bindings [config.ActionCount][]ebiten.Key

// DefaultBindings: A/D or arrows to move, Space or W/Up to jump, L or J to
// shoot.
func DefaultBindings() Bindings {
	var b Bindings
	b[config.ActionLeft] = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	b[config.ActionRight] = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	b[config.ActionJump] = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
	b[config.ActionShoot] = []ebiten.Key{ebiten.KeyL, ebiten.KeyJ}
	return b
}

// Poll copies the keyboard into in, raising edges where an action's held
// state changed since the last poll.
func (b Bindings) Poll(in *level.Input) {
	for a := config.ActionID(0); a < config.ActionCount; a++ {
		down := false
		for _, k := range b[a] {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		syncAction(in, a, down)
	}
}

func syncAction(in *level.Input, a config.ActionID, down bool) {
	switch {
	case down && !in.Pressed[a]:
		in.Press(a)
	case !down && in.Pressed[a]:
		in.Release(a)
	}
}
