package actors

import (
	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Particle is a purely visual one-shot animation placed in the world.
type Particle struct {
	Position gamemath.Vector
	Anim     *animations.State
}

func NewParticle(lib *animations.Library, clip string, fps float64, pos gamemath.Vector, flipH bool) *Particle {
	anim := animations.New(lib, clip, fps)
	anim.FlipH = flipH
	return &Particle{Position: pos, Anim: anim}
}

func (p *Particle) Update(delta float64) {
	p.Anim.Advance(delta)
}

// Finished reports whether the particle's clip has played through.
func (p *Particle) Finished() bool {
	return p.Anim.Finished
}

func (p *Particle) CurrentFrame() Frame {
	return Frame{
		Clip:     p.Anim.ClipName(),
		Index:    p.Anim.Frame(),
		FlipH:    p.Anim.FlipH,
		Position: p.Position,
	}
}
