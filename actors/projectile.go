package actors

import (
	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/physics"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Projectile is an enemy shot on a ballistic arc. It is aimed once at
// launch and never steers afterwards.
type Projectile struct {
	Position gamemath.Vector
	Velocity gamemath.Vector
	Gravity  float64
	Size     gamemath.Vector
	Deleted  bool

	// FlightTicks is the solved time to reach the aim point.
	FlightTicks float64

	anim *animations.State
}

// NewLobbedProjectile launches a projectile whose centre leaves start and
// passes through target. It returns nil when target sits at the launch x,
// since no flight time can be solved.
func NewLobbedProjectile(lib *animations.Library, start, target gamemath.Vector) *Projectile {
	cfg := config.Projectile
	v, t, ok := gamemath.SolveLob(start, target, cfg.Speed, cfg.Gravity)
	if !ok {
		return nil
	}
	anim := animations.New(lib, cfg.Clip, cfg.FPS)
	anim.FlipH = v.X < 0
	return &Projectile{
		Position:    start.Sub(cfg.Size.MulScalar(0.5)),
		Velocity:    v,
		Gravity:     cfg.Gravity,
		Size:        cfg.Size,
		FlightTicks: t,
		anim:        anim,
	}
}

func (p *Projectile) MovementHitbox() gamemath.Rect {
	return gamemath.Rect{X: p.Position.X, Y: p.Position.Y, W: p.Size.X, H: p.Size.Y}
}

func (p *Projectile) Center() gamemath.Vector {
	return p.MovementHitbox().Center()
}

// Update advances the arc with exact constant-acceleration steps, so the
// path matches the launch solve for any delta, then deletes the projectile
// if it entered terrain.
func (p *Projectile) Update(delta float64, solids physics.ColliderSource) {
	if p.Deleted {
		return
	}
	start := p.MovementHitbox()
	p.Position.X += p.Velocity.X * delta
	p.Position.Y += p.Velocity.Y*delta + 0.5*p.Gravity*delta*delta
	p.Velocity.Y += p.Gravity * delta
	p.anim.Advance(delta)

	if solids == nil {
		return
	}
	box := p.MovementHitbox()
	for _, c := range solids.Colliders(start.Union(box)) {
		if box.Intersects(c) {
			p.Deleted = true
			return
		}
	}
}

// TakeDamage lets a player bullet shoot the projectile down.
func (p *Projectile) TakeDamage() {
	p.Deleted = true
}

func (p *Projectile) IsAlive() bool {
	return !p.Deleted
}

func (p *Projectile) CurrentFrame() Frame {
	return Frame{
		Clip:     p.anim.ClipName(),
		Index:    p.anim.Frame(),
		FlipH:    p.anim.FlipH,
		Position: p.Position,
	}
}
