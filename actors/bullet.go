package actors

import (
	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/physics"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Bullet is a player shot travelling in a straight horizontal line.
type Bullet struct {
	Position  gamemath.Vector
	Direction float64
	Speed     float64
	Size      gamemath.Vector
	TTL       float64
	Deleted   bool

	anim *animations.State
}

// NewBullet creates a bullet centred on center, travelling along direction.
func NewBullet(lib *animations.Library, center gamemath.Vector, direction float64) *Bullet {
	cfg := config.Bullet
	anim := animations.New(lib, cfg.Clip, cfg.FPS)
	anim.FlipH = direction < 0
	return &Bullet{
		Position:  center.Sub(cfg.Size.MulScalar(0.5)),
		Direction: direction,
		Speed:     cfg.Speed,
		Size:      cfg.Size,
		TTL:       cfg.LifetimeTicks,
		anim:      anim,
	}
}

func (b *Bullet) MovementHitbox() gamemath.Rect {
	return gamemath.Rect{X: b.Position.X, Y: b.Position.Y, W: b.Size.X, H: b.Size.Y}
}

// Update moves the bullet and burns its lifetime.
func (b *Bullet) Update(delta float64) {
	b.Position.X += b.Direction * b.Speed * delta
	b.TTL = decay(b.TTL, delta)
	if b.TTL == 0 {
		b.Deleted = true
	}
	b.anim.Advance(delta)
}

// CheckCollisions flags the bullet when it touches a target or terrain.
// Targets are tested first, in order, and the first one hit is returned so
// the caller can apply damage. A terrain hit returns nil.
func (b *Bullet) CheckCollisions(solids physics.ColliderSource, targets []Damageable) Damageable {
	if b.Deleted {
		return nil
	}
	box := b.MovementHitbox()

	for _, t := range targets {
		if t.IsAlive() && box.Intersects(t.MovementHitbox()) {
			b.Deleted = true
			return t
		}
	}

	if solids == nil {
		return nil
	}
	for _, c := range solids.Colliders(box) {
		if box.Intersects(c) {
			b.Deleted = true
			return nil
		}
	}
	return nil
}

func (b *Bullet) CurrentFrame() Frame {
	return Frame{
		Clip:     b.anim.ClipName(),
		Index:    b.anim.Frame(),
		FlipH:    b.anim.FlipH,
		Position: b.Position,
	}
}
