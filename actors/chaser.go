package actors

import (
	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/physics"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Chaser walks toward the player and swings when it touches them. Its
// hurtbox is live for a single attack frame only, which keeps the swing
// dodgeable.
type Chaser struct {
	EnemyBase
}

func NewChaser(lib *animations.Library, pos gamemath.Vector) *Chaser {
	return &Chaser{EnemyBase: newEnemyBase(KindChaser, config.Chaser, lib, pos)}
}

func (c *Chaser) Update(delta float64, target Target, solids physics.ColliderSource) {
	c.tickInvulnerability(delta)

	c.Direction = c.targetDirection(target)
	c.face(c.Direction)
	c.Step(c.Direction, delta, solids)

	if !c.Attacking() && c.MovementHitbox().Intersects(target.Hitbox) {
		c.Attack.Restart()
	}

	switch {
	case c.Attacking():
		c.Attack.Advance(delta)
		c.Run.Reset()
	case !c.Grounded || c.Direction == 0:
		c.Run.Reset()
	default:
		c.Run.Advance(delta)
	}
}

// Hurtbox sits in front of the hitbox on the side the chaser faces.
func (c *Chaser) Hurtbox() (gamemath.Rect, bool) {
	if !c.Attacking() || c.Attack.Frame() != c.cfg.HurtboxFrame {
		return gamemath.Rect{}, false
	}
	hb := c.MovementHitbox()
	r := gamemath.Rect{
		X: hb.X + c.cfg.Hurtbox.X,
		Y: hb.Y + c.cfg.Hurtbox.Y,
		W: c.cfg.Hurtbox.W,
		H: c.cfg.Hurtbox.H,
	}
	if !c.Attack.FlipH {
		r.X += hb.W
	}
	return r, true
}

func (c *Chaser) HasProjectile() bool { return false }

func (c *Chaser) Projectile(gamemath.Vector) *Projectile { return nil }
