package actors

import (
	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/physics"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Lobber stands still and lobs projectiles at the player while in range.
// A shot is primed when the attack clip reaches its fire frame; the next
// attack waits for the clip to finish plus a cooldown.
type Lobber struct {
	EnemyBase

	Cooldown float64
	pending  bool
	fired    bool
}

func NewLobber(lib *animations.Library, pos gamemath.Vector) *Lobber {
	return &Lobber{EnemyBase: newEnemyBase(KindLobber, config.Lobber, lib, pos)}
}

func (l *Lobber) Update(delta float64, target Target, solids physics.ColliderSource) {
	l.tickInvulnerability(delta)
	l.Cooldown = decay(l.Cooldown, delta)

	inRange := l.inRange(target)
	if inRange {
		l.face(gamemath.Sign(target.Center.X - l.Center().X))
	}

	l.Direction = 0
	l.Step(0, delta, solids)

	if !l.Attacking() && inRange && l.Cooldown == 0 && !l.pending {
		l.Attack.Restart()
		l.fired = false
	}

	if !l.Attacking() {
		l.Run.Advance(delta)
		return
	}

	l.Run.Reset()
	l.Attack.Advance(delta)
	if !l.fired && (l.Attack.Finished || l.Attack.Frame() >= l.cfg.ProjectileFrame) {
		l.fired = true
		l.pending = true
	}
	if l.Attack.Finished {
		l.Cooldown = l.cfg.AttackCooldownTicks
	}
}

// Hurtbox is always absent: the lobber has no melee attack.
func (l *Lobber) Hurtbox() (gamemath.Rect, bool) {
	return gamemath.Rect{}, false
}

func (l *Lobber) HasProjectile() bool { return l.pending }

func (l *Lobber) Projectile(target gamemath.Vector) *Projectile {
	if !l.pending {
		return nil
	}
	l.pending = false
	return NewLobbedProjectile(l.lib, l.Center(), target)
}
