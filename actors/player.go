package actors

import (
	"math"

	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/physics"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Jump pose frames in the player_jump clip.
const (
	jumpFrameRising  = 0
	jumpFrameApex    = 1
	jumpFrameFalling = 2
)

// Player is the controllable actor.
type Player struct {
	physics.Body

	// Direction is the movement intent (-1, 0 or 1). Facing keeps the last
	// non-zero direction and decides where bullets go.
	Direction float64
	Facing    float64

	JumpBuffer     float64
	Coyote         float64
	Knockback      gamemath.Vector
	KnockbackTicks float64
	ShootCooldown  float64

	cfg  config.PlayerConfig
	lib  *animations.Library
	run  *animations.State
	jump *animations.State

	particles []*Particle
	jumped    bool
}

// NewPlayer creates a player anchored at pos using the current player tuning.
func NewPlayer(lib *animations.Library, pos gamemath.Vector) *Player {
	cfg := config.Player
	return &Player{
		Body: physics.Body{
			Position:     pos,
			Speed:        cfg.Speed,
			Gravity:      cfg.Gravity,
			MaxFallSpeed: cfg.MaxFallSpeed,
			Hitbox:       cfg.Hitbox,
		},
		Facing: 1,
		cfg:    cfg,
		lib:    lib,
		run:    animations.New(lib, config.ClipPlayerRun, cfg.RunFPS),
		jump:   animations.New(lib, config.ClipPlayerJump, cfg.RunFPS),
	}
}

// SetDirection sets the movement intent and turns the sprite.
func (p *Player) SetDirection(dir float64) {
	p.Direction = gamemath.Sign(dir)
	if p.Direction != 0 {
		p.Facing = p.Direction
	}
	flip := p.Facing < 0
	p.run.FlipH = flip
	p.jump.FlipH = flip
}

// BufferJump records a jump request that stays valid for a few ticks.
func (p *Player) BufferJump() {
	p.JumpBuffer = p.cfg.JumpBufferTicks
}

// Shoot returns a new bullet, or nil while the cooldown is running.
func (p *Player) Shoot() *Bullet {
	if p.ShootCooldown > 0 {
		return nil
	}
	p.ShootCooldown = p.cfg.ShootCooldownTicks
	muzzle := p.Center().Add(gamemath.Vec(p.Facing*p.cfg.MuzzleOffset, 0))
	return NewBullet(p.lib, muzzle, p.Facing)
}

// TakeHit knocks the player away from hurtbox. Hits landing while a
// knockback is already running are ignored. It reports whether the hit
// was applied.
func (p *Player) TakeHit(hurtbox gamemath.Rect) bool {
	if p.KnockbackTicks > 0 {
		return false
	}
	dir := 1.0
	if hurtbox.Center().X > p.Center().X {
		dir = -1
	}
	p.Knockback = gamemath.Vec(dir*p.cfg.Knockback.X, p.cfg.Knockback.Y)
	p.Velocity = p.Knockback
	p.KnockbackTicks = p.cfg.KnockbackTicks
	p.JumpBuffer = 0
	return true
}

// InKnockback reports whether horizontal control is currently suppressed.
func (p *Player) InKnockback() bool {
	return p.KnockbackTicks > 0
}

// Update advances the player by delta ticks. solids block movement and
// touching terrain ends a knockback early; hurtboxes knock the player back
// on overlap.
func (p *Player) Update(delta float64, solids physics.ColliderSource, hurtboxes []gamemath.Rect) {
	p.jumped = false

	for _, hb := range hurtboxes {
		if p.MovementHitbox().Intersects(hb) && p.TakeHit(hb) {
			break
		}
	}

	if p.JumpBuffer > 0 && !p.InKnockback() && (p.Grounded || p.Coyote > 0) {
		p.doJump()
	}

	p.JumpBuffer = decay(p.JumpBuffer, delta)
	p.Coyote = decay(p.Coyote, delta)
	p.ShootCooldown = decay(p.ShootCooldown, delta)

	if p.InKnockback() {
		p.Velocity.X = p.Knockback.X
		p.Fall(delta)
		p.KnockbackTicks = decay(p.KnockbackTicks, delta)
	} else {
		p.Integrate(p.Direction, delta)
	}

	p.Resolve(solids)
	if p.TerrainContact {
		p.KnockbackTicks = 0
	}
	if p.Grounded {
		p.Coyote = p.cfg.CoyoteTicks
	}

	p.animate(delta)
}

func (p *Player) doJump() {
	p.Velocity.Y = -p.cfg.JumpImpulse
	p.Grounded = false
	p.JumpBuffer = 0
	p.Coyote = 0
	p.jumped = true

	pos := p.Position.Add(p.cfg.LiftoffOffset)
	p.particles = append(p.particles, NewParticle(p.lib, config.ClipPlayerLiftoff, p.cfg.LiftoffFPS, pos, p.Facing < 0))
}

func (p *Player) animate(delta float64) {
	if !p.Grounded || p.InKnockback() {
		p.run.Reset()
		switch {
		case math.Abs(p.Velocity.Y) < p.cfg.AirborneThreshold:
			p.jump.SetFrame(jumpFrameApex)
		case p.Velocity.Y < 0:
			p.jump.SetFrame(jumpFrameRising)
		default:
			p.jump.SetFrame(jumpFrameFalling)
		}
		return
	}
	if p.Direction == 0 {
		p.run.Reset()
		return
	}
	p.run.Advance(delta)
}

// Jumped reports whether a jump fired during the last Update.
func (p *Player) Jumped() bool {
	return p.jumped
}

// DrainParticles hands over particles spawned since the last call.
func (p *Player) DrainParticles() []*Particle {
	out := p.particles
	p.particles = nil
	return out
}

func (p *Player) CurrentFrame() Frame {
	anim := p.run
	if !p.Grounded || p.InKnockback() {
		anim = p.jump
	}
	return Frame{
		Clip:     anim.ClipName(),
		Index:    anim.Frame(),
		FlipH:    anim.FlipH,
		Position: p.Position,
	}
}
