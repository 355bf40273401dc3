package actors

import (
	"fmt"
	"strings"

	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/physics"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Kind tags an enemy variant.
type Kind int

const (
	KindChaser Kind = iota
	KindLobber
)

func (k Kind) String() string {
	switch k {
	case KindChaser:
		return "chaser"
	case KindLobber:
		return "lobber"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a level-file name to a Kind. The legacy sprite names
// "onion" and "tomato" are accepted too.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chaser", "onion":
		return KindChaser, nil
	case "lobber", "tomato":
		return KindLobber, nil
	}
	return 0, fmt.Errorf("unknown enemy kind %q", s)
}

// Target is the view of the player an enemy steers by.
type Target struct {
	Center gamemath.Vector
	Hitbox gamemath.Rect
}

// Enemy is the contract the level loop drives every variant through.
type Enemy interface {
	Damageable
	Kind() Kind
	// Update runs AI, physics and animation for one tick.
	Update(delta float64, target Target, solids physics.ColliderSource)
	// Hurtbox returns the damaging rectangle and whether it is live this tick.
	Hurtbox() (gamemath.Rect, bool)
	HasProjectile() bool
	// Projectile collects the pending shot aimed at target. It clears the
	// pending flag and may return nil when no shot can be solved.
	Projectile(target gamemath.Vector) *Projectile
	DeathParticle() *Particle
	CurrentFrame() Frame
}

// NewEnemy builds the variant for kind anchored at pos.
func NewEnemy(kind Kind, lib *animations.Library, pos gamemath.Vector) Enemy {
	switch kind {
	case KindLobber:
		return NewLobber(lib, pos)
	default:
		return NewChaser(lib, pos)
	}
}

// EnemyBase is the state and behaviour every variant shares: physics,
// health with an invulnerability window, targeting and the two animations.
type EnemyBase struct {
	physics.Body

	Health       int
	InvulnTicks  float64
	SearchRadius float64
	Direction    float64

	Run    *animations.State
	Attack *animations.State

	cfg  config.EnemyTypeConfig
	lib  *animations.Library
	kind Kind
}

func newEnemyBase(kind Kind, cfg config.EnemyTypeConfig, lib *animations.Library, pos gamemath.Vector) EnemyBase {
	attack := animations.New(lib, cfg.AttackClip, cfg.AttackFPS)
	attack.Finished = true
	return EnemyBase{
		Body: physics.Body{
			Position:     pos,
			Speed:        cfg.Speed,
			Gravity:      cfg.Gravity,
			MaxFallSpeed: cfg.MaxFallSpeed,
			Hitbox:       cfg.Hitbox,
		},
		Health:       cfg.Health,
		SearchRadius: cfg.SearchRadius,
		Run:          animations.New(lib, cfg.RunClip, cfg.RunFPS),
		Attack:       attack,
		cfg:          cfg,
		lib:          lib,
		kind:         kind,
	}
}

func (e *EnemyBase) Kind() Kind { return e.kind }

func (e *EnemyBase) IsAlive() bool { return e.Health > 0 }

// Attacking reports whether the attack clip is playing.
func (e *EnemyBase) Attacking() bool { return !e.Attack.Finished }

// TakeDamage removes one health point unless the enemy is still
// invulnerable from the previous hit.
func (e *EnemyBase) TakeDamage() {
	if e.InvulnTicks > 0 || e.Health <= 0 {
		return
	}
	e.Health--
	e.InvulnTicks = e.cfg.InvulnTicks
	e.Run.Flash = true
	e.Attack.Flash = true
}

func (e *EnemyBase) tickInvulnerability(delta float64) {
	if e.InvulnTicks <= 0 {
		return
	}
	e.InvulnTicks = decay(e.InvulnTicks, delta)
	if e.InvulnTicks == 0 {
		e.Run.Flash = false
		e.Attack.Flash = false
	}
}

func (e *EnemyBase) inRange(t Target) bool {
	return e.Position.Distance(t.Center) <= e.SearchRadius
}

// targetDirection steers toward the player while in range and idle.
func (e *EnemyBase) targetDirection(t Target) float64 {
	if e.Attacking() || !e.inRange(t) {
		return 0
	}
	if t.Center.X > e.Position.X {
		return 1
	}
	return -1
}

// face turns both animations; a zero direction keeps the current facing.
func (e *EnemyBase) face(dir float64) {
	if dir == 0 {
		return
	}
	flip := dir < 0
	e.Run.FlipH = flip
	e.Attack.FlipH = flip
}

// DeathParticle returns the corpse effect, offset from the anchor and
// facing the same way the enemy did.
func (e *EnemyBase) DeathParticle() *Particle {
	pos := e.Position.Add(e.cfg.DeathOffset)
	return NewParticle(e.lib, e.cfg.DeathClip, e.cfg.DeathFPS, pos, e.Run.FlipH)
}

func (e *EnemyBase) CurrentFrame() Frame {
	anim := e.Run
	if e.Attacking() {
		anim = e.Attack
	}
	return Frame{
		Clip:     anim.ClipName(),
		Index:    anim.Frame(),
		FlipH:    anim.FlipH,
		Flash:    anim.Flash,
		Position: e.Position,
	}
}
