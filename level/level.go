// Package level owns one playable level: its actors, the terrain
// broadphase, the camera, level-scoped input, and the fixed per-tick
// update order that composes them.
package level

import (
	"fmt"
	"slices"

	"github.com/automoto/onionrun/actors"
	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/automoto/onionrun/shared/leveldata"
	"github.com/charmbracelet/log"
)

// Level is the authoritative state of a running level. It is mutated only
// by Update on the game loop goroutine.
type Level struct {
	Width  float64
	Height float64

	Player      *actors.Player
	Enemies     []actors.Enemy
	Bullets     []*actors.Bullet
	Projectiles []*actors.Projectile
	Particles   []*actors.Particle

	Camera *Camera
	Input  Input
	Events *Events

	terrain *Terrain
	lib     *animations.Library
}

// Load builds a level from data. Boundary walls are added around the level
// area. An unknown enemy kind fails the load and no level is returned.
func Load(data *leveldata.Level, lib *animations.Library) (*Level, error) {
	enemies := make([]actors.Enemy, 0, len(data.Enemies))
	for i, spawn := range data.Enemies {
		kind, err := actors.ParseKind(spawn.Kind)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w: %v", i, leveldata.ErrMalformed, err)
		}
		enemies = append(enemies, actors.NewEnemy(kind, lib, spawn.Position))
	}

	bounds := data.Bounds()
	w, h := bounds.Right(), bounds.Bottom()
	platforms := append(slices.Clone(data.Platforms), boundaries(w, h, config.Level.Thickness)...)

	l := &Level{
		Width:   w,
		Height:  h,
		Player:  actors.NewPlayer(lib, data.PlayerSpawn),
		Enemies: enemies,
		Camera:  NewCamera(float64(config.C.Width), float64(config.C.Height), w),
		Events:  NewEvents(),
		terrain: NewTerrain(platforms, config.Level.CellSize),
		lib:     lib,
	}
	l.Camera.Follow(l.Player.Position.X)

	log.Debug("level loaded", "size", fmt.Sprintf("%.0fx%.0f", w, h),
		"platforms", len(platforms), "enemies", len(enemies))
	return l, nil
}

// boundaries walls in the level on all four sides.
func boundaries(w, h, t float64) []gamemath.Rect {
	return []gamemath.Rect{
		gamemath.R(0, 0, t, h),
		gamemath.R(w-t, 0, t, h),
		gamemath.R(0, 0, w, t),
		gamemath.R(0, h-t, w, t),
	}
}

// Platforms returns the static terrain, boundaries included.
func (l *Level) Platforms() []gamemath.Rect {
	return l.terrain.Platforms()
}

// Terrain exposes the broadphase for debug drawing.
func (l *Level) Terrain() *Terrain {
	return l.terrain
}

// OnResume drops held keys, since releases were missed while paused.
func (l *Level) OnResume() {
	l.Input.Reset()
}

// Update advances the level by delta ticks. The phase order is fixed:
// later phases read state committed by earlier ones.
func (l *Level) Update(delta float64) {
	p := l.Player

	// 1. Input to intent
	l.applyInput()

	// 2. Player against terrain and enemy bodies
	p.Update(delta, Solids{Terrain: l.terrain, Extra: l.enemyHitboxes()}, l.playerHazards())
	if p.Jumped() {
		l.Events.publishSound(config.SoundPlayerJump)
	}

	// 3. Camera
	l.Camera.Follow(p.Position.X)

	// 4. Player particles
	l.Particles = append(l.Particles, p.DrainParticles()...)

	// 5. Enemies
	l.updateEnemies(delta)

	// 6. Bullets, enemy projectiles, particles
	l.updateBullets(delta)
	l.updateProjectiles(delta)
	for _, pt := range l.Particles {
		pt.Update(delta)
	}

	// 7. Sweep
	l.sweep()

	// 8. Edges and notifications
	l.Input.Flush()
	l.Events.Dispatch()
}

func (l *Level) applyInput() {
	p := l.Player
	in := &l.Input

	p.SetDirection(in.Direction(p.Direction))
	if in.JustPressed[config.ActionJump] {
		p.BufferJump()
	}
	if in.JustPressed[config.ActionShoot] {
		if b := p.Shoot(); b != nil {
			l.Bullets = append(l.Bullets, b)
			l.Events.publishSound(config.SoundPlayerShoot)
		}
	}
}

func (l *Level) enemyHitboxes() []gamemath.Rect {
	boxes := make([]gamemath.Rect, len(l.Enemies))
	for i, e := range l.Enemies {
		boxes[i] = e.MovementHitbox()
	}
	return boxes
}

// playerHazards are the rectangles that knock the player back: live enemy
// hurtboxes and enemy projectiles.
func (l *Level) playerHazards() []gamemath.Rect {
	hazards := l.Hurtboxes()
	for _, pr := range l.Projectiles {
		hazards = append(hazards, pr.MovementHitbox())
	}
	return hazards
}

// Hurtboxes returns the enemy hurtboxes live this tick.
func (l *Level) Hurtboxes() []gamemath.Rect {
	var boxes []gamemath.Rect
	for _, e := range l.Enemies {
		if hb, ok := e.Hurtbox(); ok {
			boxes = append(boxes, hb)
		}
	}
	return boxes
}

func (l *Level) updateEnemies(delta float64) {
	p := l.Player
	target := actors.Target{Center: p.Center(), Hitbox: p.MovementHitbox()}
	boxes := l.enemyHitboxes()

	for i, e := range l.Enemies {
		others := make([]gamemath.Rect, 0, len(boxes)-1)
		others = append(others, boxes[:i]...)
		others = append(others, boxes[i+1:]...)

		e.Update(delta, target, Solids{Terrain: l.terrain, Extra: others})
		boxes[i] = e.MovementHitbox()

		if hb, ok := e.Hurtbox(); ok && hb.Intersects(target.Hitbox) {
			p.TakeHit(hb)
		}
		if e.HasProjectile() {
			if pr := e.Projectile(target.Center); pr != nil {
				l.Projectiles = append(l.Projectiles, pr)
			}
		}
	}
}

func (l *Level) updateBullets(delta float64) {
	if len(l.Bullets) == 0 {
		return
	}
	targets := make([]actors.Damageable, 0, len(l.Enemies)+len(l.Projectiles))
	for _, e := range l.Enemies {
		targets = append(targets, e)
	}
	for _, pr := range l.Projectiles {
		targets = append(targets, pr)
	}

	for _, b := range l.Bullets {
		b.Update(delta)
		if hit := b.CheckCollisions(l.terrain, targets); hit != nil {
			hit.TakeDamage()
		}
	}
}

func (l *Level) updateProjectiles(delta float64) {
	p := l.Player
	for _, pr := range l.Projectiles {
		pr.Update(delta, l.terrain)
		if pr.Deleted {
			continue
		}
		if box := pr.MovementHitbox(); box.Intersects(p.MovementHitbox()) {
			pr.Deleted = true
			p.TakeHit(box)
		}
	}
}

// sweep drops everything flagged during the tick. Dead enemies leave a
// death particle and raise one EnemyKilled each.
func (l *Level) sweep() {
	alive := make([]actors.Enemy, 0, len(l.Enemies))
	for _, e := range l.Enemies {
		if e.IsAlive() {
			alive = append(alive, e)
			continue
		}
		l.Particles = append(l.Particles, e.DeathParticle())
		l.Events.publishKill(EnemyKilled{Kind: e.Kind(), Position: e.MovementHitbox().Pos()})
	}
	l.Enemies = alive

	l.Bullets = keep(l.Bullets, func(b *actors.Bullet) bool { return !b.Deleted })
	l.Projectiles = keep(l.Projectiles, func(pr *actors.Projectile) bool { return !pr.Deleted })
	l.Particles = keep(l.Particles, func(pt *actors.Particle) bool { return !pt.Finished() })
}

// keep returns a new slice with the elements ok accepts.
func keep[T any](items []T, ok func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if ok(it) {
			out = append(out, it)
		}
	}
	return out
}
