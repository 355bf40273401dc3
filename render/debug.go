package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/onionrun/fonts"
	"github.com/automoto/onionrun/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

var (
	hitboxColor    = color.RGBA{0, 255, 0, 200}
	hurtboxColor   = color.RGBA{255, 40, 40, 200}
	candidateColor = color.RGBA{255, 220, 0, 120}
	debugText      = color.RGBA{255, 255, 255, 255}
)

// Hitboxes outlines every movement hitbox and live hurtbox. Platforms the
// broadphase returns for the player are highlighted.
func Hitboxes(screen *ebiten.Image, l *level.Level) {
	cam := l.Camera
	p := l.Player

	for _, r := range l.Terrain().Colliders(p.MovementHitbox()) {
		fillRect(screen, cam.Offset, r, candidateColor)
	}

	strokeRect(screen, cam.Offset, p.MovementHitbox(), hitboxColor)
	for _, e := range l.Enemies {
		strokeRect(screen, cam.Offset, e.MovementHitbox(), hitboxColor)
	}
	for _, b := range l.Bullets {
		strokeRect(screen, cam.Offset, b.MovementHitbox(), hitboxColor)
	}
	for _, pr := range l.Projectiles {
		strokeRect(screen, cam.Offset, pr.MovementHitbox(), hurtboxColor)
	}
	for _, hb := range l.Hurtboxes() {
		strokeRect(screen, cam.Offset, hb, hurtboxColor)
	}

	stats := fmt.Sprintf("x %.1f y %.1f  enemies %d  bullets %d  projectiles %d",
		p.Position.X, p.Position.Y, len(l.Enemies), len(l.Bullets), len(l.Projectiles))
	text.Draw(screen, stats, fonts.Small.Get(), 4, 12, debugText)
}
