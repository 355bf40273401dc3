// Package render draws simulation state with ebitengine. It only reads
// state; nothing here mutates the level.
package render

import (
	"image/color"

	"github.com/automoto/onionrun/actors"
	"github.com/automoto/onionrun/assets"
	"github.com/automoto/onionrun/level"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	backgroundColor = color.RGBA{24, 20, 37, 255}
	platformColor   = color.RGBA{90, 105, 136, 255}
)

// cullPadding keeps sprites from popping at the viewport edges.
const cullPadding = 64

// Level draws terrain, then particles, enemies, projectiles, bullets and
// the player, in that order.
func Level(screen *ebiten.Image, reg *assets.Registry, l *level.Level) {
	screen.Fill(backgroundColor)
	cam := l.Camera
	view := cam.View().Inflate(cullPadding)

	for _, p := range l.Platforms() {
		if !view.Intersects(p) {
			continue
		}
		fillRect(screen, cam.Offset, p, platformColor)
	}

	for _, pt := range l.Particles {
		drawFrame(screen, reg, cam, view, pt.CurrentFrame())
	}
	for _, e := range l.Enemies {
		drawFrame(screen, reg, cam, view, e.CurrentFrame())
	}
	for _, pr := range l.Projectiles {
		drawFrame(screen, reg, cam, view, pr.CurrentFrame())
	}
	for _, b := range l.Bullets {
		drawFrame(screen, reg, cam, view, b.CurrentFrame())
	}
	drawFrame(screen, reg, cam, view, l.Player.CurrentFrame())
}

// drawFrame draws one actor frame, mirrored when FlipH is set. A flashing
// actor is drawn with its silhouette on top.
func drawFrame(screen *ebiten.Image, reg *assets.Registry, cam *level.Camera, view gamemath.Rect, f actors.Frame) {
	img := reg.Frame(f.Clip, f.Index)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if !view.Intersects(gamemath.R(f.Position.X, f.Position.Y, float64(w), float64(h))) {
		return
	}
	pos := cam.ToScreen(f.Position)

	drawOp.GeoM.Reset()
	if f.FlipH {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(w), 0)
	}
	drawOp.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, drawOp)

	if f.Flash {
		if s := reg.Silhouette(f.Clip, f.Index); s != nil {
			screen.DrawImage(s, drawOp)
		}
	}
}

func fillRect(screen *ebiten.Image, offset gamemath.Vector, r gamemath.Rect, clr color.Color) {
	p := r.Pos().Sub(offset)
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, offset gamemath.Vector, r gamemath.Rect, clr color.Color) {
	p := r.Pos().Sub(offset)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(r.W), float32(r.H), 1, clr, false)
}
