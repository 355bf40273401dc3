package render

import (
	"image/color"
	"math"

	"github.com/automoto/onionrun/actors"
	"github.com/automoto/onionrun/assets"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/editor"
	"github.com/automoto/onionrun/fonts"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gridColor   = color.RGBA{255, 255, 255, 24}
	heldColor   = color.RGBA{255, 220, 0, 255}
	promptColor = color.RGBA{0, 0, 0, 180}
)

// Editor draws the document, the grid, the held object and the command
// line. statusAlpha fades the last status message (0..1).
func Editor(screen *ebiten.Image, reg *assets.Registry, e *editor.Editor, statusAlpha float32) {
	screen.Fill(backgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if e.ShowGrid {
		drawGrid(screen, e, w, h)
	}

	for _, p := range e.Doc.Platforms {
		fillRect(screen, e.Camera, p, platformColor)
	}
	for _, en := range e.Doc.Enemies {
		clip := config.Chaser.RunClip
		if kind, err := actors.ParseKind(en.Kind); err == nil && kind == actors.KindLobber {
			clip = config.Lobber.RunClip
		}
		drawMarker(screen, reg, clip, en.Position.Sub(e.Camera))
	}
	drawMarker(screen, reg, config.ClipPlayerRun, e.Doc.PlayerSpawn.Sub(e.Camera))

	if held, ok := e.Held(); ok {
		strokeRect(screen, e.Camera, e.Rect(held), heldColor)
	}

	vector.FillRect(screen, 0, float32(h-18), float32(w), 18, promptColor, false)
	text.Draw(screen, "> "+e.Line, fonts.Regular.Get(), 4, h-5, debugText)
	if e.Status != "" && statusAlpha > 0 {
		clr := color.NRGBA{255, 255, 255, uint8(255 * min(statusAlpha, 1))}
		text.Draw(screen, e.Status, fonts.Small.Get(), 4, 12, clr)
	}
}

func drawGrid(screen *ebiten.Image, e *editor.Editor, w, h int) {
	g := float64(e.GridSize)
	startX := -math.Mod(e.Camera.X, g)
	if startX > 0 {
		startX -= g
	}
	for x := startX; x < float64(w); x += g {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, gridColor, false)
	}
	startY := -math.Mod(e.Camera.Y, g)
	if startY > 0 {
		startY -= g
	}
	for y := startY; y < float64(h); y += g {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, gridColor, false)
	}
}

// drawMarker draws the first frame of clip at a screen position.
func drawMarker(screen *ebiten.Image, reg *assets.Registry, clip string, pos gamemath.Vector) {
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(reg.Frame(clip, 0), drawOp)
}
