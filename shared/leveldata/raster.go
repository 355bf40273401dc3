package leveldata

import (
	"fmt"
	"image"
	_ "image/png" // raster levels are PNG
	"io"
)

// FromImage generates a level from a raster map where every opaque black
// pixel is solid. Pixels become 1x1 cells in world units.
func FromImage(img image.Image) *Level {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Set(x, y, isSolid(img, b.Min.X+x, b.Min.Y+y))
		}
	}
	lvl := New(g.Width, g.Height)
	lvl.Platforms = g.Merge(1, 1)
	return lvl
}

func isSolid(img image.Image, x, y int) bool {
	r, g, b, a := img.At(x, y).RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0xffff
}

// DecodeRaster decodes an image and generates its level.
func DecodeRaster(r io.Reader) (*Level, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode raster level: %w", err)
	}
	return FromImage(img), nil
}
