// Package assets loads sprite sheets and sound effects from the resource
// directory and builds the clip library the simulation reads frame counts
// from.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/onionrun/assets/animations"
	"github.com/automoto/onionrun/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteDir is the sheet directory under the resource root.
const SpriteDir = "sprites"

// Registry holds the frames of every clip and, for flash clips, a white
// silhouette of each frame.
type Registry struct {
	frames      map[string][]*ebiten.Image
	silhouettes map[string][]*ebiten.Image
	lib         *animations.Library
}

// LoadRegistry reads <SpriteDir>/<clip>.png for every clip in config.Clips.
// Sheets are horizontal strips; the frame count comes from the sheet width.
// A missing sheet is replaced by a flat placeholder with the default count.
func LoadRegistry(fsys fs.FS) *Registry {
	r := &Registry{
		frames:      make(map[string][]*ebiten.Image, len(config.Clips)),
		silhouettes: make(map[string][]*ebiten.Image),
	}
	counts := make(map[string]int, len(config.Clips))

	names := make([]string, 0, len(config.Clips))
	for name := range config.Clips {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := config.Clips[name]
		sheet, err := loadImage(fsys, path.Join(SpriteDir, name+".png"))
		if err != nil {
			log.Debug("sprite sheet missing, using placeholder", "clip", name, "err", err)
			sheet = placeholder(name, def)
		}

		n := frameCount(sheet.Bounds().Dx(), def.FrameWidth)
		frames := make([]*ebiten.Image, n)
		for i := range frames {
			rect := image.Rect(i*def.FrameWidth, 0, (i+1)*def.FrameWidth, def.FrameHeight)
			frames[i] = sheet.SubImage(rect).(*ebiten.Image)
		}
		r.frames[name] = frames
		counts[name] = n

		if def.Flash {
			r.silhouettes[name] = silhouettes(frames)
		}
	}

	r.lib = animations.FromDefs(config.Clips, counts)
	log.Info("sprites loaded", "clips", len(names))
	return r
}

// Library returns the clip library matching the loaded sheets.
func (r *Registry) Library() *animations.Library {
	return r.lib
}

// Frame returns frame i of clip. Unknown clips panic like the library does.
func (r *Registry) Frame(clip string, i int) *ebiten.Image {
	frames, ok := r.frames[clip]
	if !ok {
		panic(fmt.Sprintf("sprite clip %q not loaded", clip))
	}
	return frames[i%len(frames)]
}

// Silhouette returns the white silhouette of frame i, or nil when clip has
// no flash set.
func (r *Registry) Silhouette(clip string, i int) *ebiten.Image {
	frames := r.silhouettes[clip]
	if len(frames) == 0 {
		return nil
	}
	return frames[i%len(frames)]
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// frameCount is the number of whole frames in a strip, at least one.
func frameCount(sheetWidth, frameWidth int) int {
	if frameWidth <= 0 {
		return 1
	}
	return max(1, sheetWidth/frameWidth)
}

func placeholder(name string, def config.ClipDef) *ebiten.Image {
	img := ebiten.NewImage(def.Frames*def.FrameWidth, def.FrameHeight)
	img.Fill(placeholderColor(name))
	return img
}

func placeholderColor(clip string) color.RGBA {
	switch {
	case strings.HasPrefix(clip, "player"):
		return color.RGBA{80, 160, 255, 255}
	case strings.HasPrefix(clip, "onion"):
		return color.RGBA{190, 120, 220, 255}
	case strings.HasPrefix(clip, "tomato"):
		return color.RGBA{230, 70, 60, 255}
	}
	return color.RGBA{255, 0, 255, 255}
}

// silhouettes maps every opaque pixel to white and keeps alpha.
func silhouettes(frames []*ebiten.Image) []*ebiten.Image {
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, 1)
	cm.Translate(1, 1, 1, 0)

	out := make([]*ebiten.Image, len(frames))
	for i, f := range frames {
		b := f.Bounds()
		dst := ebiten.NewImage(b.Dx(), b.Dy())
		colorm.DrawImage(dst, f, cm, &colorm.DrawImageOptions{})
		out[i] = dst
	}
	return out
}
