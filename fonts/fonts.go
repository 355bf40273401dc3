package fonts

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

var sizes = map[FontName]float64{
	Regular: 12,
	Title:   24,
	Small:   9,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Load parses the TTF at path and registers every face. When the file is
// missing or unreadable all faces fall back to the 7x13 bitmap font.
func Load(fsys fs.FS, path string) {
	ttf, err := fs.ReadFile(fsys, path)
	if err == nil {
		err = LoadTTF(ttf)
	}
	if err != nil {
		log.Debug("using bitmap font", "path", path, "err", err)
		for name := range sizes {
			fonts[name] = basicfont.Face7x13
		}
	}
}

// LoadTTF registers every face from TTF data.
func LoadTTF(ttf []byte) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	for name, size := range sizes {
		fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	}
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
