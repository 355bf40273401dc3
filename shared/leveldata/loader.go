package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Source extensions in lookup order.
const (
	ExtText   = ".txt"
	ExtTMX    = ".tmx"
	ExtRaster = ".png"
)

// Loader resolves a level id to a Level by trying <id>.txt, <id>.tmx and
// <id>.png in that order. Raster levels are written back as text into
// CacheDir so the next load skips generation.
type Loader struct {
	FS fs.FS
	// Fallback is searched when FS has no source for an id.
	Fallback fs.FS
	// CacheDir is an OS directory; empty disables caching.
	CacheDir string
}

// NewDirLoader loads from an OS directory and caches generated levels there.
func NewDirLoader(dir string, fallback fs.FS) *Loader {
	return &Loader{FS: os.DirFS(dir), Fallback: fallback, CacheDir: dir}
}

// Load returns the level named id. A missing level wraps fs.ErrNotExist;
// malformed data wraps ErrMalformed.
func (l *Loader) Load(id string) (*Level, error) {
	for i, fsys := range []fs.FS{l.FS, l.Fallback} {
		if fsys == nil {
			continue
		}
		lvl, err := l.loadFrom(fsys, id, i == 0)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", id, err)
		}
		return lvl, nil
	}
	return nil, fmt.Errorf("level %q: %w", id, fs.ErrNotExist)
}

func (l *Loader) loadFrom(fsys fs.FS, id string, cache bool) (*Level, error) {
	if f, err := fsys.Open(id + ExtText); err == nil {
		defer f.Close()
		return Parse(f)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if _, err := fs.Stat(fsys, id+ExtTMX); err == nil {
		return LoadTMX(fsys, id+ExtTMX)
	}

	f, err := fsys.Open(id + ExtRaster)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lvl, err := DecodeRaster(f)
	if err != nil {
		return nil, err
	}
	log.Info("generated level from raster", "id", id, "platforms", len(lvl.Platforms))
	if cache && l.CacheDir != "" {
		path := filepath.Join(l.CacheDir, id+ExtText)
		if err := Save(path, lvl); err != nil {
			log.Warn("could not cache generated level", "path", path, "err", err)
		}
	}
	return lvl, nil
}

// Save writes l to path in the text format.
func Save(path string, l *Level) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	if err := Write(f, l); err != nil {
		f.Close()
		return fmt.Errorf("save level %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile reads a single text level from an OS path.
func LoadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	defer f.Close()
	lvl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return lvl, nil
}
