// Package leveldata reads and writes level descriptions: the line-oriented
// text format, TMX maps and raster images. It has no dependencies on
// ebitengine or resolv, pure data only.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/shared/gamemath"
)

// Level is everything the simulation needs to build a playable level.
type Level struct {
	Width       int
	Height      int
	PlayerSpawn gamemath.Vector
	Platforms   []gamemath.Rect
	Enemies     []EnemySpawn
}

// EnemySpawn places one enemy. Kind is the level-file name of the variant.
type EnemySpawn struct {
	Kind     string
	Position gamemath.Vector
}

// DefaultEnemyKind is used when an enemy line carries no kind.
const DefaultEnemyKind = "chaser"

// New returns an empty level of the given size with the default spawn.
func New(width, height int) *Level {
	return &Level{
		Width:       width,
		Height:      height,
		PlayerSpawn: config.Player.Spawn,
	}
}

// Bounds returns the level area. When no size was given it falls back to
// the union of the platforms.
func (l *Level) Bounds() gamemath.Rect {
	if l.Width > 0 && l.Height > 0 {
		return gamemath.R(0, 0, float64(l.Width), float64(l.Height))
	}
	var b gamemath.Rect
	for i, p := range l.Platforms {
		if i == 0 {
			b = p
			continue
		}
		b = b.Union(p)
	}
	return b
}

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed level data")

// ParseError describes the offending line of a text level.
type ParseError struct {
	Line  int
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s=%s: %v", e.Line, e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("line %d: %s=%s: %v", e.Line, e.Key, e.Value, ErrMalformed)
}

// Unwrap exposes ErrMalformed alongside the underlying cause, so callers can
// match either with errors.Is or errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}
