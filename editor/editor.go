// Package editor is the level editor model: a level document, a text
// command line, grid snapping and mouse picking. The scene layer feeds it
// screen-space mouse positions and typed runes and draws its state.
package editor

import (
	"math"
	"slices"
	"strings"

	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/automoto/onionrun/shared/leveldata"
)

// ObjectKind tags what a Handle points at.
type ObjectKind int

const (
	ObjectPlatform ObjectKind = iota
	ObjectEnemy
	ObjectPlayer
)

// Handle refers to one object in the document.
type Handle struct {
	Kind  ObjectKind
	Index int
}

type Editor struct {
	Doc      *leveldata.Level
	Camera   gamemath.Vector
	GridSize int
	ShowGrid bool

	// Line is the command being typed.
	Line string
	// Status is the outcome of the last command.
	Status string

	held   *Handle
	cursor gamemath.Vector // last mouse position, screen space
}

func New(doc *leveldata.Level) *Editor {
	if doc == nil {
		doc = leveldata.New(config.C.Width, config.C.Height)
	}
	return &Editor{
		Doc:      doc,
		GridSize: config.Editor.GridSize,
		ShowGrid: true,
	}
}

// Snap floors a screen position to the grid.
func (e *Editor) Snap(p gamemath.Vector) gamemath.Vector {
	g := float64(e.GridSize)
	return gamemath.Vec(math.Floor(p.X/g)*g, math.Floor(p.Y/g)*g)
}

// ToWorld converts a screen position to world space.
func (e *Editor) ToWorld(screen gamemath.Vector) gamemath.Vector {
	return screen.Add(e.Camera)
}

// Hover records the cursor and drags the held object to the snapped
// cursor position.
func (e *Editor) Hover(screen gamemath.Vector) {
	e.cursor = screen
	if e.held != nil {
		e.moveHeld(e.Snap(screen).Add(e.Camera))
	}
}

// Pan drags the camera by a screen-space mouse delta.
func (e *Editor) Pan(d gamemath.Vector) {
	e.Camera = e.Camera.Sub(d)
}

// Click drops the held object, or picks the object under the cursor when
// nothing is held and no command is being typed.
func (e *Editor) Click(screen gamemath.Vector) {
	if e.held != nil {
		e.held = nil
		return
	}
	if e.Line != "" {
		return
	}
	if h, ok := e.ObjectAt(e.ToWorld(screen)); ok {
		e.held = &h
	}
}

// ObjectAt returns the object under a world position. Platforms are
// searched first, then enemies, then the player spawn.
func (e *Editor) ObjectAt(p gamemath.Vector) (Handle, bool) {
	for i, r := range e.Doc.Platforms {
		if r.ContainsPoint(p) {
			return Handle{Kind: ObjectPlatform, Index: i}, true
		}
	}
	for i, en := range e.Doc.Enemies {
		if markerAt(en.Position).ContainsPoint(p) {
			return Handle{Kind: ObjectEnemy, Index: i}, true
		}
	}
	if markerAt(e.Doc.PlayerSpawn).ContainsPoint(p) {
		return Handle{Kind: ObjectPlayer}, true
	}
	return Handle{}, false
}

func markerAt(p gamemath.Vector) gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: config.Editor.MarkerSize.X, H: config.Editor.MarkerSize.Y}
}

// Held returns the object being dragged.
func (e *Editor) Held() (Handle, bool) {
	if e.held == nil {
		return Handle{}, false
	}
	return *e.held, true
}

// Rect returns the world rectangle of h.
func (e *Editor) Rect(h Handle) gamemath.Rect {
	switch h.Kind {
	case ObjectPlatform:
		return e.Doc.Platforms[h.Index]
	case ObjectEnemy:
		return markerAt(e.Doc.Enemies[h.Index].Position)
	default:
		return markerAt(e.Doc.PlayerSpawn)
	}
}

func (e *Editor) moveHeld(p gamemath.Vector) {
	switch e.held.Kind {
	case ObjectPlatform:
		e.Doc.Platforms[e.held.Index].X = p.X
		e.Doc.Platforms[e.held.Index].Y = p.Y
	case ObjectEnemy:
		e.Doc.Enemies[e.held.Index].Position = p
	case ObjectPlayer:
		e.Doc.PlayerSpawn = p
	}
}

// DeleteHeld removes the held platform or enemy. The player spawn cannot
// be deleted.
func (e *Editor) DeleteHeld() bool {
	if e.held == nil {
		return false
	}
	switch e.held.Kind {
	case ObjectPlatform:
		e.Doc.Platforms = slices.Delete(e.Doc.Platforms, e.held.Index, e.held.Index+1)
	case ObjectEnemy:
		e.Doc.Enemies = slices.Delete(e.Doc.Enemies, e.held.Index, e.held.Index+1)
	default:
		return false
	}
	e.held = nil
	return true
}

// Type appends a rune to the command line. Only letters, digits, space and
// path punctuation are accepted, and nothing is typed while holding.
func (e *Editor) Type(r rune) {
	if e.held != nil {
		return
	}
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
	case strings.ContainsRune(" ._-/", r):
	default:
		return
	}
	e.Line += string(r)
}

func (e *Editor) Backspace() {
	if n := len(e.Line); n > 0 {
		e.Line = e.Line[:n-1]
	}
}

// Submit runs the typed command and clears the line.
func (e *Editor) Submit() error {
	line := e.Line
	e.Line = ""
	err := e.Exec(line)
	if err != nil {
		e.Status = err.Error()
	}
	return err
}

// PlayTest returns a copy of the document for the play scene, grown to
// cover every platform.
func (e *Editor) PlayTest() *leveldata.Level {
	doc := *e.Doc
	doc.Platforms = slices.Clone(e.Doc.Platforms)
	doc.Enemies = slices.Clone(e.Doc.Enemies)
	fit(&doc)
	return &doc
}

// fit grows the level size to the far edges of its platforms.
func fit(doc *leveldata.Level) {
	for _, p := range doc.Platforms {
		doc.Width = max(doc.Width, int(math.Ceil(p.Right())))
		doc.Height = max(doc.Height, int(math.Ceil(p.Bottom())))
	}
}
