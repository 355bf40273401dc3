package scenes

import (
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/editor"
	"github.com/automoto/onionrun/render"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// statusSeconds is how long a status message takes to fade out.
const statusSeconds = 2.5

// EditorScene drives the level editor. F5 play-tests the document.
type EditorScene struct {
	env    *Env
	ed     *editor.Editor
	chars  []rune
	mouse  gamemath.Vector
	status string
	fade   *gween.Tween
	alpha  float32
}

func NewEditorScene(env *Env, ed *editor.Editor) *EditorScene {
	return &EditorScene{env: env, ed: ed}
}

func (s *EditorScene) Update() error {
	s.handleKeys()
	s.handleMouse()
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		s.playTest()
	}
	s.updateStatus()
	return nil
}

func (s *EditorScene) handleKeys() {
	ed := s.ed
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		if _, holding := ed.Held(); holding {
			if r == 'd' {
				ed.DeleteHeld()
			}
			continue
		}
		ed.Type(r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ed.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		submit(ed)
	}

	pan := config.Editor.PanSpeed
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		ed.Pan(gamemath.Vec(pan, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		ed.Pan(gamemath.Vec(-pan, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		ed.Pan(gamemath.Vec(0, pan))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		ed.Pan(gamemath.Vec(0, -pan))
	}
}

func (s *EditorScene) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pos := gamemath.Vec(float64(mx), float64(my))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		s.ed.Pan(pos.Sub(s.mouse))
	}
	s.mouse = pos

	s.ed.Hover(pos)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.ed.Click(pos)
	}
}

func (s *EditorScene) playTest() {
	ps, err := NewPlayScene(s.env, s.ed.PlayTest())
	if err != nil {
		s.ed.Status = err.Error()
		log.Warn("play-test failed", "err", err)
		return
	}
	s.env.Stack.Push(ps)
}

func (s *EditorScene) updateStatus() {
	if s.ed.Status != s.status {
		s.status = s.ed.Status
		s.fade = gween.New(1, 0, statusSeconds, ease.InQuad)
	}
	if s.fade != nil {
		s.alpha, _ = s.fade.Update(1 / float32(config.C.TPS))
	}
}

func (s *EditorScene) Draw(screen *ebiten.Image) {
	render.Editor(screen, s.env.Assets, s.ed, s.alpha)
}

// submit runs the typed command. A failure is shown on the status line
// by the editor and logged here.
func submit(ed *editor.Editor) {
	if err := ed.Submit(); err != nil {
		log.Warn("editor command failed", "err", err)
	}
}
