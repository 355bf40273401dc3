package scenes

import (
	"image/color"

	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/fonts"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	optionResume = "Resume"
	optionSound  = "Sound"
	optionExit   = "Exit"
)

type button struct {
	Label string
	Rect  gamemath.Rect
}

// layoutButtons stacks one button per label, centred on the screen.
func layoutButtons(labels []string, screenW, screenH float64) []button {
	cfg := config.Pause
	total := float64(len(labels))*cfg.ButtonHeight + float64(max(len(labels)-1, 0))*cfg.ButtonGap
	x := (screenW - cfg.ButtonWidth) / 2
	y := (screenH - total) / 2

	out := make([]button, len(labels))
	for i, l := range labels {
		out[i] = button{Label: l, Rect: gamemath.R(x, y, cfg.ButtonWidth, cfg.ButtonHeight)}
		y += cfg.ButtonHeight + cfg.ButtonGap
	}
	return out
}

// buttonAt returns the index of the button under p, or -1.
func buttonAt(buttons []button, p gamemath.Vector) int {
	for i, b := range buttons {
		if b.Rect.ContainsPoint(p) {
			return i
		}
	}
	return -1
}

// soundLabel is the text of the sound button for the current preference.
func soundLabel(muted bool) string {
	if muted {
		return optionSound + ": off"
	}
	return optionSound + ": on"
}

// PauseScene dims the frozen level and offers Resume, a sound toggle and
// Exit.
type PauseScene struct {
	env     *Env
	play    *PlayScene
	buttons []button
	hover   int
	fade    *gween.Tween
	alpha   float32
}

func NewPauseScene(env *Env, play *PlayScene) *PauseScene {
	return &PauseScene{
		env:     env,
		play:    play,
		buttons: layoutButtons(config.Pause.MenuOptions, float64(config.C.Width), float64(config.C.Height)),
		hover:   -1,
		fade:    gween.New(0, 1, config.Pause.FadeSeconds, ease.OutQuad),
	}
}

func (s *PauseScene) Overlay() bool { return true }

func (s *PauseScene) Update() error {
	s.alpha, _ = s.fade.Update(1 / float32(config.C.TPS))

	mx, my := ebiten.CursorPosition()
	s.hover = buttonAt(s.buttons, gamemath.Vec(float64(mx), float64(my)))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return s.choose(optionResume)
	}
	if s.hover >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return s.choose(s.buttons[s.hover].Label)
	}
	return nil
}

// choose acts on a menu option. Exit leaves the level: back to the scene
// that started it, or out of the game when there is none.
func (s *PauseScene) choose(option string) error {
	switch option {
	case optionResume:
		s.env.Stack.Pop()
		s.play.Resume()
	case optionSound:
		s.env.toggleSound()
	case optionExit:
		s.env.Stack.Pop()
		s.env.Stack.Pop()
		if s.env.Stack.Len() == 0 {
			return ErrQuit
		}
	}
	return nil
}

func (s *PauseScene) Draw(screen *ebiten.Image) {
	cfg := config.Pause
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	overlay := cfg.OverlayColor
	overlay.A = uint8(float32(overlay.A) * s.alpha)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), overlay, false)

	face := fonts.Regular.Get()
	for i, b := range s.buttons {
		var clr color.Color = cfg.ButtonColor
		if i == s.hover {
			clr = cfg.ButtonHover
		}
		r := b.Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)

		label := b.Label
		if label == optionSound {
			label = soundLabel(s.env.Prefs.Muted)
		}
		bounds := text.BoundString(face, label)
		tx := int(r.X + (r.W-float64(bounds.Dx()))/2)
		ty := int(r.Y + (r.H+float64(bounds.Dy()))/2)
		text.Draw(screen, label, face, tx, ty, cfg.TextColor)
	}
}
