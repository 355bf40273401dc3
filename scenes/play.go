package scenes

import (
	"fmt"

	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/level"
	"github.com/automoto/onionrun/render"
	"github.com/automoto/onionrun/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayScene runs a level.
type PlayScene struct {
	env      *Env
	level    *level.Level
	clock    *Clock
	bindings Bindings
	focused  bool
}

// NewPlayScene builds the level from data. Malformed data returns an
// error and no scene.
func NewPlayScene(env *Env, data *leveldata.Level) (*PlayScene, error) {
	lvl, err := level.Load(data, env.Assets.Library())
	if err != nil {
		return nil, fmt.Errorf("start level: %w", err)
	}

	ps := &PlayScene{
		env:      env,
		level:    lvl,
		clock:    NewClock(),
		bindings: DefaultBindings(),
		focused:  true,
	}
	lvl.Events.OnSound(func(c level.SoundCue) {
		if env.Audio != nil {
			env.Audio.Play(c.Name)
		}
	})
	lvl.Events.OnEnemyKilled(func(e level.EnemyKilled) {
		log.Debug("enemy killed", "kind", e.Kind, "x", e.Position.X, "y", e.Position.Y)
	})
	return ps, nil
}

// LoadPlayScene loads level id through the env's loader.
func LoadPlayScene(env *Env, id string) (*PlayScene, error) {
	data, err := env.Levels.Load(id)
	if err != nil {
		return nil, err
	}
	ps, err := NewPlayScene(env, data)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", id, err)
	}
	env.Prefs.LastLevel = id
	env.savePrefs()
	log.Info("level started", "id", id)
	return ps, nil
}

func (ps *PlayScene) Update() error {
	if !ebiten.IsFocused() {
		if ps.focused {
			ps.level.Input.Reset()
			ps.focused = false
		}
		ps.clock.Reset()
		return nil
	}
	ps.focused = true

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ps.env.Stack.Push(NewPauseScene(ps.env, ps))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		config.Debug.Hitboxes = !config.Debug.Hitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(ps.env.toggleFullscreen())
	}

	ps.bindings.Poll(&ps.level.Input)
	ps.level.Update(ps.clock.Tick())
	return nil
}

// Resume is called when the pause scene above is dismissed.
func (ps *PlayScene) Resume() {
	ps.level.OnResume()
	ps.clock.Reset()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	render.Level(screen, ps.env.Assets, ps.level)
	if config.Debug.Hitboxes {
		render.Hitboxes(screen, ps.level)
	}
}
