// onionrun is a side-scrolling platformer with a built-in level editor.
//
// Usage:
//
//	onionrun [--level id] [--res dir] [--tuning file] [--editor] [--debug] [--hitboxes]
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/onionrun/assets"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/editor"
	"github.com/automoto/onionrun/fonts"
	"github.com/automoto/onionrun/persistence"
	"github.com/automoto/onionrun/scenes"
	"github.com/automoto/onionrun/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
)

var (
	flagLevel    string
	flagRes      string
	flagTuning   string
	flagEditor   bool
	flagDebug    bool
	flagHitboxes bool
)

type Game struct {
	stack *scenes.Stack
}

func (g *Game) Update() error {
	err := g.stack.Update()
	if errors.Is(err, scenes.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "onionrun",
	Short: "Onion Run - a side-scrolling platformer",
	Long: `Run and gun through vegetable-infested levels.

Controls:
  A/D or arrows   - Move
  Space/W/Up      - Jump
  L/J             - Shoot
  Esc/P           - Pause
  F1              - Toggle hitboxes
  F11             - Toggle fullscreen

Editor (--editor):
  type a command and press Enter:
    place floor|platform|chaser|lobber
    grid toggle|on|off|size N
    save PATH | load PATH
  click to pick up or drop, d deletes the held object,
  right-drag or arrows pan, F5 play-tests.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level id to load (default: last played)")
	rootCmd.Flags().StringVar(&flagRes, "res", "res", "Resource directory for sprites, sounds, fonts and levels")
	rootCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to a YAML tuning overlay")
	rootCmd.Flags().BoolVar(&flagEditor, "editor", false, "Open the level editor")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Draw hitboxes and hurtboxes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	applied, err := config.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	if applied != "" {
		log.Info("tuning applied", "path", applied)
	}

	res := os.DirFS(flagRes)
	fonts.Load(res, "fonts/font.ttf")

	settings, err := persistence.Open()
	if err != nil {
		log.Warn("settings unavailable", "err", err)
	}
	saved := settings.LoadOrDefaults()
	config.Debug.Hitboxes = flagHitboxes

	sfx := assets.NewAudioLoader(audio.NewContext(config.Audio.SampleRate), res)
	sfx.PreloadSFX(config.SoundPlayerJump, config.SoundPlayerShoot)

	env := &scenes.Env{
		Stack:    scenes.NewStack(),
		Assets:   assets.LoadRegistry(res),
		Audio:    sfx,
		Levels:   leveldata.NewDirLoader(filepath.Join(flagRes, config.Level.Dir), leveldata.Builtin()),
		Settings: settings,
		Prefs:    saved,
	}
	env.ApplySound()

	id := flagLevel
	if id == "" {
		id = saved.LastLevel
	}
	if id == "" {
		id = config.Level.Default
	}

	if flagEditor {
		doc, err := env.Levels.Load(id)
		if err != nil {
			log.Info("starting with an empty level", "id", id, "err", err)
		}
		env.Stack.Push(scenes.NewEditorScene(env, editor.New(doc)))
	} else {
		ps, err := scenes.LoadPlayScene(env, id)
		if err != nil {
			return err
		}
		env.Stack.Push(ps)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(saved.Fullscreen)

	return ebiten.RunGame(&Game{stack: env.Stack})
}
