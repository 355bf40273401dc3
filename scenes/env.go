package scenes

import (
	"github.com/automoto/onionrun/assets"
	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/persistence"
	"github.com/automoto/onionrun/shared/leveldata"
	"github.com/charmbracelet/log"
)

// Env is what every scene shares.
type Env struct {
	Stack    *Stack
	Assets   *assets.Registry
	Audio    *assets.AudioLoader // nil when audio is unavailable
	Levels   *leveldata.Loader
	Settings *persistence.Manager // nil when persistence is unavailable
	Prefs    *persistence.Settings
}

// ApplySound sets the sound volume from Prefs.
func (e *Env) ApplySound() {
	if e.Audio == nil {
		return
	}
	if e.Prefs.Muted {
		e.Audio.SetVolume(0)
		return
	}
	e.Audio.SetVolume(config.Audio.DefaultSFXVol)
}

// toggleSound flips the mute preference, applies it and saves it.
func (e *Env) toggleSound() {
	e.Prefs.Muted = !e.Prefs.Muted
	e.ApplySound()
	e.savePrefs()
}

// toggleFullscreen flips the fullscreen preference, saves it and returns
// the new value for the caller to apply to the window.
func (e *Env) toggleFullscreen() bool {
	e.Prefs.Fullscreen = !e.Prefs.Fullscreen
	e.savePrefs()
	return e.Prefs.Fullscreen
}

func (e *Env) savePrefs() {
	if err := e.Settings.Save(e.Prefs); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}
