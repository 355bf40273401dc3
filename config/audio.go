package config

// Sound cue names. The host plays <dir>/<name>.wav when the file exists.
const (
	SoundPlayerJump  = "player_jump"
	SoundPlayerShoot = "player_shoot"
)

// AudioConfig contains audio-related configuration values.
type AudioConfig struct {
	SampleRate    int
	Dir           string
	DefaultSFXVol float64
}

var Audio = AudioConfig{
	SampleRate:    44100,
	Dir:           "sfx",
	DefaultSFXVol: 0.6,
}
