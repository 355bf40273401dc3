package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/onionrun/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// sfxExts are tried in order for each cue.
var sfxExts = []string{".wav", ".ogg"}

// AudioLoader decodes sound cues once and plays them from memory. Cues
// without a file play nothing.
type AudioLoader struct {
	fsys     fs.FS
	dir      string
	sfxCache map[string][]byte
	context  *audio.Context
	volume   float64
}

func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		dir:      config.Audio.Dir,
		sfxCache: make(map[string][]byte),
		context:  ctx,
		volume:   config.Audio.DefaultSFXVol,
	}
}

// SetVolume sets the playback volume for new sounds.
func (l *AudioLoader) SetVolume(v float64) {
	l.volume = v
}

// PreloadSFX decodes every named cue that has a file.
func (l *AudioLoader) PreloadSFX(names ...string) {
	for _, name := range names {
		if err := l.preload(name); err != nil {
			log.Debug("sound cue silent", "cue", name, "err", err)
		}
	}
}

func (l *AudioLoader) preload(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}
	for _, p := range sfxPaths(l.dir, name) {
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			continue
		}
		decoded, err := l.decode(p, data)
		if err != nil {
			return err
		}
		l.sfxCache[name] = decoded
		return nil
	}
	return fmt.Errorf("no file for %s in %s", name, l.dir)
}

func (l *AudioLoader) decode(p string, data []byte) ([]byte, error) {
	var stream io.Reader
	var err error
	switch strings.ToLower(path.Ext(p)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", p)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}

// Play starts a new player for a preloaded cue.
func (l *AudioLoader) Play(name string) {
	decoded, ok := l.sfxCache[name]
	if !ok || l.volume <= 0 {
		return
	}
	player := l.context.NewPlayerFromBytes(decoded)
	player.SetVolume(l.volume)
	player.Play()
}

func sfxPaths(dir, name string) []string {
	out := make([]string, len(sfxExts))
	for i, ext := range sfxExts {
		out[i] = path.Join(dir, name+ext)
	}
	return out
}
