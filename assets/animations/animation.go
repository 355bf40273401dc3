package animations

import "fmt"

// TicksPerSecond is the logical tick rate frame durations are expressed in.
const TicksPerSecond = 60

// Clip is a named frame sequence.
type Clip struct {
	Name    string
	Frames  int
	OneShot bool
}

// Library maps clip names to clips. It is filled once when assets are
// loaded and handed to actors at construction; it is read-only afterwards.
type Library struct {
	clips map[string]Clip
}

func NewLibrary(clips ...Clip) *Library {
	l := &Library{clips: make(map[string]Clip, len(clips))}
	for _, c := range clips {
		l.Add(c)
	}
	return l
}

func (l *Library) Add(c Clip) {
	if c.Frames <= 0 {
		panic(fmt.Sprintf("animation clip %q has no frames", c.Name))
	}
	l.clips[c.Name] = c
}

// Clip returns the named clip. Referencing a clip that was never registered
// is a programming error and panics.
func (l *Library) Clip(name string) Clip {
	c, ok := l.clips[name]
	if !ok {
		panic(fmt.Sprintf("animation clip %q not found", name))
	}
	return c
}

// State is a per-actor animation clock. It advances a frame index at a fixed
// rate measured in ticks and knows nothing about physics.
type State struct {
	clip          Clip
	FrameDuration float64 // ticks per frame
	timer         float64
	frame         int

	FlipH    bool
	Finished bool
	// Flash selects the silhouette frames. The damage system owns it.
	Flash bool
}

// New binds a clock to a clip at the given frames per second.
func New(lib *Library, clip string, fps float64) *State {
	a := &State{clip: lib.Clip(clip)}
	a.SetFPS(fps)
	return a
}

func (a *State) SetFPS(fps float64) {
	if fps <= 0 {
		panic(fmt.Sprintf("animation clip %q: fps must be positive", a.clip.Name))
	}
	a.FrameDuration = TicksPerSecond / fps
}

// Advance accumulates delta ticks and steps the frame index.
func (a *State) Advance(delta float64) {
	a.timer += delta
	for a.timer >= a.FrameDuration {
		a.timer -= a.FrameDuration
		a.frame++
		if a.frame >= a.clip.Frames {
			a.frame = 0
			if a.clip.OneShot {
				a.Finished = true
			}
		}
	}
}

// Reset rewinds to frame 0 so the next play never starts mid-cycle.
func (a *State) Reset() {
	a.timer = 0
	a.frame = 0
}

// Restart rewinds and clears Finished, used to replay a one-shot clip.
func (a *State) Restart() {
	a.Reset()
	a.Finished = false
}

// SetFrame pins the frame index, used for poses picked by game state.
func (a *State) SetFrame(i int) {
	if i < 0 || i >= a.clip.Frames {
		panic(fmt.Sprintf("animation clip %q has no frame %d", a.clip.Name, i))
	}
	a.frame = i
}

func (a *State) Frame() int       { return a.frame }
func (a *State) ClipName() string { return a.clip.Name }
func (a *State) FrameCount() int  { return a.clip.Frames }
