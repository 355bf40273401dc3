package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLibrary() *Library {
	return NewLibrary(
		Clip{Name: "loop", Frames: 8},
		Clip{Name: "once", Frames: 4, OneShot: true},
	)
}

func TestLoopingWraparound(t *testing.T) {
	const (
		frames   = 8
		duration = 10.0 // 6 fps
	)

	tests := []struct {
		name string
		k    int
		r    float64
		want int
	}{
		{"no full cycle", 0, 25, 2},
		{"three cycles", 3, 25, 2},
		{"exact cycle", 2, 0, 0},
		{"just before next frame", 1, 9.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := float64(tt.k)*frames*duration + tt.r

			ticked := New(testLibrary(), "loop", 6)
			for elapsed := 0.0; elapsed+1 <= total; elapsed++ {
				ticked.Advance(1)
			}
			ticked.Advance(total - float64(int(total)))

			jumped := New(testLibrary(), "loop", 6)
			jumped.Advance(total)

			for _, a := range []*State{ticked, jumped} {
				assert.Equal(t, tt.want, a.Frame())
				assert.False(t, a.Finished, "looping clips never finish")
			}
		})
	}
}

func TestOneShotFinishes(t *testing.T) {
	a := New(testLibrary(), "once", 60) // one frame per tick

	for i := 0; i < 3; i++ {
		a.Advance(1)
	}
	assert.Equal(t, 3, a.Frame())
	assert.False(t, a.Finished)

	a.Advance(1)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Finished)

	a.Restart()
	assert.False(t, a.Finished)
	assert.Equal(t, 0, a.Frame())
}

func TestResetRewinds(t *testing.T) {
	a := New(testLibrary(), "loop", 6)
	a.Advance(35)
	require.Equal(t, 3, a.Frame())

	a.Reset()
	assert.Equal(t, 0, a.Frame())

	// The accumulator was cleared too: 9 ticks is not enough for a frame.
	a.Advance(9)
	assert.Equal(t, 0, a.Frame())
}

func TestFlashIsIndependentOfFrames(t *testing.T) {
	a := New(testLibrary(), "once", 60)
	a.Flash = true
	a.Advance(2)
	a.Reset()
	assert.True(t, a.Flash)
}

func TestMissingClipPanics(t *testing.T) {
	assert.PanicsWithValue(t, `animation clip "nope" not found`, func() {
		New(testLibrary(), "nope", 6)
	})
}

func TestSetFrameOutOfRangePanics(t *testing.T) {
	a := New(testLibrary(), "once", 6)
	assert.Panics(t, func() { a.SetFrame(4) })
	a.SetFrame(2)
	assert.Equal(t, 2, a.Frame())
}

func TestFromDefsOverridesCounts(t *testing.T) {
	lib := Default()
	assert.Equal(t, 8, lib.Clip("player_run").Frames)
	assert.True(t, lib.Clip("onion_attack").OneShot)
	assert.Greater(t, lib.Clip("onion_attack").Frames, 5, "the chaser hurtbox frame must exist")
}
