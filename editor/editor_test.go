package editor

import (
	"path/filepath"
	"testing"

	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/automoto/onionrun/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc() *leveldata.Level {
	doc := leveldata.New(640, 360)
	doc.PlayerSpawn = gamemath.Vec(32, 232)
	doc.Platforms = []gamemath.Rect{gamemath.R(0, 300, 640, 20)}
	doc.Enemies = []leveldata.EnemySpawn{{Kind: "chaser", Position: gamemath.Vec(200, 268)}}
	return doc
}

func TestSnap(t *testing.T) {
	e := New(newDoc())
	assert.Equal(t, gamemath.Vec(32, 16), e.Snap(gamemath.Vec(47.9, 31)))
	assert.Equal(t, gamemath.Vec(-16, 0), e.Snap(gamemath.Vec(-1, 0)))

	require.NoError(t, e.Exec("grid size 10"))
	assert.Equal(t, gamemath.Vec(40, 30), e.Snap(gamemath.Vec(47.9, 31)))
}

func TestPlaceFollowsCursorUntilClick(t *testing.T) {
	e := New(newDoc())
	e.Camera = gamemath.Vec(100, 0)
	e.Hover(gamemath.Vec(20, 50))

	require.NoError(t, e.Exec("place floor"))
	require.Len(t, e.Doc.Platforms, 2)
	size := config.Editor.ObjectSizes["floor"]
	assert.Equal(t, gamemath.R(116, 48, size.X, size.Y), e.Doc.Platforms[1])

	h, ok := e.Held()
	require.True(t, ok)
	assert.Equal(t, Handle{Kind: ObjectPlatform, Index: 1}, h)

	e.Hover(gamemath.Vec(70, 90))
	assert.Equal(t, gamemath.Vec(164, 80), e.Doc.Platforms[1].Pos())

	e.Click(gamemath.Vec(70, 90))
	_, ok = e.Held()
	assert.False(t, ok)

	e.Hover(gamemath.Vec(300, 10))
	assert.Equal(t, gamemath.Vec(164, 80), e.Doc.Platforms[1].Pos(), "dropped objects stay put")
}

func TestPlaceEnemy(t *testing.T) {
	e := New(newDoc())
	require.NoError(t, e.Exec("place tomato"))
	require.Len(t, e.Doc.Enemies, 2)
	assert.Equal(t, "lobber", e.Doc.Enemies[1].Kind)

	err := e.Exec("place dragon")
	assert.ErrorIs(t, err, ErrUsage)
	assert.Len(t, e.Doc.Enemies, 2)
}

func TestPickOrder(t *testing.T) {
	e := New(newDoc())

	// The chaser marker overlaps the floor; platforms are searched first.
	e.Click(gamemath.Vec(210, 305))
	h, ok := e.Held()
	require.True(t, ok)
	assert.Equal(t, ObjectPlatform, h.Kind)
	e.Click(gamemath.Vec(0, 0))

	e.Click(gamemath.Vec(210, 280))
	h, ok = e.Held()
	require.True(t, ok)
	assert.Equal(t, Handle{Kind: ObjectEnemy, Index: 0}, h)
	e.Click(gamemath.Vec(0, 0))

	e.Click(gamemath.Vec(32, 232))
	h, ok = e.Held()
	require.True(t, ok)
	assert.Equal(t, ObjectPlayer, h.Kind)
	e.Click(gamemath.Vec(0, 0))

	e.Click(gamemath.Vec(500, 100))
	_, ok = e.Held()
	assert.False(t, ok)
}

func TestPickUsesCamera(t *testing.T) {
	e := New(newDoc())
	e.Pan(gamemath.Vec(-150, 0))
	assert.Equal(t, gamemath.Vec(150, 0), e.Camera)

	e.Click(gamemath.Vec(60, 280))
	h, ok := e.Held()
	require.True(t, ok)
	assert.Equal(t, ObjectEnemy, h.Kind)
}

func TestNoPickWhileTyping(t *testing.T) {
	e := New(newDoc())
	e.Type('g')
	e.Click(gamemath.Vec(210, 280))
	_, ok := e.Held()
	assert.False(t, ok)
}

func TestDeleteHeld(t *testing.T) {
	e := New(newDoc())

	assert.False(t, e.DeleteHeld(), "nothing held")

	e.Click(gamemath.Vec(210, 280))
	require.True(t, e.DeleteHeld())
	assert.Empty(t, e.Doc.Enemies)

	e.Click(gamemath.Vec(32, 232))
	assert.False(t, e.DeleteHeld(), "the player spawn stays")
	assert.Equal(t, gamemath.Vec(32, 232), e.Doc.PlayerSpawn)

	e.Click(gamemath.Vec(0, 0))
	e.Click(gamemath.Vec(10, 310))
	require.True(t, e.DeleteHeld())
	assert.Empty(t, e.Doc.Platforms)
}

func TestTypingAndSubmit(t *testing.T) {
	e := New(newDoc())
	for _, r := range "grid off!" {
		e.Type(r)
	}
	assert.Equal(t, "grid off", e.Line)

	e.Type('x')
	e.Backspace()
	require.NoError(t, e.Submit())
	assert.False(t, e.ShowGrid)
	assert.Empty(t, e.Line)

	for _, r := range "jump" {
		e.Type(r)
	}
	err := e.Submit()
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, err.Error(), e.Status)
	assert.Empty(t, e.Line)
}

func TestTypingIgnoredWhileHolding(t *testing.T) {
	e := New(newDoc())
	e.Click(gamemath.Vec(210, 280))
	e.Type('d')
	assert.Empty(t, e.Line)
}

func TestGridCommands(t *testing.T) {
	e := New(newDoc())
	require.True(t, e.ShowGrid)

	require.NoError(t, e.Exec("grid toggle"))
	assert.False(t, e.ShowGrid)
	require.NoError(t, e.Exec("grid on"))
	assert.True(t, e.ShowGrid)

	for _, bad := range []string{"grid", "grid size", "grid size 0", "grid size big", "grid sideways"} {
		assert.ErrorIs(t, e.Exec(bad), ErrUsage, bad)
	}
	assert.Equal(t, config.Editor.GridSize, e.GridSize)
	assert.NoError(t, e.Exec("   "))
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edited.txt")
	e := New(newDoc())
	require.NoError(t, e.Exec("save "+path))

	other := New(nil)
	require.NoError(t, other.Exec("load "+path))
	assert.Equal(t, e.Doc, other.Doc)

	assert.Error(t, other.Exec("load "+path+".missing"))
	assert.Equal(t, e.Doc, other.Doc, "failed load keeps the document")
	assert.ErrorIs(t, other.Exec("save"), ErrUsage)
}

func TestPlayTestCopies(t *testing.T) {
	e := New(newDoc())
	lvl := e.PlayTest()
	lvl.Platforms[0].X = 99
	lvl.Enemies = nil

	assert.Equal(t, 0.0, e.Doc.Platforms[0].X)
	assert.Len(t, e.Doc.Enemies, 1)
}

func TestPlayTestGrowsToPlatforms(t *testing.T) {
	e := New(newDoc())
	e.Doc.Platforms = append(e.Doc.Platforms, gamemath.R(900, 340, 48, 30.5))

	lvl := e.PlayTest()
	assert.Equal(t, 948, lvl.Width)
	assert.Equal(t, 371, lvl.Height)
	assert.Equal(t, 640, e.Doc.Width, "the document keeps its size")
}
