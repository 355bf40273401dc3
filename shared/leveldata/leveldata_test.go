package leveldata

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/onionrun/config"
	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# sample
size=640,360
player=16,200

platform=0,300,640,20
platform=100,250,48,8
enemy=200,268
enemy=300,260,lobber
checkpoint=1,2
`

func TestParse(t *testing.T) {
	lvl, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 640, lvl.Width)
	assert.Equal(t, 360, lvl.Height)
	assert.Equal(t, gamemath.Vec(16, 200), lvl.PlayerSpawn)
	assert.Equal(t, []gamemath.Rect{
		gamemath.R(0, 300, 640, 20),
		gamemath.R(100, 250, 48, 8),
	}, lvl.Platforms)
	assert.Equal(t, []EnemySpawn{
		{Kind: "chaser", Position: gamemath.Vec(200, 268)},
		{Kind: "lobber", Position: gamemath.Vec(300, 260)},
	}, lvl.Enemies)
}

func TestParseDefaultsSpawn(t *testing.T) {
	lvl, err := Parse(strings.NewReader("size=10,10\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Player.Spawn, lvl.PlayerSpawn)
	assert.Empty(t, lvl.Platforms)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		key   string
	}{
		{"bad number", "size=10,10\nplatform=0,x,10,10\n", 2, "platform"},
		{"missing field", "platform=0,0,10\n", 1, "platform"},
		{"extra field", "player=1,2,3\n", 1, "player"},
		{"no separator", "size=1,1\n\nplatform\n", 3, "platform"},
		{"bad size", "size=wide,tall\n", 1, "size"},
		{"bad enemy", "enemy=1\n", 1, "enemy"},
		{"nan size", "size=NaN,100\n", 1, "size"},
		{"fractional size", "size=12.7,5\n", 1, "size"},
		{"negative size", "size=10,10\nsize=-5,10\n", 2, "size"},
		{"infinite platform", "platform=Inf,0,10,10\n", 1, "platform"},
		{"nan player", "player=0,nan\n", 1, "player"},
		{"nan enemy", "enemy=NaN,3,chaser\n", 1, "enemy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, lvl)
			assert.ErrorIs(t, err, ErrMalformed)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, tt.key, perr.Key)
		})
	}
}

func TestParseErrorKeepsCause(t *testing.T) {
	_, err := Parse(strings.NewReader("platform=0,x,10,10\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "x", numErr.Num)

	_, err = Parse(strings.NewReader("platform\n"))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.False(t, errors.As(err, &numErr))
}

func TestWriteThenParse(t *testing.T) {
	lvl, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lvl))
	assert.Contains(t, buf.String(), "enemy=200,268,chaser\n")

	again, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, lvl, again)
}

func TestBoundsFallsBackToPlatforms(t *testing.T) {
	lvl := New(0, 0)
	lvl.Platforms = []gamemath.Rect{gamemath.R(10, 20, 30, 40), gamemath.R(100, 0, 10, 10)}
	assert.Equal(t, gamemath.R(10, 0, 100, 60), lvl.Bounds())

	assert.Equal(t, gamemath.R(0, 0, 64, 32), New(64, 32).Bounds())
}

func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			g.Set(x, y, c == '#')
		}
	}
	return g
}

// requireExactCover checks every solid cell lies in exactly one rectangle
// and no rectangle covers an empty cell.
func requireExactCover(t *testing.T, g *Grid, rects []gamemath.Rect) {
	t.Helper()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gamemath.R(float64(x), float64(y), 1, 1)
			hits := 0
			for _, r := range rects {
				if r.Intersects(p) {
					hits++
				}
			}
			if g.At(x, y) {
				require.Equal(t, 1, hits, "cell %d,%d", x, y)
			} else {
				require.Zero(t, hits, "cell %d,%d", x, y)
			}
		}
	}
}

func TestGridMerge(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []gamemath.Rect
	}{
		{
			name: "floor and wall",
			rows: []string{
				"#...",
				"#...",
				"####",
			},
			want: []gamemath.Rect{
				gamemath.R(0, 2, 4, 1),
				gamemath.R(0, 0, 1, 2),
			},
		},
		{
			name: "lone pixel",
			rows: []string{
				"....",
				"..#.",
			},
			want: []gamemath.Rect{gamemath.R(2, 1, 1, 1)},
		},
		{
			name: "block",
			rows: []string{
				"##",
				"##",
			},
			want: []gamemath.Rect{
				gamemath.R(0, 0, 2, 1),
				gamemath.R(0, 1, 2, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFrom(tt.rows...)
			rects := g.Merge(1, 1)
			assert.Equal(t, tt.want, rects)
			requireExactCover(t, g, rects)
		})
	}
}

func TestGridMergeCoversIrregularShapes(t *testing.T) {
	g := gridFrom(
		"#.#.##..#",
		"#.#..#.##",
		"#########",
		"..#....#.",
	)
	requireExactCover(t, g, g.Merge(1, 1))
}

func TestGridMergeScalesByCell(t *testing.T) {
	g := gridFrom("##")
	assert.Equal(t, []gamemath.Rect{gamemath.R(0, 0, 32, 16)}, g.Merge(16, 16))
}

func rasterImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	for x := 0; x < 5; x++ {
		img.Set(x, 3, color.Black)
	}
	img.Set(4, 0, color.Black)
	img.Set(0, 0, color.RGBA{0, 0, 0, 128}) // translucent: not solid
	img.Set(1, 0, color.RGBA{10, 0, 0, 255})
	return img
}

func TestFromImage(t *testing.T) {
	lvl := FromImage(rasterImage())
	assert.Equal(t, 5, lvl.Width)
	assert.Equal(t, 4, lvl.Height)
	assert.Equal(t, []gamemath.Rect{
		gamemath.R(0, 3, 5, 1),
		gamemath.R(4, 0, 1, 1),
	}, lvl.Platforms)
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

const tinyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="4">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="tiles.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="solid" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="40" y="8"/>
  <object id="2" x="8" y="4"/>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawn">
  <object id="3" x="32" y="0">
   <properties>
    <property name="enemyType" value="lobber"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"tiny.tmx": {Data: []byte(tinyTMX)}}

	lvl, err := LoadTMX(fsys, "tiny.tmx")
	require.NoError(t, err)

	assert.Equal(t, 64, lvl.Width)
	assert.Equal(t, 48, lvl.Height)
	assert.Equal(t, gamemath.Vec(8, 4), lvl.PlayerSpawn)
	assert.Equal(t, []gamemath.Rect{
		gamemath.R(0, 32, 64, 16),
		gamemath.R(48, 16, 16, 16),
	}, lvl.Platforms)
	assert.Equal(t, []EnemySpawn{{Kind: "lobber", Position: gamemath.Vec(32, 0)}}, lvl.Enemies)
}

func TestLoaderSourceOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"both.txt":   {Data: []byte("size=1,1\nplatform=1,2,3,4\n")},
		"both.png":   {Data: pngBytes(t, rasterImage())},
		"raster.png": {Data: pngBytes(t, rasterImage())},
		"map.tmx":    {Data: []byte(tinyTMX)},
		"broken.txt": {Data: []byte("platform=oops\n")},
	}
	l := &Loader{FS: fsys}

	lvl, err := l.Load("both")
	require.NoError(t, err)
	assert.Equal(t, []gamemath.Rect{gamemath.R(1, 2, 3, 4)}, lvl.Platforms, "text beats raster")

	lvl, err = l.Load("raster")
	require.NoError(t, err)
	assert.Len(t, lvl.Platforms, 2)

	lvl, err = l.Load("map")
	require.NoError(t, err)
	assert.Equal(t, 64, lvl.Width)

	_, err = l.Load("broken")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = l.Load("nowhere")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoaderFallback(t *testing.T) {
	l := &Loader{
		FS:       fstest.MapFS{},
		Fallback: fstest.MapFS{"lvl.txt": {Data: []byte("size=3,3\n")}},
	}
	lvl, err := l.Load("lvl")
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Width)
}

func TestLoaderCachesRaster(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gen.png"), pngBytes(t, rasterImage()), 0o644))

	l := NewDirLoader(dir, nil)
	first, err := l.Load("gen")
	require.NoError(t, err)

	cached, err := LoadFile(filepath.Join(dir, "gen.txt"))
	require.NoError(t, err)
	assert.Equal(t, first.Platforms, cached.Platforms)
	assert.Equal(t, first.Width, cached.Width)

	again, err := l.Load("gen")
	require.NoError(t, err)
	assert.Equal(t, first.Platforms, again.Platforms)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.txt")
	lvl := New(100, 50)
	lvl.Platforms = []gamemath.Rect{gamemath.R(0, 40, 100, 10)}
	lvl.Enemies = []EnemySpawn{{Kind: "lobber", Position: gamemath.Vec(50.5, 7)}}

	require.NoError(t, Save(path, lvl))
	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lvl, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBuiltinLevelLoads(t *testing.T) {
	l := &Loader{Fallback: Builtin()}
	lvl, err := l.Load(config.Level.Default)
	require.NoError(t, err)
	assert.NotEmpty(t, lvl.Platforms)
	assert.NotEmpty(t, lvl.Enemies)
	assert.Equal(t, 2560, lvl.Width)
}
