package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names.
const (
	SolidLayer       = "solid"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
)

// LoadTMX parses a Tiled map. Every non-empty tile of the solid layer is
// solid; neighbouring tiles are merged into platforms the same way raster
// levels are. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := New(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		g := NewGrid(levelMap.Width, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				g.Set(x, y, !tile.IsNil())
			}
		}
		lvl.Platforms = g.Merge(float64(levelMap.TileWidth), float64(levelMap.TileHeight))
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			if len(og.Objects) > 0 {
				// Leftmost spawn wins
				spawns := append([]*tiled.Object(nil), og.Objects...)
				sort.Slice(spawns, func(i, j int) bool { return spawns[i].X < spawns[j].X })
				lvl.PlayerSpawn = gamemath.Vec(spawns[0].X, spawns[0].Y)
			}
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("enemyType")
				if kind == "" {
					kind = DefaultEnemyKind
				}
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Kind: kind, Position: gamemath.Vec(o.X, o.Y)})
			}
		}
	}

	return lvl, nil
}
