package level

import (
	"math"
	"sort"

	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	tagSolid = "solid"
	tagProbe = "probe"
)

// probeMargin pads queries so bodies resting exactly on a cell border still
// see the platform under them.
const probeMargin = 2

// Terrain indexes the static platforms in a resolv space so each body only
// resolves against platforms near its movement.
type Terrain struct {
	platforms []gamemath.Rect
	space     *resolv.Space
	probe     *resolv.Object
	origin    gamemath.Vector // world position of the space's top-left cell
}

// NewTerrain builds the broadphase. cellSize is the space cell edge in
// world units.
func NewTerrain(platforms []gamemath.Rect, cellSize int) *Terrain {
	var minX, minY, maxX, maxY float64
	for _, p := range platforms {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.Right())
		maxY = math.Max(maxY, p.Bottom())
	}
	origin := gamemath.Vec(minX-float64(cellSize), minY-float64(cellSize))
	w := int(math.Ceil(maxX-origin.X)) + 2*cellSize
	h := int(math.Ceil(maxY-origin.Y)) + 2*cellSize

	t := &Terrain{
		platforms: platforms,
		space:     resolv.NewSpace(w, h, cellSize, cellSize),
		origin:    origin,
	}
	for i, p := range platforms {
		obj := resolv.NewObject(p.X-origin.X, p.Y-origin.Y, p.W, p.H, tagSolid)
		obj.Data = i
		t.space.Add(obj)
	}
	t.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	t.space.Add(t.probe)
	return t
}

// Platforms returns every platform in load order.
func (t *Terrain) Platforms() []gamemath.Rect {
	return t.platforms
}

// Colliders returns the platforms sharing a cell with area, in load order.
// The result is a candidate set; callers still test exact overlap.
func (t *Terrain) Colliders(area gamemath.Rect) []gamemath.Rect {
	a := area.Inflate(probeMargin)
	t.probe.X = a.X - t.origin.X
	t.probe.Y = a.Y - t.origin.Y
	t.probe.W = a.W
	t.probe.H = a.H
	t.probe.Update()

	check := t.probe.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}
	idx := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		idx = append(idx, obj.Data.(int))
	}
	sort.Ints(idx)

	out := make([]gamemath.Rect, 0, len(idx))
	for i, n := range idx {
		if i > 0 && idx[i-1] == n {
			continue
		}
		out = append(out, t.platforms[n])
	}
	return out
}

// Solids is the collider set for one body: the terrain followed by other
// actors' hitboxes.
type Solids struct {
	Terrain *Terrain
	Extra   []gamemath.Rect
}

func (s Solids) Colliders(area gamemath.Rect) []gamemath.Rect {
	terrain, bodies := s.Split(area)
	return append(terrain, bodies...)
}

// Split separates the terrain colliders for area from the extra bodies.
func (s Solids) Split(area gamemath.Rect) (terrain, bodies []gamemath.Rect) {
	if s.Terrain != nil {
		terrain = s.Terrain.Colliders(area)
	}
	return terrain, s.Extra
}
