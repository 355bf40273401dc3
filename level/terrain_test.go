package level

import (
	"testing"

	"github.com/automoto/onionrun/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestTerrainBroadphase(t *testing.T) {
	floor := gamemath.R(0, 300, 1000, 20)
	far := gamemath.R(5000, 0, 10, 10)
	ledge := gamemath.R(40, 260, 32, 8)
	negative := gamemath.R(-200, -50, 20, 20)
	terrain := NewTerrain([]gamemath.Rect{floor, far, ledge, negative}, 32)

	t.Run("near platforms in load order", func(t *testing.T) {
		got := terrain.Colliders(gamemath.R(49, 250, 14, 60))
		assert.Equal(t, []gamemath.Rect{floor, ledge}, got)
	})

	t.Run("resting contact is still a candidate", func(t *testing.T) {
		got := terrain.Colliders(gamemath.R(600, 200, 14, 100))
		assert.Contains(t, got, floor)
	})

	t.Run("far away", func(t *testing.T) {
		assert.Equal(t, []gamemath.Rect{far}, terrain.Colliders(gamemath.R(4990, 5, 8, 8)))
	})

	t.Run("negative coordinates", func(t *testing.T) {
		assert.Equal(t, []gamemath.Rect{negative}, terrain.Colliders(gamemath.R(-190, -40, 4, 4)))
	})

	t.Run("empty space", func(t *testing.T) {
		assert.Empty(t, terrain.Colliders(gamemath.R(2500, 100, 10, 10)))
	})

	assert.Len(t, terrain.Platforms(), 4)
}

func TestSolidsAppendsExtras(t *testing.T) {
	floor := gamemath.R(0, 300, 1000, 20)
	enemy := gamemath.R(900, 0, 10, 10)
	s := Solids{Terrain: NewTerrain([]gamemath.Rect{floor}, 32), Extra: []gamemath.Rect{enemy}}

	assert.Equal(t, []gamemath.Rect{floor, enemy}, s.Colliders(gamemath.R(10, 290, 5, 5)))
	assert.Equal(t, []gamemath.Rect{enemy}, Solids{Extra: []gamemath.Rect{enemy}}.Colliders(gamemath.R(0, 0, 1, 1)))

	terrain, bodies := s.Split(gamemath.R(10, 290, 5, 5))
	assert.Equal(t, []gamemath.Rect{floor}, terrain)
	assert.Equal(t, []gamemath.Rect{enemy}, bodies)
}
