package leveldata

import "github.com/automoto/onionrun/shared/gamemath"

// Grid is a row-major occupancy map of solid cells.
type Grid struct {
	Width  int
	Height int
	Solid  []bool
}

func NewGrid(w, h int) *Grid {
	return &Grid{Width: w, Height: h, Solid: make([]bool, w*h)}
}

func (g *Grid) Set(x, y int, solid bool) { g.Solid[y*g.Width+x] = solid }
func (g *Grid) At(x, y int) bool         { return g.Solid[y*g.Width+x] }

// Merge covers every solid cell with exactly one rectangle. Horizontal runs
// of two or more cells are taken first, then the leftover cells are joined
// into vertical runs. Rectangles are scaled by the cell size.
func (g *Grid) Merge(cellW, cellH float64) []gamemath.Rect {
	covered := make([]bool, len(g.Solid))
	var rects []gamemath.Rect

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; {
			if !g.At(x, y) {
				x++
				continue
			}
			end := x
			for end < g.Width && g.At(end, y) {
				end++
			}
			if end-x >= 2 {
				for i := x; i < end; i++ {
					covered[y*g.Width+i] = true
				}
				rects = append(rects, gamemath.R(float64(x)*cellW, float64(y)*cellH, float64(end-x)*cellW, cellH))
			}
			x = end
		}
	}

	open := func(x, y int) bool {
		i := y*g.Width + x
		return g.Solid[i] && !covered[i]
	}
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; {
			if !open(x, y) {
				y++
				continue
			}
			end := y
			for end < g.Height && open(x, end) {
				covered[end*g.Width+x] = true
				end++
			}
			rects = append(rects, gamemath.R(float64(x)*cellW, float64(y)*cellH, cellW, float64(end-y)*cellH))
			y = end
		}
	}
	return rects
}
