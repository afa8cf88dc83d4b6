package cleanup

import "github.com/katalvlaran/pacmaze/grid"

// EnforceAisle walls off every Empty seam cell whose left neighbor is not
// Empty. Once mirrored, such a cell would otherwise open a two-wide
// vertical aisle across the centre line. Returns the number of cells walled.
func EnforceAisle(g *grid.Grid) int {
	if g.IsEmpty() || g.Width < 2 {
		return 0
	}
	seam := g.Width - 1
	n := 0
	for y := 0; y < g.Height; y++ {
		p := grid.Position{X: seam, Y: y}
		if !g.Is(p, grid.Empty) {
			continue
		}
		if g.Is(p.Add(grid.Left), grid.Empty) {
			continue
		}
		g.Set(p, grid.Wall)
		n++
	}
	return n
}
