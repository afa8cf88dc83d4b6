// Package prune strips the final map of interior wall cells that touch
// no open cell.
package prune

import "github.com/katalvlaran/pacmaze/grid"

// Walls returns g as a Sparse grid in which every Wall cell whose eight
// neighbors are all Wall or off-grid is absent (nil). Every other cell is
// copied unchanged. g is not modified.
//
// Complexity: O(W×H×8).
func Walls(g *grid.Grid) *grid.Sparse {
	if g.IsEmpty() {
		return &grid.Sparse{}
	}
	out := &grid.Sparse{Width: g.Width, Height: g.Height, Cells: make([][]*grid.Block, g.Height)}
	for y := 0; y < g.Height; y++ {
		out.Cells[y] = make([]*grid.Block, g.Width)
		for x := 0; x < g.Width; x++ {
			b := g.Blocks[y][x]
			if b.Type == grid.Wall && !touchesOpen(g, b.Position) {
				continue
			}
			out.Cells[y][x] = &b
		}
	}
	return out
}

// touchesOpen reports whether any in-bounds 8-neighbor of p is not a Wall.
func touchesOpen(g *grid.Grid, p grid.Position) bool {
	for _, d := range grid.Offsets(grid.Conn8) {
		if t, ok := g.TypeAt(p.Add(d)); ok && t != grid.Wall {
			return true
		}
	}
	return false
}
