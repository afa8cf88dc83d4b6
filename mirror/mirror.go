// Package mirror produces the symmetric full map from its carved left half.
//
// Complete must only run after every half-grid mutation is finished;
// mirroring earlier duplicates any defect into both halves.
package mirror

import "github.com/katalvlaran/pacmaze/grid"

// Complete reflects half across its right edge and returns a new grid
// twice as wide. Cell (x, y) of half appears at both (x, y) and
// (2·half.Width − 1 − x, y) with the same type. half is not modified.
// An empty half yields an empty grid.
//
// Complexity: O(W×H).
func Complete(half *grid.Grid) *grid.Grid {
	if half.IsEmpty() {
		return &grid.Grid{}
	}
	width := half.Width * 2
	full := grid.New(width, half.Height)
	for y := 0; y < half.Height; y++ {
		for x := 0; x < half.Width; x++ {
			t := half.Blocks[y][x].Type
			full.Blocks[y][x].Type = t
			full.Blocks[y][width-1-x].Type = t
		}
	}
	return full
}

// LeftHalf returns a copy of the first Width/2 columns of g.
func LeftHalf(g *grid.Grid) *grid.Grid {
	if g.IsEmpty() || g.Width < 2 {
		return &grid.Grid{}
	}
	half := grid.New(g.Width/2, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < half.Width; x++ {
			half.Blocks[y][x].Type = g.Blocks[y][x].Type
		}
	}
	return half
}

// Symmetrize rebuilds an even-width grid from its left half. It is
// idempotent, and a no-op on a grid that is already symmetric.
func Symmetrize(g *grid.Grid) *grid.Grid {
	return Complete(LeftHalf(g))
}

// IsSymmetric reports whether the type at (x, y) equals the type at
// (Width−1−x, y) for every cell.
func IsSymmetric(g *grid.Grid) bool {
	if g.IsEmpty() {
		return true
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width/2; x++ {
			if g.Blocks[y][x].Type != g.Blocks[y][g.Width-1-x].Type {
				return false
			}
		}
	}
	return true
}
