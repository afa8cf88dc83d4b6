package cleanup

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pacmaze/grid"
	"github.com/katalvlaran/pacmaze/rng"
)

// PlaceTeleporters draws K from count and overwrites column 0 on K distinct
// odd rows in [1, Height-2] with Teleporter. It returns the chosen rows in
// draw order. K is capped at the number of odd rows available.
func PlaceTeleporters(g *grid.Grid, r *rng.Random, count rng.Range) []int {
	if g.IsEmpty() {
		return nil
	}
	k := r.Pick(count)
	if avail := (g.Height - 1) / 2; k > avail {
		k = avail
	}

	chosen := mapset.New[int]()
	rows := make([]int, 0, k)
	for len(rows) < k {
		y := r.IntParity(1, g.Height-2, rng.Odd)
		if chosen.Has(y) {
			continue
		}
		chosen.Put(y)
		rows = append(rows, y)
		g.Set(grid.Position{X: 0, Y: y}, grid.Teleporter)
	}
	return rows
}
