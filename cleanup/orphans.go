package cleanup

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pacmaze/grid"
)

// isOrphan reports whether the Empty cell at p should be pruned: at most
// one walkable neighbor, or none at all on the seam column.
func isOrphan(g *grid.Grid, p grid.Position) bool {
	if !g.Is(p, grid.Empty) {
		return false
	}
	n := g.PassableNeighbors(p)
	if p.X == g.Width-1 {
		return n == 0
	}
	return n <= 1
}

// PruneOrphans walls off dead-end Empty cells until none remain and
// returns how many were removed.
//
// It uses a worklist: every Empty cell is checked once, then only the
// Empty neighbors of cells pruned in the previous round are rechecked.
// Pruning only ever lowers neighbor counts, so the result is the same
// fixed point PruneOrphansRescan reaches.
//
// Complexity: O(W×H) time, O(W×H) memory.
func PruneOrphans(g *grid.Grid) int {
	if g.IsEmpty() {
		return 0
	}
	work := mapset.New[grid.Position]()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if g.Is(p, grid.Empty) {
				work.Put(p)
			}
		}
	}

	removed := 0
	for work.Size() > 0 {
		next := mapset.New[grid.Position]()
		work.Each(func(p grid.Position) {
			if !isOrphan(g, p) {
				return
			}
			g.Set(p, grid.Wall)
			removed++
			for _, d := range grid.Offsets(grid.Conn4) {
				if q := p.Add(d); g.Is(q, grid.Empty) {
					next.Put(q)
				}
			}
		})
		work = next
	}
	return removed
}

// PruneOrphansRescan reaches the same fixed point as PruneOrphans by
// rescanning the whole grid until a pass changes nothing.
//
// Complexity: O(P × W×H) where P is the number of passes.
func PruneOrphansRescan(g *grid.Grid) int {
	if g.IsEmpty() {
		return 0
	}
	removed := 0
	for changed := true; changed; {
		changed = false
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				p := grid.Position{X: x, Y: y}
				if isOrphan(g, p) {
					g.Set(p, grid.Wall)
					removed++
					changed = true
				}
			}
		}
	}
	return removed
}
