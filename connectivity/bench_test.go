package connectivity_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pacmaze/connectivity"
	"github.com/katalvlaran/pacmaze/grid"
)

// randomHalf fills the interior of a w×h grid with Empty at probability 1/3.
func randomHalf(w, h int, seed int64) *grid.Grid {
	r := rand.New(rand.NewSource(seed))
	g := grid.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w; x++ {
			if r.Intn(3) == 0 {
				g.Set(grid.Position{X: x, Y: y}, grid.Empty)
			}
		}
	}
	return g
}

// BenchmarkComponents measures region analysis on a 500×501 grid.
// Complexity: O(W×H)
func BenchmarkComponents(b *testing.B) {
	g := randomHalf(500, 501, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = connectivity.Components(g)
	}
}

// BenchmarkRepair measures bridging on a classic-size half grid.
func BenchmarkRepair(b *testing.B) {
	src := randomHalf(14, 31, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := src.Clone()
		_ = connectivity.Repair(g)
	}
}
