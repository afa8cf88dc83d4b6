package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pacmaze/grid"
	"github.com/katalvlaran/pacmaze/rng"
)

// TestNewLayout_Classic pins the regions of the classic 28×31 board.
func TestNewLayout_Classic(t *testing.T) {
	l := NewLayout(28, 31)
	assert.Equal(t, 14, l.HalfWidth)
	assert.Equal(t, Rect{X: 12, Y: 12, W: 2, H: 3}, l.GhostHouse)
	assert.Equal(t, Rect{X: 11, Y: 11, W: 4, H: 5}, l.Outline)
	assert.Equal(t, grid.Position{X: 13, Y: 17}, l.Start)
	assert.Equal(t, Rect{X: 11, Y: 17, W: 5, H: 1}, l.StartArea)
	assert.Equal(t, grid.Position{X: 11, Y: 17}, l.FirstOrigin())
}

// TestLayout_Base draws the fixed regions of the smallest board.
func TestLayout_Base(t *testing.T) {
	got := NewLayout(12, 13).Base()
	want := []string{
		"######",
		"######",
		"###...",
		"###.GG",
		"###.GG",
		"###.GG",
		"###...",
		"###...",
		"######",
		"######",
		"######",
		"######",
		"######",
	}
	assert.Equal(t, want, got.Rows())
	assert.Equal(t, grid.Position{X: 5, Y: 7}, NewLayout(12, 13).Start)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 2, H: 1}
	assert.True(t, r.Contains(grid.Position{X: 2, Y: 1}))
	assert.False(t, r.Contains(grid.Position{X: 3, Y: 1}))
	assert.False(t, r.Contains(grid.Position{X: 1, Y: 2}))
}

func classicParams() Params {
	return Params{
		Width:  28,
		Height: 31,
		Pools:  rng.Range{Min: 6, Max: 10},
		Turn:   rng.Range{Min: 4, Max: 12},
	}
}

// TestBuild_Invariants checks the fixed regions survive carving and that
// carving never touches the outer wall border.
func TestBuild_Invariants(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := Build(classicParams(), rng.NewSeeded(seed), nil)
		require.Equal(t, 14, g.Width)
		require.Equal(t, 31, g.Height)

		l := NewLayout(28, 31)
		assert.Equal(t, 6, g.Count(grid.GhostHouse), "seed %d", seed)
		assert.True(t, g.Is(l.Start, grid.Empty), "seed %d", seed)
		for x := 0; x < g.Width; x++ {
			assert.True(t, g.Is(grid.Position{X: x, Y: 0}, grid.Wall))
			assert.True(t, g.Is(grid.Position{X: x, Y: g.Height - 1}, grid.Wall))
		}
		for y := 0; y < g.Height; y++ {
			assert.True(t, g.Is(grid.Position{X: 0, Y: y}, grid.Wall))
		}
		assert.Greater(t, g.Count(grid.Empty), l.Base().Count(grid.Empty))
		assert.Zero(t, g.Count(grid.Teleporter))
	}
}

// TestBuild_Deterministic reproduces the skeleton under a fixed seed.
func TestBuild_Deterministic(t *testing.T) {
	a := Build(classicParams(), rng.NewSeeded(77), nil)
	b := Build(classicParams(), rng.NewSeeded(77), nil)
	assert.True(t, a.Equal(b))
}

// TestBuild_Small runs on the minimum legal board.
func TestBuild_Small(t *testing.T) {
	p := Params{Width: 12, Height: 13, Pools: rng.Range{Min: 2, Max: 2}, Turn: rng.Range{Min: 2, Max: 4}}
	g := Build(p, rng.NewSeeded(3), nil)
	assert.Equal(t, 6, g.Width)
	assert.Equal(t, 13, g.Height)
	assert.Equal(t, 6, g.Count(grid.GhostHouse))
}
