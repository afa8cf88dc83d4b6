package prune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pacmaze/grid"
)

// TestWalls_AllWall removes every cell of a solid wall block.
func TestWalls_AllWall(t *testing.T) {
	s := Walls(grid.New(4, 3))
	require.Equal(t, 4, s.Width)
	require.Equal(t, 3, s.Height)
	assert.Equal(t, 12, s.Absent())
}

// TestWalls_SingleEmpty keeps all eight walls around one open cell.
//
//	###
//	#.#
//	###
func TestWalls_SingleEmpty(t *testing.T) {
	s := Walls(grid.MustParse("###", "#.#", "###"))
	assert.Zero(t, s.Absent())
	assert.Equal(t, 8, s.Count(grid.Wall))
	assert.Equal(t, 1, s.Count(grid.Empty))
}

// TestWalls_Mixed prunes only walls that see no open cell. Row 3 sits
// between the rings around "." and "G" and disappears entirely.
func TestWalls_Mixed(t *testing.T) {
	g := grid.MustParse(
		"######",
		"#.####",
		"######",
		"######",
		"######",
		"#G####",
	)
	s := Walls(g)
	assert.Equal(t, []string{
		"###   ",
		"#.#   ",
		"###   ",
		"      ",
		"###   ",
		"#G#   ",
	}, s.Rows())
	b, ok := s.At(grid.Position{X: 1, Y: 5})
	require.True(t, ok)
	assert.Equal(t, grid.GhostHouse, b.Type)
	assert.Equal(t, grid.Position{X: 1, Y: 5}, b.Position)
	assert.Equal(t, 1, g.Count(grid.Empty), "input must be untouched")
	assert.Equal(t, 1, g.Count(grid.GhostHouse))
}

// TestWalls_LoneWall drops a 1×1 wall grid: it has no neighbors at all.
func TestWalls_LoneWall(t *testing.T) {
	s := Walls(grid.New(1, 1))
	assert.Equal(t, 1, s.Absent())
	assert.True(t, Walls(&grid.Grid{}).IsEmpty())
}
