// File: connectivity/components_test.go
package connectivity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pacmaze/grid"
)

// TestComponents_Simple counts regions of walkable cells.
//
//	#..#
//	.#T#
//	#.##
//
// Expected: {(1,0),(2,0),(2,1)}, {(0,1)}, {(1,2)}.
func TestComponents_Simple(t *testing.T) {
	g := grid.MustParse(
		"#..#",
		".#T#",
		"#.##",
	)
	comps := Components(g)
	require.Len(t, comps, 3)
	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 1, 3}, sizes)
	assert.False(t, IsConnected(g))
}

// TestComponents_GhostHouseSplits treats the ghost house as impassable.
func TestComponents_GhostHouseSplits(t *testing.T) {
	g := grid.MustParse(".G.")
	assert.Len(t, Components(g), 2)
}

// TestReach_FirstEmpty starts from the first Empty cell, skipping a
// leading teleporter, and still crosses teleporters while filling.
func TestReach_FirstEmpty(t *testing.T) {
	g := grid.MustParse(
		"T#..",
		"##T#",
		"..##",
	)
	seen, n := Reach(g)
	assert.Equal(t, 3, n)
	assert.True(t, seen[g.Index(grid.Position{X: 2, Y: 0})])
	assert.True(t, seen[g.Index(grid.Position{X: 2, Y: 1})])
	assert.False(t, seen[g.Index(grid.Position{X: 0, Y: 0})])
	assert.False(t, seen[g.Index(grid.Position{X: 0, Y: 2})])
}

// TestReach_NoEmpty reaches nothing, even with teleporters present.
func TestReach_NoEmpty(t *testing.T) {
	_, n := Reach(grid.MustParse("T#", "#T"))
	assert.Zero(t, n)
	seen, n := Reach(&grid.Grid{})
	assert.Nil(t, seen)
	assert.Zero(t, n)
}

func TestIsConnected_Trivial(t *testing.T) {
	assert.True(t, IsConnected(grid.New(3, 3)))
	assert.True(t, IsConnected(grid.MustParse("...", ".#.", "...")))
}
