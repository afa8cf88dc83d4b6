// File: connectivity/repair_test.go
package connectivity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pacmaze/grid"
)

// TestRepair_AlreadyConnected leaves a connected grid untouched.
func TestRepair_AlreadyConnected(t *testing.T) {
	g := grid.MustParse(
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	before := g.Clone()
	require.NoError(t, Repair(g))
	assert.True(t, g.Equal(before))
}

// TestRepair_HorizontalBridge converts the single wall between two corridors.
//
//	#######      #######
//	#..#..#  ->  #.....#
//	#######      #######
func TestRepair_HorizontalBridge(t *testing.T) {
	g := grid.MustParse(
		"#######",
		"#..#..#",
		"#######",
	)
	require.NoError(t, Repair(g))
	assert.Equal(t, "#.....#", g.Rows()[1])
	assert.True(t, IsConnected(g))
}

// TestRepair_VerticalBridge bridges through several wall cells. The
// stray cell at (4,4) has no reached cell to its left or right, so the
// upward ray is used.
func TestRepair_VerticalBridge(t *testing.T) {
	g := grid.MustParse(
		"######",
		"#....#",
		"######",
		"######",
		"####.#",
		"######",
	)
	require.NoError(t, Repair(g))
	assert.Equal(t, []string{
		"######",
		"#....#",
		"####.#",
		"####.#",
		"####.#",
		"######",
	}, g.Rows())
}

// TestRepair_MultiplePasses needs one bridge per stray region.
func TestRepair_MultiplePasses(t *testing.T) {
	g := grid.MustParse(
		"#########",
		"#..#..#.#",
		"#########",
		"#.......#",
		"#########",
	)
	require.NoError(t, Repair(g))
	assert.True(t, IsConnected(g))
	assert.Len(t, Components(g), 1)
}

// TestRepair_Unrepairable cannot reach a teleporter on the outer column:
// rays never travel along x = 0.
func TestRepair_Unrepairable(t *testing.T) {
	g := grid.MustParse(
		"#####",
		"#.###",
		"#.###",
		"#####",
		"T####",
	)
	err := Repair(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrepairable))
}

// TestRepair_GhostHouseBlocksRay refuses to bridge through the ghost house.
func TestRepair_GhostHouseBlocksRay(t *testing.T) {
	g := grid.MustParse(
		"#####",
		"#.G.#",
		"#####",
	)
	err := Repair(g)
	assert.ErrorIs(t, err, ErrUnrepairable)
	assert.Equal(t, 1, g.Count(grid.GhostHouse))
}

// TestRepair_PreservesTeleporters never overwrites non-wall cells on a ray.
func TestRepair_PreservesTeleporters(t *testing.T) {
	g := grid.MustParse(
		"######",
		"T..#.#",
		"######",
	)
	require.NoError(t, Repair(g))
	assert.Equal(t, "T....#", g.Rows()[1])
	assert.Equal(t, 1, g.Count(grid.Teleporter))
}

// TestRepair_NoWalkable treats a grid without corridors as connected.
func TestRepair_NoWalkable(t *testing.T) {
	assert.NoError(t, Repair(grid.New(4, 4)))
	assert.NoError(t, Repair(&grid.Grid{}))
}

// TestRepair_RandomGrids checks that a successful repair always leaves a
// single region.
func TestRepair_RandomGrids(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		g := grid.New(14, 31)
		for y := 1; y < g.Height-1; y++ {
			for x := 1; x < g.Width; x++ {
				if r.Intn(3) == 0 {
					g.Set(grid.Position{X: x, Y: y}, grid.Empty)
				}
			}
		}
		if err := Repair(g); err != nil {
			require.ErrorIs(t, err, ErrUnrepairable)
			continue
		}
		require.True(t, IsConnected(g), "grid %d:\n%s", i, g)
	}
}
