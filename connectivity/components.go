package connectivity

import "github.com/katalvlaran/pacmaze/grid"

// Reach flood-fills from the first Empty cell in row-major order across
// walkable cells. seen is indexed by g.Index; count is the number of cells
// reached. A grid with no Empty cell reaches nothing.
func Reach(g *grid.Grid) (seen []bool, count int) {
	if g.IsEmpty() {
		return nil, 0
	}
	seen = make([]bool, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if g.Is(p, grid.Empty) {
				return seen, fill(g, p, seen)
			}
		}
	}
	return seen, 0
}

// Components finds all 4-connected regions of walkable cells.
// Each component is a slice of row-major cell indices in BFS order; use
// g.Coordinate to map back to positions.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Components(g *grid.Grid) [][]int {
	if g.IsEmpty() {
		return nil
	}
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if !g.IsPassable(p) || seen[g.Index(p)] {
				continue
			}
			i0 := g.Index(p)
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				for _, d := range grid.Offsets(grid.Conn4) {
					v := u.Add(d)
					if !g.IsPassable(v) || seen[g.Index(v)] {
						continue
					}
					seen[g.Index(v)] = true
					queue = append(queue, g.Index(v))
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// IsConnected reports whether every walkable cell is reachable from every
// other. A grid without walkable cells is trivially connected.
func IsConnected(g *grid.Grid) bool {
	return len(Components(g)) <= 1
}

// fill runs BFS from start, marking seen, and returns the number of cells marked.
func fill(g *grid.Grid, start grid.Position, seen []bool) int {
	queue := []grid.Position{start}
	seen[g.Index(start)] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range grid.Offsets(grid.Conn4) {
			v := u.Add(d)
			if !g.IsPassable(v) || seen[g.Index(v)] {
				continue
			}
			seen[g.Index(v)] = true
			queue = append(queue, v)
		}
	}
	return len(queue)
}
