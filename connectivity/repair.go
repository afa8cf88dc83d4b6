package connectivity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pacmaze/grid"
)

// ErrUnrepairable indicates that no unreached cell could be bridged to the
// reached region during a full sweep.
var ErrUnrepairable = errors.New("connectivity: regions cannot be bridged")

// rayOrder is the order in which bridging rays are tried.
var rayOrder = [4]grid.Direction{grid.Left, grid.Right, grid.Up, grid.Down}

// Repair makes every walkable cell of g reachable from the first Empty
// cell, mutating g in place.
//
// Behavior:
//  1. Reach from the first Empty cell; done when every walkable cell is reached.
//  2. Sweep unreached walkable cells in row-major order. For each, cast rays
//     left, right, up, down through the grid interior (x > 0, y > 0) until one
//     meets a reached cell; a GhostHouse cell stops a ray.
//  3. On the first successful ray turn its Wall cells into Empty and
//     restart from step 1.
//  4. If a whole sweep bridges nothing, return ErrUnrepairable.
//
// On error g may already hold bridges from earlier passes; callers discard it.
func Repair(g *grid.Grid) error {
	if g.IsEmpty() {
		return nil
	}
	seen, reached := Reach(g)
	for pass := 1; reached < g.Count(grid.Empty, grid.Teleporter); pass++ {
		attempted := 0
		bridged := false
	sweep:
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				p := grid.Position{X: x, Y: y}
				if !g.IsPassable(p) || seen[g.Index(p)] {
					continue
				}
				attempted++
				if bridge(g, p, seen) {
					bridged = true
					break sweep
				}
			}
		}
		if !bridged {
			return fmt.Errorf("Repair: pass %d, %d unreached cells: %w", pass, attempted, ErrUnrepairable)
		}
		seen, reached = Reach(g)
	}
	return nil
}

// bridge casts rays from p and converts the first successful one.
func bridge(g *grid.Grid, p grid.Position, seen []bool) bool {
	for _, d := range rayOrder {
		if ray, ok := castRay(g, p, d, seen); ok {
			for _, q := range ray {
				if g.Is(q, grid.Wall) {
					g.Set(q, grid.Empty)
				}
			}
			return true
		}
	}
	return false
}

// castRay walks from p along d and returns the cells up to and including
// the first reached walkable cell.
func castRay(g *grid.Grid, p grid.Position, d grid.Direction, seen []bool) ([]grid.Position, bool) {
	var ray []grid.Position
	for q := p.Add(d); q.X > 0 && q.X < g.Width && q.Y > 0 && q.Y < g.Height; q = q.Add(d) {
		t, _ := g.TypeAt(q)
		if t == grid.GhostHouse {
			return nil, false
		}
		ray = append(ray, q)
		if t.Passable() && seen[g.Index(q)] {
			return ray, true
		}
	}
	return nil, false
}
