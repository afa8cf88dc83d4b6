package carve

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pacmaze/grid"
	"github.com/katalvlaran/pacmaze/rng"
)

// Builder is the state of one random-walk carving agent.
type Builder struct {
	Pos    grid.Position  // current cell
	Dir    grid.Direction // current heading, one of grid.Cardinals
	Steps  int            // steps taken since the last turn
	TurnAt int            // steps before the next voluntary turn; always even
	Done   bool
}

// NewBuilder returns a builder at origin heading dir. The first turn
// threshold is drawn from turn with even parity.
func NewBuilder(origin grid.Position, dir grid.Direction, r *rng.Random, turn rng.Range) Builder {
	return Builder{
		Pos:    origin,
		Dir:    dir,
		TurnAt: r.IntParity(turn.Min, turn.Max, rng.Even),
	}
}

// Advance moves b one step and returns the new state and the position the
// caller should carve. b itself is not modified.
//
//  1. Walking onto an Empty cell finishes the walk (it has rejoined a corridor).
//  2. Reaching the carving boundary while heading outward forces a turn
//     away from the edge and never back the way it came.
//  3. Otherwise, once Steps reaches TurnAt, the builder turns to a
//     perpendicular direction that is not boundary-blocked.
//
// When no legal direction remains the walk finishes in place.
// A finished builder is returned unchanged.
func (b Builder) Advance(g *grid.Grid, r *rng.Random, turn rng.Range) (Builder, grid.Position) {
	if b.Done {
		return b, b.Pos
	}
	next := b
	next.Pos = b.Pos.Add(b.Dir)
	next.Steps++

	if g.Is(next.Pos, grid.Empty) {
		next.Done = true
		return next, next.Pos
	}

	if next.headingOut(g) {
		next.turn(r, turn, next.blocked(g))
		return next, next.Pos
	}

	if next.Steps >= next.TurnAt {
		ex := next.blocked(g)
		ex.Put(next.Dir)
		next.turn(r, turn, ex)
	}
	return next, next.Pos
}

// turn adopts a random direction outside exclude and redraws the threshold,
// or marks the builder done when nothing is left.
func (b *Builder) turn(r *rng.Random, turn rng.Range, exclude mapset.Set[grid.Direction]) {
	d, ok := r.Direction(exclude)
	if !ok {
		b.Done = true
		return
	}
	b.Dir = d
	b.Steps = 0
	b.TurnAt = r.IntParity(turn.Min, turn.Max, rng.Even)
}

// Carving limits. Builders keep a one-cell wall border on the outer edges;
// the right limit is the seam column, which mirroring turns into the centre.
func minX(*grid.Grid) int   { return 1 }
func maxX(g *grid.Grid) int { return g.Width - 1 }
func minY(*grid.Grid) int   { return 1 }
func maxY(g *grid.Grid) int { return g.Height - 2 }

// headingOut reports whether b sits on a carving limit and points past it.
func (b Builder) headingOut(g *grid.Grid) bool {
	return (b.Pos.X <= minX(g) && b.Dir.X < 0) ||
		(b.Pos.X >= maxX(g) && b.Dir.X > 0) ||
		(b.Pos.Y <= minY(g) && b.Dir.Y < 0) ||
		(b.Pos.Y >= maxY(g) && b.Dir.Y > 0)
}

// blocked returns the reverse heading plus every direction that would
// immediately cross a carving limit from b.Pos.
func (b Builder) blocked(g *grid.Grid) mapset.Set[grid.Direction] {
	ex := rng.Exclude(b.Dir.Reverse())
	if b.Pos.X <= minX(g) {
		ex.Put(grid.Left)
	}
	if b.Pos.X >= maxX(g) {
		ex.Put(grid.Right)
	}
	if b.Pos.Y <= minY(g) {
		ex.Put(grid.Up)
	}
	if b.Pos.Y >= maxY(g) {
		ex.Put(grid.Down)
	}
	return ex
}
