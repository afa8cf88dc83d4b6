package skeleton

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pacmaze/carve"
	"github.com/katalvlaran/pacmaze/grid"
	"github.com/katalvlaran/pacmaze/internal/logging"
	"github.com/katalvlaran/pacmaze/rng"
)

// Params are the inputs of Build.
type Params struct {
	Width, Height int         // full map size
	Pools         rng.Range // number of builder pools
	Turn          rng.Range // builder turn distance
}

// Build returns the carved half-grid skeleton: fixed regions from
// NewLayout plus corridors from N builder pools, N drawn from p.Pools.
//
// The first pool starts at Layout.FirstOrigin. Every other origin is drawn
// with odd coordinates and redrawn until it lands on a Wall. All pools then
// step in lockstep, each returned position carved to Empty, until every
// pool is done.
//
// Complexity: O(P + C) where C is the number of carved steps.
func Build(p Params, r *rng.Random, log logrus.FieldLogger) *grid.Grid {
	log = logging.OrDiscard(log)
	layout := NewLayout(p.Width, p.Height)
	g := layout.Base()

	n := r.Pick(p.Pools)
	log.WithFields(logrus.Fields{"pools": n, "start": layout.Start}).Debug("building skeleton")

	pools := make([]*carve.Pool, 0, n)
	for i := 0; i < n; i++ {
		origin := layout.FirstOrigin()
		if i > 0 {
			origin = randomOrigin(g, layout, r)
		}
		pools = append(pools, carve.NewPool(origin, layout.HalfWidth, layout.Height, r, p.Turn, log))
	}

	for len(pools) > 0 {
		for _, pool := range pools {
			for _, pos := range pool.Step(g, r) {
				if g.Is(pos, grid.GhostHouse) {
					continue
				}
				g.Set(pos, grid.Empty)
			}
		}
		active := pools[:0]
		for _, pool := range pools {
			if !pool.Done() {
				active = append(active, pool)
			}
		}
		pools = active
	}
	return g
}

// randomOrigin rejection-samples an odd-coordinate Wall cell.
func randomOrigin(g *grid.Grid, l Layout, r *rng.Random) grid.Position {
	for {
		p := grid.Position{
			X: r.IntParity(2, l.HalfWidth-2, rng.Odd),
			Y: r.IntParity(2, l.Height-2, rng.Odd),
		}
		if g.Is(p, grid.Wall) {
			return p
		}
	}
}
