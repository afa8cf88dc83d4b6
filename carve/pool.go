package carve

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pacmaze/grid"
	"github.com/katalvlaran/pacmaze/internal/logging"
	"github.com/katalvlaran/pacmaze/rng"
)

// Builder count bounds per pool.
const (
	MinBuilders = 2
	MaxBuilders = 4
)

// edgeMargin is how close to an edge an origin may be before builders are
// no longer started towards that edge.
const edgeMargin = 2

// Pool owns the builders spawned from one origin.
type Pool struct {
	ID       string
	Origin   grid.Position
	builders []Builder
	turn     rng.Range
	log      logrus.FieldLogger
}

// NewPool spawns MinBuilders..MaxBuilders builders at origin on a
// width×height carving area. Starting directions never point at a nearby
// edge and are mutually distinct. A pool without any legal start direction
// is returned already done. log may be nil.
func NewPool(origin grid.Position, width, height int, r *rng.Random, turn rng.Range, log logrus.FieldLogger) *Pool {
	p := &Pool{
		ID:     uuid.NewString()[:8],
		Origin: origin,
		turn:   turn,
	}
	p.log = logging.OrDiscard(log).WithFields(logrus.Fields{"pool": p.ID})

	n := r.Int(MinBuilders, MaxBuilders)
	ex := rng.Exclude()
	if origin.X <= edgeMargin {
		ex.Put(grid.Left)
	} else if origin.X >= width-edgeMargin {
		ex.Put(grid.Right)
	}
	if origin.Y <= edgeMargin {
		ex.Put(grid.Up)
	} else if origin.Y >= height-edgeMargin {
		ex.Put(grid.Down)
	}

	for i := 0; i < n; i++ {
		d, ok := r.Direction(ex)
		if !ok {
			break
		}
		ex.Put(d)
		p.builders = append(p.builders, NewBuilder(origin, d, r, turn))
	}
	p.log.WithFields(logrus.Fields{
		"origin":   origin,
		"wanted":   n,
		"builders": len(p.builders),
	}).Debug("pool created")
	return p
}

// Step advances every unfinished builder once and returns the positions
// to carve, in builder order. Finished builders are dropped after the
// whole pool has moved.
func (p *Pool) Step(g *grid.Grid, r *rng.Random) []grid.Position {
	out := make([]grid.Position, 0, len(p.builders))
	for i := range p.builders {
		var pos grid.Position
		p.builders[i], pos = p.builders[i].Advance(g, r, p.turn)
		out = append(out, pos)
	}

	alive := p.builders[:0]
	for _, b := range p.builders {
		if !b.Done {
			alive = append(alive, b)
		}
	}
	p.builders = alive

	if p.Done() {
		p.log.WithField("positions", len(out)).Debug("pool done")
	}
	return out
}

// Done reports whether every builder has finished.
func (p *Pool) Done() bool {
	return len(p.builders) == 0
}

// Builders returns a copy of the unfinished builders.
func (p *Pool) Builders() []Builder {
	out := make([]Builder, len(p.builders))
	copy(out, p.builders)
	return out
}
