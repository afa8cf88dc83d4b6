package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pacmaze/cleanup"
	"github.com/katalvlaran/pacmaze/connectivity"
	"github.com/katalvlaran/pacmaze/grid"
	"github.com/katalvlaran/pacmaze/internal/logging"
	"github.com/katalvlaran/pacmaze/mirror"
	"github.com/katalvlaran/pacmaze/prune"
	"github.com/katalvlaran/pacmaze/rng"
	"github.com/katalvlaran/pacmaze/skeleton"
)

// Stats summarizes a finished map.
type Stats struct {
	Paths       int // Empty cells
	Teleporters int // teleporter pairs
	Regions     int // 4-connected walkable regions; 1 for a valid map
}

// Result is the outcome of Run.
type Result struct {
	Grid     *grid.Sparse // wall-pruned output
	Full     *grid.Grid   // the same map before pruning
	Stats    Stats
	Attempts int
	Valid    bool // false only when a budget ran out first
	Elapsed  time.Duration
}

// Generate returns the wall-pruned map for cfg.
// See Run for the loop and budget semantics.
func Generate(cfg Config, opts ...Option) (*grid.Sparse, error) {
	res, err := Run(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// Run validates cfg and generates attempts until one validates or the
// configured budget is exhausted.
func Run(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	log := o.log
	if log == nil {
		log = newLogger(cfg.Debug)
	}
	log = log.WithField("run", uuid.NewString())

	r := rng.New(o.src)
	layout := skeleton.NewLayout(cfg.Bounds.Width, cfg.Bounds.Height)
	gc := cfg.GenerationConstraints
	budgeted := gc.MaxAttempts > 0 || gc.MaxTimeMillis > 0
	limit := time.Duration(gc.MaxTimeMillis) * time.Millisecond

	start := o.now()
	var best *grid.Grid
	bestPaths := -1
	for attempt := 1; ; attempt++ {
		if err := o.ctx.Err(); err != nil {
			return nil, fmt.Errorf("Run: before attempt %d: %w", attempt, err)
		}
		full := generateOnce(cfg, r, log.WithField("attempt", attempt))
		paths := full.Count(grid.Empty)
		alog := log.WithFields(logrus.Fields{"attempt": attempt, "paths": paths})

		if validate(cfg, layout, full) {
			res := finish(full, attempt, true, o.now().Sub(start))
			alog.WithFields(logrus.Fields{
				"teleporters": res.Stats.Teleporters,
				"elapsed":     res.Elapsed,
			}).Debug("attempt valid")
			return res, nil
		}
		alog.Debug("attempt rejected")
		if !budgeted {
			continue
		}

		if !full.IsEmpty() && paths > bestPaths {
			best, bestPaths = full, paths
		}
		elapsed := o.now().Sub(start)
		if (gc.MaxAttempts > 0 && attempt >= gc.MaxAttempts) || (limit > 0 && elapsed >= limit) {
			pick := best
			if pick == nil {
				pick = full
			}
			log.WithFields(logrus.Fields{
				"attempt": attempt,
				"paths":   bestPaths,
				"elapsed": elapsed,
			}).Warn("generation budget exhausted, returning best attempt")
			return finish(pick, attempt, false, elapsed), nil
		}
	}
}

// generateOnce runs one pipeline pass. An unrepairable half-grid yields an
// empty grid.
func generateOnce(cfg Config, r *rng.Random, log logrus.FieldLogger) *grid.Grid {
	half := skeleton.Build(skeleton.Params{
		Width:  cfg.Bounds.Width,
		Height: cfg.Bounds.Height,
		Pools:  cfg.BuilderPool.ManagerCount.rng(),
		Turn:   cfg.Builder.TurnDistance.rng(),
	}, r, log)
	if _, err := cleanup.Run(half, r, cfg.Teleporter.rng(), log); err != nil {
		log.WithError(err).Debug("attempt discarded")
		return &grid.Grid{}
	}
	return mirror.Complete(half)
}

// validate reports whether full is a usable map.
func validate(cfg Config, l skeleton.Layout, full *grid.Grid) bool {
	if full.IsEmpty() || !full.Is(l.Start, grid.Empty) {
		return false
	}
	paths := full.Count(grid.Empty)
	if cfg.Path.Min > 0 && paths < cfg.Path.Min {
		return false
	}
	if cfg.Path.Max > 0 && paths > cfg.Path.Max {
		return false
	}
	return true
}

func finish(full *grid.Grid, attempts int, valid bool, elapsed time.Duration) *Result {
	return &Result{
		Grid:     prune.Walls(full),
		Full:     full,
		Stats:    StatsOf(full),
		Attempts: attempts,
		Valid:    valid,
		Elapsed:  elapsed,
	}
}

// StatsOf computes Stats for an unpruned full map.
func StatsOf(full *grid.Grid) Stats {
	return Stats{
		Paths:       full.Count(grid.Empty),
		Teleporters: full.Count(grid.Teleporter) / 2,
		Regions:     len(connectivity.Components(full)),
	}
}

func newLogger(debug bool) logrus.FieldLogger {
	if !debug {
		return logging.Discard()
	}
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	return l
}
