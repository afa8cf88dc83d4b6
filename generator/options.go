package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pacmaze/rng"
)

// Option customizes a Run. Options apply in order; later ones win.
// Constructors panic on nil input; Run itself never panics.
type Option func(*options)

type options struct {
	src rng.Source
	log logrus.FieldLogger
	now func() time.Time
	ctx context.Context
}

func newOptions(opts ...Option) options {
	o := options{now: time.Now, ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.New(rand.NewSource(o.now().UnixNano()))
	}
	return o
}

// WithSeed makes the run reproducible: the same seed and Config give the
// same map.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(o *options) { o.src = r }
}

// WithSource uses an arbitrary integer source. Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("generator: WithSource(nil)")
	}
	return func(o *options) { o.src = src }
}

// WithLogger routes progress records to log. Without it, a logger is built
// from Config.Debug. Panics on nil.
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(o *options) { o.log = log }
}

// WithClock replaces time.Now for the time budget and Result.Elapsed.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("generator: WithClock(nil)")
	}
	return func(o *options) { o.now = now }
}

// WithContext allows cancellation between attempts. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("generator: WithContext(nil)")
	}
	return func(o *options) { o.ctx = ctx }
}
