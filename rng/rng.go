// Package rng packages every random draw the generator makes behind one
// explicitly passed capability. No stage reaches for a global source, so a
// fixed seed reproduces a map exactly.
package rng

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pacmaze/grid"
)

// Source is the minimal integer source the generator needs.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform int in [0, n). n > 0.
	Intn(n int) int
}

// Parity requests an odd or even result from IntParity.
type Parity int

const (
	// Any leaves the drawn value unchanged.
	Any Parity = iota
	// Odd nudges the drawn value to an odd number.
	Odd
	// Even nudges the drawn value to an even number.
	Even
)

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min, Max int
}

// Random draws integers and directions from a Source.
type Random struct {
	src Source
}

// New wraps src. Panics on nil, matching the option constructors that feed it.
func New(src Source) *Random {
	if src == nil {
		panic("rng: New(nil)")
	}
	return &Random{src: src}
}

// NewSeeded returns a Random over math/rand seeded with seed.
func NewSeeded(seed int64) *Random {
	return New(rand.New(rand.NewSource(seed)))
}

// Int returns a uniform integer in the closed range [min, max].
// If max < min, min is returned.
func (r *Random) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.Intn(max-min+1)
}

// Pick draws a uniform integer from rg.
func (r *Random) Pick(rg Range) int {
	return r.Int(rg.Min, rg.Max)
}

// IntParity draws from [min, max] and then, if the value has the wrong
// parity, moves it one step: up when it is below max, otherwise down.
// The nudge keeps carving phase aligned with the grid's odd lattice, so
// the rule must not be replaced by rounding. The result can leave
// [min, max] by one only when min == max and that value has the wrong parity.
func (r *Random) IntParity(min, max int, p Parity) int {
	v := r.Int(min, max)
	if p == Any {
		return v
	}
	wantOdd := p == Odd
	if (v%2 == 0) == wantOdd {
		if v < max {
			v++
		} else {
			v--
		}
	}
	return v
}

// Direction picks uniformly among the cardinal directions not in exclude.
// ok is false when every direction is excluded.
func (r *Random) Direction(exclude mapset.Set[grid.Direction]) (d grid.Direction, ok bool) {
	candidates := make([]grid.Direction, 0, len(grid.Cardinals))
	for _, c := range grid.Cardinals {
		if !exclude.Has(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return grid.Direction{}, false
	}
	return candidates[r.Int(0, len(candidates)-1)], true
}

// Exclude builds a direction set from dirs.
func Exclude(dirs ...grid.Direction) mapset.Set[grid.Direction] {
	s := mapset.New[grid.Direction]()
	for _, d := range dirs {
		s.Put(d)
	}
	return s
}
