// Package carve implements the random-walk corridor carvers.
//
// A Builder is an explicit state value; Advance is its transition
// function (state, grid) -> (state', carved position). Builders only read
// the grid to detect that they have walked back into an existing
// corridor. Writing the carved cell is the caller's job.
//
// A Pool groups 2–4 builders that leave one origin in mutually distinct
// directions and advances them in lockstep.
//
// Randomness always comes from the *rng.Random passed in, so a fixed seed
// reproduces every walk.
package carve
