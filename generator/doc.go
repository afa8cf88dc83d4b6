// Package generator drives whole-map generation.
//
// Each attempt runs the same pipeline on a fresh grid:
//
//	skeleton.Build → cleanup.Run → mirror.Complete → validate
//
// An attempt validates when the grid is non-empty, the player start cell
// is Empty, and the Empty count lies inside Config.Path. A valid attempt
// is wall-pruned (prune.Walls) and returned.
//
// Without generationConstraints the loop runs until an attempt validates,
// which never happens for an unsatisfiable path range. With a budget, the
// loop keeps the attempt with the most Empty cells and returns it once the
// attempt count or time budget runs out, valid or not; Result.Valid tells
// the two apart. Budgets are checked only between attempts.
//
// Errors:
//   - *ConfigError (errors.Is ErrInvalidConfig) before any work is done.
//   - context errors from WithContext, checked between attempts.
//
// Unrepairable attempts are never returned as errors: the attempt is
// discarded and logged at Debug.
package generator
