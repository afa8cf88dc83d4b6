// Package pacmaze generates symmetric maze maps for pursuit-arcade games:
// a walled board with a central ghost house, a player start corridor,
// edge teleporter pairs and no dead ends.
//
// Only the left half of the board is ever built. Builder pools carve
// random-walk corridors, a cleanup pipeline narrows the seam aisle, prunes
// dead ends, places teleporters and bridges disconnected regions, and the
// half is then mirrored and stripped of walls that border nothing.
//
// Subpackages, bottom-up:
//
//	grid/          cell types, the dense Grid and the pruned Sparse grid
//	rng/           the injected random source, parity-forcing draws
//	carve/         Builder random walks and builder Pools
//	skeleton/      fixed regions (ghost house, start area) and the carved skeleton
//	cleanup/       seam aisle, orphan pruning, teleporter placement
//	connectivity/  flood fill, region analysis, ray bridging
//	mirror/        half-grid reflection and symmetry checks
//	prune/         removal of walls with no open neighbor
//	generator/     configuration, the attempt loop and budgets
//
// Quick start:
//
//	cfg := generator.DefaultConfig()
//	cfg.GenerationConstraints.MaxAttempts = 100
//	m, err := generator.Generate(cfg, generator.WithSeed(1))
//
// Every random draw flows through one rng.Random, so a seed and a Config
// reproduce a map exactly.
package pacmaze
