// Package cleanup turns a carved half-grid skeleton into a playable,
// fully connected half-map.
//
// Run applies, in order:
//
//  1. EnforceAisle: no double-width aisle at the seam column.
//  2. PruneOrphans: remove dead ends until none remain.
//  3. PlaceTeleporters: teleporters on distinct odd rows of column 0.
//  4. connectivity.Repair: bridge every stray region.
//
// All passes mutate the half-grid in place. The seam column is the last
// column; its mirror partner supplies the rest of its connectivity, which
// is why the seam has relaxed rules in both EnforceAisle and PruneOrphans.
package cleanup
