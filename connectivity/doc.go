// Package connectivity analyses and repairs reachability between walkable
// (Empty or Teleporter) cells of a grid.
//
// What:
//
//   - Reach flood-fills (BFS, 4-connected) from the first Empty cell in
//     row-major order.
//   - Components lists every 4-connected region of walkable cells.
//   - Repair bridges stray regions onto the reached one by straight rays,
//     turning the Wall cells along a ray into Empty.
//
// Repair keeps its visited set local to each pass; nothing is stored on
// the cells themselves.
//
// Complexity:
//
//   - Reach, Components: O(W×H), Memory: O(W×H).
//   - Repair: O(B × W×H) where B is the number of bridges built.
//
// Errors:
//
//   - ErrUnrepairable: a full sweep over every unreached cell found no ray
//     to the reached region.
package connectivity
