// Package bfs enumerates every shortest path between two cells of a small
// keypad grid using breadth-first search.
//
// What
//
//   - AllShortestPaths returns each minimal-length route from start to end as
//     a []keypad.Move, never stepping off the grid or onto its gap cell.
//   - All returned routes share the same length.
//   - Supports functional hooks:
//   - OnEnqueue (each time a cell is queued with its depth)
//   - OnPath    (each time a complete route reaches end)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	A single shortest route is not enough for the robot chain: two routes of
//	equal length (for example "<<^" and "^<<") can cost very different
//	amounts once the presses are replayed through further keypads, so the
//	caller needs all of them.
//
// How
//
//	Each queued item carries the moves taken so far. A cell's best depth is
//	the depth at which it was first reached; a neighbour is queued again
//	only when the candidate depth is ≤ that best depth, so every minimal
//	route survives and no longer route is ever queued. Routes reaching end
//	are collected directly, and the search stops expanding once it passes
//	the depth at which end was first reached.
//
// Determinism
//
//	Neighbours are explored in keypad.Moves order (up, right, down, left),
//	so the order of returned routes is reproducible.
//
// Complexity (C = cells, P = number of shortest routes, D = their length)
//
//   - Time:   O(C·P·D) — tiny for keypads (C ≤ 12, P ≤ a handful).
//   - Memory: O(C·P·D) for the queued partial routes.
//
// Errors
//
//   - ErrGridNil          if the grid is nil.
//   - ErrOutOfBounds      if start or end is off-grid or on the gap.
//   - ErrNoPath           if end cannot be reached.
//   - ErrOptionViolation  if an invalid Option is supplied.
//
// Usage
//
//	paths, err := bfs.AllShortestPaths(keypad.Directional(), from, to)
//	if err != nil {
//		// ErrGridNil, ErrOutOfBounds, ErrNoPath or ErrOptionViolation
//	}
package bfs
