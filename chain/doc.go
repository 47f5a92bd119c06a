// Package chain computes how many presses a human needs to make a chain of
// robot-operated directional keypads press a given symbol sequence.
//
// What
//
//   - Solver.Solve(target, layers): minimal human presses so that the arm
//     `layers` keypads away presses target.
//   - Solver.TransitionCost(layers, from, to): minimal human presses for one
//     press of `to` by an arm resting on `from`, memoized.
//   - Solver.Expand: one concrete minimal human sequence (small depths only).
//   - Replay: drives the keypads with a human sequence and reports what the
//     last arm types, for checking expansions.
//
// How
//
//	Every arm rests on the key it last pressed and starts a code on A, so a
//	sequence of n presses costs the sum of its n from→to transitions. The
//	cost of a transition at depth L is the minimum, over every shortest
//	route between the two keys on the directional keypad, of Solve(route+A,
//	L-1). Depth 0 is the human: each symbol costs one press. Because the
//	transition cost depends only on (L, from, to), the memo holds at most
//	L×25 entries and is shared by every code a Solver sees.
//
//	All equal-length routes are recursed into. Route shape (fewest turns,
//	first found) does not predict the cheapest expansion a few keypads
//	further out, so no candidate is dropped before its cost is known.
//
// Complexity (L = layers, n = len(target))
//
//   - Solve, cold memo: O(L·25·R) enumerations, R ≤ a handful of routes.
//   - Solve, warm memo: O(n) lookups.
//
// Errors
//
//   - ErrNegativeLayers     if layers < 0.
//   - ErrOverflow           if a count exceeds uint64.
//   - ErrExpansionTooLarge  if Expand would exceed its limit.
//   - ErrArmOverGap         if Replay moves an arm off-grid or onto a gap.
//   - keypad.ErrUnknownKey and bfs.ErrNoPath are propagated unchanged.
package chain
