// Package keypadchain computes how few buttons a human must press to make a
// chain of robots type a door code.
//
// The human presses a directional keypad that steers a robot arm over a
// second directional keypad, which steers the next robot, and so on; the
// last robot types on the numeric door keypad. Each layer multiplies the
// presses, so the solver counts rather than builds the sequences, memoizing
// the cost of every (depth, from-key, to-key) transition.
//
// Under the hood, everything is organized under four subpackages:
//
//	keypad/   — the numeric and directional layouts, positions, moves, symbols
//	bfs/      — every shortest route between two keys of a keypad
//	chain/    — the memoized recursive solver, expansion, and replay
//	evaluate/ — door codes, per-code press counts, and the complexity sum
//
// Quick example:
//
//	codes := []evaluate.Code{"029A", "980A", "179A", "456A", "379A"}
//	total, _ := evaluate.TotalComplexity(codes, 2) // 126384
//
// The cmd/keypadchain command reads codes from a file and prints both
// puzzle answers.
package keypadchain
