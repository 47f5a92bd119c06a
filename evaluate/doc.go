// Package evaluate turns door codes into the puzzle's complexity score:
// the minimal number of human presses for each code, through a chain of
// robot-operated directional keypads, times the code's numeric value.
//
// What
//
//   - Code / ParseCode: a door code such as "029A"; Value() is 29.
//   - Evaluator.CodeLength: minimal human presses for one code.
//   - Evaluator.TotalComplexity: Σ CodeLength(code) × code.Value().
//   - Evaluator.ExpandCode: one concrete minimal press sequence.
//   - ReadCodes: one code per line from an io.Reader.
//
// How
//
//	The door keypad arm starts on A. For each rune of the code, every
//	shortest route on the numeric keypad is translated into directional
//	presses and handed to chain.Solver at the configured depth; the cheapest
//	wins and the arm rests on the pressed key. The Solver's memo is keyed by
//	(depth, from, to) only, so it is shared by all codes of one Evaluator.
//
// Concurrency
//
//	WithWorkers(n) spreads codes over n goroutines that share the one
//	RWMutex-guarded memo. Results are summed in input order, so the total
//	is the same as a sequential run.
//
// Errors
//
//   - ErrEmptyCode, ErrMissingActivate, ErrBadValue for malformed codes.
//   - ErrOptionViolation for invalid options or a negative depth.
//   - keypad.ErrUnknownKey, bfs.ErrNoPath, chain.ErrOverflow propagated.
package evaluate
