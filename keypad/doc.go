// Package keypad defines the two fixed keypads of the robot chain, the grid
// coordinates used to address their keys, and the translation of grid moves
// into presses on a directional keypad.
//
// What
//
//   - Layout: an immutable rectangular grid of keys with exactly one gap cell
//     and a resting position (the "A" key).
//   - Numeric(): the 4×3 door keypad (digits 0–9 plus A, gap bottom-left).
//   - Directional(): the 2×3 robot keypad (^ v < > A, gap top-left).
//   - Position / Move: integer coordinates (X column, Y row, Y grows downward)
//     and the four unit steps between them.
//   - Symbol: one press on a directional keypad.
//   - ToSymbols: Move sequence → Symbol sequence terminated by A.
//
// Layouts
//
//	Numeric          Directional
//	+---+---+---+        +---+---+
//	| 7 | 8 | 9 |        | ^ | A |
//	+---+---+---+    +---+---+---+
//	| 4 | 5 | 6 |    | < | v | > |
//	+---+---+---+    +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Errors
//
//   - ErrUnknownKey     if a rune has no key on the layout or alphabet.
//   - ErrInvalidLayout  if NewLayout is given a malformed grid.
package keypad
