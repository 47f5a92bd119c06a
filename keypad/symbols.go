package keypad

import (
	"fmt"
	"strings"
)

// ToSymbols converts a path of moves into the presses that make an arm walk
// it and then press the key it ends on. The result always ends with exactly
// one SymActivate; an empty path yields [A].
func ToSymbols(path []Move) []Symbol {
	out := make([]Symbol, 0, len(path)+1)
	for _, m := range path {
		out = append(out, m.Symbol())
	}
	return append(out, SymActivate)
}

// Walk applies the arrows of seq to start and returns where the arm ends.
// SymActivate presses do not move the arm. Bounds are not checked.
func Walk(start Position, seq []Symbol) Position {
	p := start
	for _, s := range seq {
		if m, ok := s.Move(); ok {
			p = p.Add(m)
		}
	}
	return p
}

// FormatSymbols renders seq as a string such as "<vA>^A".
func FormatSymbols(seq []Symbol) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, s := range seq {
		b.WriteRune(rune(s))
	}
	return b.String()
}

// ParseSymbols reads a string of directional presses.
// Returns ErrUnknownKey at the first rune outside ^ v < > A.
func ParseSymbols(s string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(s))
	for i, r := range s {
		sym := Symbol(r)
		if !sym.Valid() {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownKey, r, i)
		}
		out = append(out, sym)
	}
	return out, nil
}
