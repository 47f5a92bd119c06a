package chain

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Expand returns one minimal human sequence that makes the arm `layers`
// keypads away press target. Its length equals Solve(target, layers).
// The sequence grows roughly 2.5× per layer, so Expand refuses with
// ErrExpansionTooLarge when that length would exceed limit.
func (s *Solver) Expand(target []keypad.Symbol, layers int, limit uint64) ([]keypad.Symbol, error) {
	n, err := s.Solve(target, layers)
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, fmt.Errorf("%w: %d presses at %d layers, limit %d", ErrExpansionTooLarge, n, layers, limit)
	}
	out := make([]keypad.Symbol, 0, n)
	return s.expand(out, target, layers)
}

// expand appends the expansion of target to out.
func (s *Solver) expand(out, target []keypad.Symbol, layers int) ([]keypad.Symbol, error) {
	if layers == 0 {
		return append(out, target...), nil
	}
	cur := keypad.SymActivate
	for _, sym := range target {
		cands, err := s.candidates(cur, sym)
		if err != nil {
			return nil, err
		}
		i, _, err := s.Cheapest(cands, layers-1)
		if err != nil {
			return nil, err
		}
		if out, err = s.expand(out, cands[i], layers-1); err != nil {
			return nil, err
		}
		cur = sym
	}
	return out, nil
}
