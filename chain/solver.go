package chain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/keypadchain/bfs"
	"github.com/katalvlaran/keypadchain/keypad"
)

// Solver computes press counts through a chain of directional keypads.
// A Solver is safe for concurrent use; its only mutable state is the Memo.
type Solver struct {
	pad  *keypad.Layout
	memo *Memo
	opts Options
}

// NewSolver builds a Solver. Without options it owns a fresh Memo and uses
// keypad.Directional().
func NewSolver(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{pad: o.Directional, memo: o.Memo, opts: o}
}

// Memo returns the cache the Solver reads and fills.
func (s *Solver) Memo() *Memo { return s.memo }

// Directional returns the keypad operated by every arm in the chain.
func (s *Solver) Directional() *keypad.Layout { return s.pad }

// Solve returns the minimal number of human presses that make the arm
// `layers` keypads away press target, with every arm starting on A.
// Solve(target, 0) is len(target).
//
// Returns ErrNegativeLayers, ErrOverflow, keypad.ErrUnknownKey for a symbol
// outside the alphabet, or a propagated bfs error.
func (s *Solver) Solve(target []keypad.Symbol, layers int) (uint64, error) {
	if layers < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeLayers, layers)
	}
	if layers == 0 {
		return uint64(len(target)), nil
	}

	var total uint64
	cur := keypad.SymActivate
	for _, sym := range target {
		c, err := s.TransitionCost(layers, cur, sym)
		if err != nil {
			return 0, err
		}
		if total, err = CheckedAdd(total, c); err != nil {
			return 0, err
		}
		cur = sym
	}
	return total, nil
}

// TransitionCost returns the minimal human presses needed for an arm
// `layers` keypads away, resting on from, to press to. At depth 0 the
// human presses to directly, which costs 1.
func (s *Solver) TransitionCost(layers int, from, to keypad.Symbol) (uint64, error) {
	if layers < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeLayers, layers)
	}
	if !from.Valid() || !to.Valid() {
		return 0, fmt.Errorf("%w: transition %q→%q", keypad.ErrUnknownKey, rune(from), rune(to))
	}
	if layers == 0 {
		return 1, nil
	}

	key := MemoKey{Layers: layers, From: from, To: to}
	if c, ok := s.memo.Get(key); ok {
		return c, nil
	}

	cands, err := s.candidates(from, to)
	if err != nil {
		return 0, err
	}
	best := uint64(math.MaxUint64)
	for _, cand := range cands {
		c, err := s.Solve(cand, layers-1)
		if err != nil {
			return 0, err
		}
		if c < best {
			best = c
		}
	}

	best = s.memo.Put(key, best)
	s.opts.OnTransition(layers, from, to, best)

	return best, nil
}

// candidates returns the symbol sequence of every shortest route between
// two keys of the directional keypad, each ending with A.
func (s *Solver) candidates(from, to keypad.Symbol) ([][]keypad.Symbol, error) {
	src, err := s.pad.PositionOf(rune(from))
	if err != nil {
		return nil, err
	}
	dst, err := s.pad.PositionOf(rune(to))
	if err != nil {
		return nil, err
	}
	paths, err := bfs.AllShortestPaths(s.pad, src, dst)
	if err != nil {
		return nil, err
	}
	out := make([][]keypad.Symbol, len(paths))
	for i, p := range paths {
		out[i] = keypad.ToSymbols(p)
	}
	return out, nil
}

// Cheapest solves each candidate at depth layers and returns the index and
// cost of the first minimal one. Callers use it to pick among the routes
// of an outer keypad (such as the numeric one) that feeds this chain.
func (s *Solver) Cheapest(cands [][]keypad.Symbol, layers int) (int, uint64, error) {
	if len(cands) == 0 {
		return -1, 0, fmt.Errorf("%w: no candidates", bfs.ErrNoPath)
	}
	idx, best := -1, uint64(math.MaxUint64)
	for i, cand := range cands {
		c, err := s.Solve(cand, layers)
		if err != nil {
			return -1, 0, err
		}
		if idx < 0 || c < best {
			idx, best = i, c
		}
	}
	return idx, best, nil
}
