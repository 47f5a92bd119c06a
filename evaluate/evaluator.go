package evaluate

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/keypadchain/bfs"
	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/keypad"
)

// Evaluator scores door codes through a fixed number of robot keypads.
// One Evaluator keeps one chain.Solver, so the transition memo warms up
// across every code it evaluates.
type Evaluator struct {
	layers  int
	numeric *keypad.Layout
	solver  *chain.Solver
	opts    Options
}

// New builds an Evaluator for `layers` directional keypads between the
// human and the door keypad. Returns ErrOptionViolation for bad options or
// a negative depth.
func New(layers int, opts ...Option) (*Evaluator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if layers < 0 {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, chain.ErrNegativeLayers)
	}

	return &Evaluator{
		layers:  layers,
		numeric: o.Numeric,
		solver:  chain.NewSolver(o.Chain...),
		opts:    o,
	}, nil
}

// Layers returns the number of directional keypads in the chain.
func (e *Evaluator) Layers() int { return e.layers }

// Solver returns the chain solver, and through it the shared memo.
func (e *Evaluator) Solver() *chain.Solver { return e.solver }

// candidates returns the directional presses of every shortest numeric
// route from src to the key r, and the position of r.
func (e *Evaluator) candidates(src keypad.Position, r rune) ([][]keypad.Symbol, keypad.Position, error) {
	dst, err := e.numeric.PositionOf(r)
	if err != nil {
		return nil, src, err
	}
	paths, err := bfs.AllShortestPaths(e.numeric, src, dst)
	if err != nil {
		return nil, src, err
	}
	cands := make([][]keypad.Symbol, len(paths))
	for i, p := range paths {
		cands[i] = keypad.ToSymbols(p)
	}
	return cands, dst, nil
}

// CodeLength returns the minimal number of human presses that make the door
// keypad arm type c, starting from the numeric keypad's resting position.
func (e *Evaluator) CodeLength(c Code) (uint64, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	pos := e.numeric.Start()
	var total uint64
	for _, r := range c {
		cands, dst, err := e.candidates(pos, r)
		if err != nil {
			return 0, fmt.Errorf("code %q: %w", string(c), err)
		}
		_, cost, err := e.solver.Cheapest(cands, e.layers)
		if err != nil {
			return 0, fmt.Errorf("code %q: %w", string(c), err)
		}
		if total, err = chain.CheckedAdd(total, cost); err != nil {
			return 0, fmt.Errorf("code %q: %w", string(c), err)
		}
		pos = dst
	}
	e.opts.OnCode(c, total)
	return total, nil
}

// Complexity returns CodeLength(c) × c.Value().
func (e *Evaluator) Complexity(c Code) (uint64, error) {
	n, err := e.CodeLength(c)
	if err != nil {
		return 0, err
	}
	v, err := c.Value()
	if err != nil {
		return 0, err
	}
	out, err := chain.CheckedMul(n, v)
	if err != nil {
		return 0, fmt.Errorf("code %q: %w", string(c), err)
	}
	return out, nil
}

// TotalComplexity returns the sum of Complexity over codes. With more than
// one worker the codes are evaluated concurrently; the first failing code,
// in input order, determines the error.
func (e *Evaluator) TotalComplexity(codes []Code) (uint64, error) {
	scores := make([]uint64, len(codes))
	errs := make([]error, len(codes))

	if e.opts.Workers <= 1 || len(codes) <= 1 {
		for i, c := range codes {
			if scores[i], errs[i] = e.Complexity(c); errs[i] != nil {
				return 0, errs[i]
			}
		}
	} else {
		e.scoreConcurrently(codes, scores, errs)
	}

	var total uint64
	for i := range codes {
		if errs[i] != nil {
			return 0, errs[i]
		}
		var err error
		if total, err = chain.CheckedAdd(total, scores[i]); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// scoreConcurrently fills scores and errs using e.opts.Workers goroutines.
func (e *Evaluator) scoreConcurrently(codes []Code, scores []uint64, errs []error) {
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := min(e.opts.Workers, len(codes))
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				scores[i], errs[i] = e.Complexity(codes[i])
			}
		}()
	}
	for i := range codes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// ExpandCode returns one minimal human press sequence for c. It fails with
// chain.ErrExpansionTooLarge when the sequence would exceed limit presses.
func (e *Evaluator) ExpandCode(c Code, limit uint64) ([]keypad.Symbol, error) {
	n, err := e.CodeLength(c)
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, fmt.Errorf("%w: code %q needs %d presses, limit %d", chain.ErrExpansionTooLarge, string(c), n, limit)
	}

	out := make([]keypad.Symbol, 0, n)
	pos := e.numeric.Start()
	for _, r := range c {
		cands, dst, err := e.candidates(pos, r)
		if err != nil {
			return nil, err
		}
		i, _, err := e.solver.Cheapest(cands, e.layers)
		if err != nil {
			return nil, err
		}
		part, err := e.solver.Expand(cands[i], e.layers, limit)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
		pos = dst
	}
	return out, nil
}

// TotalComplexity scores codes through `layers` robot keypads with a fresh
// sequential Evaluator.
func TotalComplexity(codes []Code, layers int) (uint64, error) {
	e, err := New(layers)
	if err != nil {
		return 0, err
	}
	return e.TotalComplexity(codes)
}
