// Package chain defines the solver options and sentinel errors.
package chain

import (
	"errors"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for chain solving.
var (
	// ErrNegativeLayers is returned when a negative layer count is requested.
	ErrNegativeLayers = errors.New("chain: layer count cannot be negative")

	// ErrOverflow is returned when a press count no longer fits in uint64.
	ErrOverflow = errors.New("chain: press count overflows uint64")

	// ErrExpansionTooLarge is returned when Expand would build a sequence
	// longer than the caller's limit.
	ErrExpansionTooLarge = errors.New("chain: expansion exceeds limit")

	// ErrArmOverGap is returned when Replay moves an arm off-grid or onto a gap.
	ErrArmOverGap = errors.New("chain: arm left the keypad")
)

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a Solver.
type Options struct {
	// Memo caches transition costs. Sharing one Memo between solvers over
	// the same keypad is safe.
	Memo *Memo

	// Directional is the keypad every robot arm in the chain operates.
	Directional *keypad.Layout

	// OnTransition is called after each memo miss with the computed cost.
	// It may be called from several goroutines when the Solver is shared.
	OnTransition func(layers int, from, to keypad.Symbol, cost uint64)
}

// DefaultOptions returns Options with a fresh Memo, the standard directional
// keypad, and a no-op OnTransition hook.
func DefaultOptions() Options {
	return Options{
		Memo:         NewMemo(),
		Directional:  keypad.Directional(),
		OnTransition: func(int, keypad.Symbol, keypad.Symbol, uint64) {},
	}
}

// WithMemo makes the Solver read and fill m instead of a private memo.
func WithMemo(m *Memo) Option {
	return func(o *Options) {
		if m != nil {
			o.Memo = m
		}
	}
}

// WithDirectional replaces the directional keypad.
func WithDirectional(l *keypad.Layout) Option {
	return func(o *Options) {
		if l != nil {
			o.Directional = l
		}
	}
}

// WithOnTransition registers a callback for memo misses.
func WithOnTransition(fn func(layers int, from, to keypad.Symbol, cost uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTransition = fn
		}
	}
}
