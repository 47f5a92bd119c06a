// Package evaluate defines evaluator options and sentinel errors.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for code parsing and evaluation.
var (
	// ErrEmptyCode is returned for a code with no runes.
	ErrEmptyCode = errors.New("evaluate: empty code")

	// ErrMissingActivate is returned when a code does not end with A.
	ErrMissingActivate = errors.New("evaluate: code must end with A")

	// ErrBadValue is returned when the part before the trailing A is not a number.
	ErrBadValue = errors.New("evaluate: code has no numeric value")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("evaluate: invalid option supplied")
)

// Option configures an Evaluator via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for an Evaluator.
type Options struct {
	// Workers is the number of goroutines TotalComplexity uses. 1 is sequential.
	Workers int

	// Numeric is the door keypad.
	Numeric *keypad.Layout

	// OnCode is called after each code with its minimal press count.
	// With Workers > 1 it is called from several goroutines.
	OnCode func(code Code, presses uint64)

	// Chain holds options forwarded to chain.NewSolver.
	Chain []chain.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential Options on the standard numeric keypad.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Numeric: keypad.Numeric(),
		OnCode:  func(Code, uint64) {},
	}
}

// WithWorkers evaluates codes on n goroutines.
//
//	n >= 1: use n workers
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithNumeric replaces the door keypad.
func WithNumeric(l *keypad.Layout) Option {
	return func(o *Options) {
		if l != nil {
			o.Numeric = l
		}
	}
}

// WithOnCode registers a callback run after each code.
func WithOnCode(fn func(code Code, presses uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCode = fn
		}
	}
}

// WithChainOptions forwards opts to the underlying chain.Solver.
func WithChainOptions(opts ...chain.Option) Option {
	return func(o *Options) {
		o.Chain = append(o.Chain, opts...)
	}
}
