// Package bfs provides tunable options and error definitions
// for shortest-path enumeration on a keypad grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for path enumeration.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when start or end is off-grid or on the gap.
	ErrOutOfBounds = errors.New("bfs: position outside grid or on gap")

	// ErrNoPath is returned when end is unreachable from start.
	ErrNoPath = errors.New("bfs: no path between positions")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Grid is the view of a keypad the search needs. *keypad.Layout implements it.
type Grid interface {
	InBounds(p keypad.Position) bool
	IsGap(p keypad.Position) bool
}

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// OnEnqueue is called when a cell is queued, with its depth from start.
	OnEnqueue func(p keypad.Position, depth int)

	// OnPath is called for every complete route that reaches end.
	OnPath func(path []keypad.Move)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(keypad.Position, int) {},
		OnPath:    func([]keypad.Move) {},
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p keypad.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnPath registers a callback to run for every route found.
// The slice passed to fn must not be retained or modified.
func WithOnPath(fn func(path []keypad.Move)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// WithMaxDepth limits routes to at most d moves.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
