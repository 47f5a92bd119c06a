// Package keypad defines positions, moves, symbols, and sentinel errors
// shared by the keypad layouts.
package keypad

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for keypad lookups and construction.
var (
	// ErrUnknownKey is returned when a rune has no key on a layout or is not a Symbol.
	ErrUnknownKey = errors.New("keypad: unknown key")

	// ErrInvalidLayout is returned when NewLayout receives a malformed grid.
	ErrInvalidLayout = errors.New("keypad: invalid layout")
)

// Gap marks the single cell of a layout that holds no key.
const Gap rune = 0

// Position addresses a cell: X is the column, Y the row (top row is 0).
type Position struct {
	X, Y int
}

// Add returns p shifted by one step of m.
func (p Position) Add(m Move) Position {
	d := m.Delta()
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |Δx| + |Δy| between p and q.
func (p Position) Manhattan(q Position) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Move is a single unit step on a keypad grid.
type Move uint8

const (
	Up Move = iota
	Right
	Down
	Left
)

// Moves lists the four steps in the order neighbours are explored.
var Moves = [4]Move{Up, Right, Down, Left}

// Delta returns the coordinate offset of m.
func (m Move) Delta() Position {
	switch m {
	case Up:
		return Position{X: 0, Y: -1}
	case Right:
		return Position{X: 1, Y: 0}
	case Down:
		return Position{X: 0, Y: 1}
	default:
		return Position{X: -1, Y: 0}
	}
}

// Symbol returns the arrow that makes an arm take step m.
func (m Move) Symbol() Symbol {
	switch m {
	case Up:
		return SymUp
	case Right:
		return SymRight
	case Down:
		return SymDown
	default:
		return SymLeft
	}
}

func (m Move) String() string {
	return string(rune(m.Symbol()))
}

// Symbol is one press on a directional keypad.
type Symbol rune

const (
	SymUp       Symbol = '^'
	SymDown     Symbol = 'v'
	SymLeft     Symbol = '<'
	SymRight    Symbol = '>'
	SymActivate Symbol = 'A'
)

// Symbols lists the directional alphabet.
var Symbols = [5]Symbol{SymUp, SymDown, SymLeft, SymRight, SymActivate}

// Valid reports whether s belongs to the directional alphabet.
func (s Symbol) Valid() bool {
	switch s {
	case SymUp, SymDown, SymLeft, SymRight, SymActivate:
		return true
	}
	return false
}

// Move returns the step encoded by an arrow. ok is false for SymActivate
// and for runes outside the alphabet.
func (s Symbol) Move() (m Move, ok bool) {
	switch s {
	case SymUp:
		return Up, true
	case SymRight:
		return Right, true
	case SymDown:
		return Down, true
	case SymLeft:
		return Left, true
	}
	return 0, false
}
