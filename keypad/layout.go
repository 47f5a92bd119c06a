package keypad

import "fmt"

// Layout is an immutable keypad grid. Keys[y][x] holds the key at column x,
// row y; exactly one cell holds Gap. Build one with NewLayout, Numeric, or
// Directional; the zero value is not usable.
type Layout struct {
	name          string
	keys          [][]rune
	width, height int
	gap           Position
	start         Position
	index         map[rune]Position
}

// NewLayout validates rows and builds a Layout resting on startKey.
// The rows are deep-copied, so later changes by the caller have no effect.
//
// Returns ErrInvalidLayout if the grid is empty, non-rectangular, has other
// than exactly one Gap cell, repeats a key, or lacks startKey.
// Complexity: O(W×H).
func NewLayout(name string, rows [][]rune, startKey rune) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %s: grid must have at least one row and one column", ErrInvalidLayout, name)
	}
	h, w := len(rows), len(rows[0])
	l := &Layout{
		name:   name,
		keys:   make([][]rune, h),
		width:  w,
		height: h,
		index:  make(map[rune]Position, w*h),
	}
	gaps := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: %s: row %d has %d cells, want %d", ErrInvalidLayout, name, y, len(row), w)
		}
		l.keys[y] = make([]rune, w)
		copy(l.keys[y], row)
		for x, k := range row {
			p := Position{X: x, Y: y}
			if k == Gap {
				gaps++
				l.gap = p
				continue
			}
			if prev, dup := l.index[k]; dup {
				return nil, fmt.Errorf("%w: %s: key %q at %v and %v", ErrInvalidLayout, name, k, prev, p)
			}
			l.index[k] = p
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: %s: %d gap cells, want exactly 1", ErrInvalidLayout, name, gaps)
	}
	start, ok := l.index[startKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s: start key %q not on grid", ErrInvalidLayout, name, startKey)
	}
	l.start = start

	return l, nil
}

// mustLayout panics on error; used only for the built-in layouts.
func mustLayout(name string, rows [][]rune, startKey rune) *Layout {
	l, err := NewLayout(name, rows, startKey)
	if err != nil {
		panic(err)
	}
	return l
}

// Numeric returns a new door keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	  0 A
func Numeric() *Layout {
	return mustLayout("numeric", [][]rune{
		{'7', '8', '9'},
		{'4', '5', '6'},
		{'1', '2', '3'},
		{Gap, '0', 'A'},
	}, 'A')
}

// Directional returns a new robot keypad:
//
//	  ^ A
//	< v >
func Directional() *Layout {
	return mustLayout("directional", [][]rune{
		{Gap, rune(SymUp), rune(SymActivate)},
		{rune(SymLeft), rune(SymDown), rune(SymRight)},
	}, rune(SymActivate))
}

// Name returns the label the layout was built with.
func (l *Layout) Name() string { return l.name }

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// Start returns the resting position of an arm before it processes a code.
func (l *Layout) Start() Position { return l.start }

// Gap returns the position of the empty cell.
func (l *Layout) Gap() Position { return l.gap }

// InBounds reports whether p lies inside the grid.
// Complexity: O(1).
func (l *Layout) InBounds(p Position) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

// IsGap reports whether p is the empty cell.
func (l *Layout) IsGap(p Position) bool {
	return p == l.gap
}

// PositionOf returns the cell holding key k, or ErrUnknownKey.
func (l *Layout) PositionOf(k rune) (Position, error) {
	p, ok := l.index[k]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q on %s keypad", ErrUnknownKey, k, l.name)
	}
	return p, nil
}

// KeyAt returns the key at p. ok is false off-grid and on the gap.
func (l *Layout) KeyAt(p Position) (k rune, ok bool) {
	if !l.InBounds(p) || l.IsGap(p) {
		return Gap, false
	}
	return l.keys[p.Y][p.X], true
}

// Keys returns every key in row-major order.
func (l *Layout) Keys() []rune {
	out := make([]rune, 0, len(l.index))
	for _, row := range l.keys {
		for _, k := range row {
			if k != Gap {
				out = append(out, k)
			}
		}
	}
	return out
}
