package bfs

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// queueItem pairs a cell with the moves that reached it.
type queueItem struct {
	pos   keypad.Position
	moves []keypad.Move
}

// walker encapsulates mutable search state.
type walker struct {
	grid  Grid
	opts  Options
	end   keypad.Position
	queue []queueItem
	best  map[keypad.Position]int
	found int // depth at which end was first reached, -1 until then
	paths [][]keypad.Move
}

// AllShortestPaths returns every minimal-length route from start to end on g.
// All routes have equal length; start == end yields a single empty route.
// Returns ErrGridNil, ErrOutOfBounds, ErrOptionViolation, or ErrNoPath.
func AllShortestPaths(g Grid, start, end keypad.Position, opts ...Option) ([][]keypad.Move, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, p := range [2]keypad.Position{start, end} {
		if !g.InBounds(p) || g.IsGap(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	w := &walker{
		grid:  g,
		opts:  o,
		end:   end,
		best:  make(map[keypad.Position]int),
		found: -1,
	}
	w.enqueue(queueItem{pos: start})
	w.loop()

	if len(w.paths) == 0 {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, start, end)
	}
	return w.paths, nil
}

// enqueue records the depth of item's cell and adds it to the queue.
func (w *walker) enqueue(item queueItem) {
	d := len(item.moves)
	w.best[item.pos] = d
	w.opts.OnEnqueue(item.pos, d)
	w.queue = append(w.queue, item)
}

// loop processes the queue until it is empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		d := len(item.moves)
		if w.found >= 0 && d > w.found {
			// everything left in the queue is at least this deep
			return
		}
		if item.pos == w.end {
			w.found = d
			w.paths = append(w.paths, item.moves)
			w.opts.OnPath(item.moves)
			continue
		}
		w.expand(item)
	}
}

// expand queues each in-bounds, non-gap neighbour whose candidate depth does
// not exceed the best depth already recorded for it.
func (w *walker) expand(item queueItem) {
	next := len(item.moves) + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, m := range keypad.Moves {
		nbr := item.pos.Add(m)
		if !w.grid.InBounds(nbr) || w.grid.IsGap(nbr) {
			continue
		}
		if d, seen := w.best[nbr]; seen && next > d {
			continue
		}
		moves := make([]keypad.Move, len(item.moves), next)
		copy(moves, item.moves)
		w.enqueue(queueItem{pos: nbr, moves: append(moves, m)})
	}
}
