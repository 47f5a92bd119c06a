package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/bfs"
	"github.com/katalvlaran/keypadchain/keypad"
)

// TestAllShortestPaths_Errors verifies that invalid inputs and options are rejected.
func TestAllShortestPaths_Errors(t *testing.T) {
	dir := keypad.Directional()
	a := dir.Start()

	_, err := bfs.AllShortestPaths(nil, a, a)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	_, err = bfs.AllShortestPaths(dir, a, dir.Gap())
	assert.ErrorIs(t, err, bfs.ErrOutOfBounds)

	_, err = bfs.AllShortestPaths(dir, keypad.Position{X: 3, Y: 0}, a)
	assert.ErrorIs(t, err, bfs.ErrOutOfBounds)

	_, err = bfs.AllShortestPaths(dir, a, a, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestAllShortestPaths_SameCell returns one empty route.
func TestAllShortestPaths_SameCell(t *testing.T) {
	num := keypad.Numeric()
	paths, err := bfs.AllShortestPaths(num, num.Start(), num.Start())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Empty(t, paths[0])
}

// TestAllShortestPaths_AvoidsGap checks that routes bending around the gap
// are the only ones returned.
func TestAllShortestPaths_AvoidsGap(t *testing.T) {
	num := keypad.Numeric()
	from, _ := num.PositionOf('A')
	to, _ := num.PositionOf('1')

	paths, err := bfs.AllShortestPaths(num, from, to)
	require.NoError(t, err)

	got := make([]string, 0, len(paths))
	for _, p := range paths {
		got = append(got, keypad.FormatSymbols(keypad.ToSymbols(p)))
	}
	// "<<^" would cross the gap at the bottom-left corner.
	assert.ElementsMatch(t, []string{"^<<A", "<^<A"}, got)
}

// TestAllShortestPaths_BothAxisOrders checks that a diagonal hop offers
// both "one axis first" routes.
func TestAllShortestPaths_BothAxisOrders(t *testing.T) {
	dir := keypad.Directional()
	from, _ := dir.PositionOf('A')
	to, _ := dir.PositionOf('v')

	paths, err := bfs.AllShortestPaths(dir, from, to)
	require.NoError(t, err)

	got := make([]string, 0, len(paths))
	for _, p := range paths {
		got = append(got, keypad.FormatSymbols(keypad.ToSymbols(p)))
	}
	assert.ElementsMatch(t, []string{"<vA", "v<A"}, got)
}

// TestAllShortestPaths_LengthInvariant enumerates every ordered key pair on
// both keypads and checks that all routes share the minimal length, equal to
// the Manhattan distance unless the gap forces a detour.
func TestAllShortestPaths_LengthInvariant(t *testing.T) {
	for _, l := range []*keypad.Layout{keypad.Numeric(), keypad.Directional()} {
		for _, a := range l.Keys() {
			for _, b := range l.Keys() {
				from, _ := l.PositionOf(a)
				to, _ := l.PositionOf(b)
				paths, err := bfs.AllShortestPaths(l, from, to)
				require.NoError(t, err, "%s %q→%q", l.Name(), a, b)
				require.NotEmpty(t, paths)

				want := len(paths[0])
				for _, p := range paths {
					assert.Len(t, p, want, "%s %q→%q unequal route lengths", l.Name(), a, b)
				}
				// On these layouts some rectangular route always avoids the gap.
				assert.Equal(t, from.Manhattan(to), want, "%s %q→%q", l.Name(), a, b)
			}
		}
	}
}

// TestAllShortestPaths_RoundTrip walks every returned route from start and
// expects to land on end without touching the gap.
func TestAllShortestPaths_RoundTrip(t *testing.T) {
	for _, l := range []*keypad.Layout{keypad.Numeric(), keypad.Directional()} {
		for _, a := range l.Keys() {
			for _, b := range l.Keys() {
				from, _ := l.PositionOf(a)
				to, _ := l.PositionOf(b)
				paths, err := bfs.AllShortestPaths(l, from, to)
				require.NoError(t, err)
				for _, p := range paths {
					cur := from
					for _, m := range p {
						cur = cur.Add(m)
						require.True(t, l.InBounds(cur))
						require.False(t, l.IsGap(cur), "%s %q→%q stepped on gap", l.Name(), a, b)
					}
					assert.Equal(t, to, keypad.Walk(from, keypad.ToSymbols(p)))
				}
			}
		}
	}
}

// TestAllShortestPaths_MaxDepth verifies that a depth cap below the distance
// reports ErrNoPath instead of a partial route.
func TestAllShortestPaths_MaxDepth(t *testing.T) {
	num := keypad.Numeric()
	from, _ := num.PositionOf('A')
	to, _ := num.PositionOf('7')

	_, err := bfs.AllShortestPaths(num, from, to, bfs.WithMaxDepth(3))
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	paths, err := bfs.AllShortestPaths(num, from, to, bfs.WithMaxDepth(5))
	require.NoError(t, err)
	assert.Len(t, paths[0], 5)
}

// walled is a 1×3 grid whose middle cell is the gap, so its ends are
// disconnected.
type walled struct{}

func (walled) InBounds(p keypad.Position) bool { return p.Y == 0 && p.X >= 0 && p.X < 3 }
func (walled) IsGap(p keypad.Position) bool    { return p == keypad.Position{X: 1, Y: 0} }

// TestAllShortestPaths_NoPath surfaces an unreachable end as ErrNoPath.
func TestAllShortestPaths_NoPath(t *testing.T) {
	_, err := bfs.AllShortestPaths(walled{}, keypad.Position{X: 0}, keypad.Position{X: 2})
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestAllShortestPaths_Hooks verifies OnEnqueue and OnPath are invoked.
func TestAllShortestPaths_Hooks(t *testing.T) {
	dir := keypad.Directional()
	from, _ := dir.PositionOf('<')
	to, _ := dir.PositionOf('A')

	var enq, found int
	paths, err := bfs.AllShortestPaths(dir, from, to,
		bfs.WithOnEnqueue(func(keypad.Position, int) { enq++ }),
		bfs.WithOnPath(func([]keypad.Move) { found++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, len(paths), found)
	assert.Positive(t, enq)
	// "<" → "A" has only ">>^" and ">^>"; "^>>" would cross the gap.
	assert.Equal(t, 2, found)
}
