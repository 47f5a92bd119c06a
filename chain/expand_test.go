package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/keypad"
)

// TestExpand_LengthAndReplay checks that the expansion has the solved length
// and, replayed through the chain, presses the target.
func TestExpand_LengthAndReplay(t *testing.T) {
	dir := keypad.Directional()
	sv := chain.NewSolver()
	target, err := keypad.ParseSymbols("<A^A>^^AvvvA")
	require.NoError(t, err)

	for layers := 1; layers <= 4; layers++ {
		want, err := sv.Solve(target, layers)
		require.NoError(t, err)

		exp, err := sv.Expand(target, layers, 1<<20)
		require.NoError(t, err)
		assert.Len(t, exp, int(want), "layers=%d", layers)

		typed, err := chain.Replay(exp, layers-1, dir, dir)
		require.NoError(t, err)
		assert.Equal(t, keypad.FormatSymbols(target), typed, "layers=%d", layers)
	}
}

// TestExpand_Limit refuses expansions that would be too long.
func TestExpand_Limit(t *testing.T) {
	sv := chain.NewSolver()
	target, _ := keypad.ParseSymbols("<A")
	_, err := sv.Expand(target, 25, 1<<20)
	assert.ErrorIs(t, err, chain.ErrExpansionTooLarge)
}

// TestExpand_ZeroLayers returns the target itself.
func TestExpand_ZeroLayers(t *testing.T) {
	sv := chain.NewSolver()
	target, _ := keypad.ParseSymbols("^>A")
	exp, err := sv.Expand(target, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, target, exp)
}
