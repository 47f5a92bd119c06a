package evaluate_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/evaluate"
	"github.com/katalvlaran/keypadchain/keypad"
)

var sampleCodes = []evaluate.Code{"029A", "980A", "179A", "456A", "379A"}

func TestTotalComplexity_Fixtures(t *testing.T) {
	cases := []struct {
		name   string
		layers int
		want   uint64
	}{
		{"TwoRobots", 2, 126384},
		{"TwentyFiveRobots", 25, 154115708116294},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := evaluate.TotalComplexity(sampleCodes, tc.layers)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestCodeLength_Sample checks the per-code press counts published with
// the two-robot example.
func TestCodeLength_Sample(t *testing.T) {
	e, err := evaluate.New(2)
	require.NoError(t, err)

	want := map[evaluate.Code]uint64{"029A": 68, "980A": 60, "179A": 68, "456A": 64, "379A": 64}
	for _, c := range sampleCodes {
		n, err := e.CodeLength(c)
		require.NoError(t, err)
		assert.Equal(t, want[c], n, "code %s", c)
	}

	score, err := e.Complexity("029A")
	require.NoError(t, err)
	assert.Equal(t, uint64(1972), score)
}

// TestCodeLength_DirectAndOneRobot checks the shallow ends of the chain.
func TestCodeLength_DirectAndOneRobot(t *testing.T) {
	direct, err := evaluate.New(0)
	require.NoError(t, err)
	n, err := direct.CodeLength("029A")
	require.NoError(t, err)
	assert.Equal(t, uint64(len("<A^A>^^AvvvA")), n)

	one, err := evaluate.New(1)
	require.NoError(t, err)
	n, err = one.CodeLength("029A")
	require.NoError(t, err)
	assert.Equal(t, uint64(28), n)
}

// TestMemoSharedAcrossCodes verifies the second pass over the same codes
// adds nothing to the memo.
func TestMemoSharedAcrossCodes(t *testing.T) {
	e, err := evaluate.New(25)
	require.NoError(t, err)

	first, err := e.TotalComplexity(sampleCodes)
	require.NoError(t, err)
	size := e.Solver().Memo().Len()
	assert.LessOrEqual(t, size, 25*25)

	second, err := e.TotalComplexity(sampleCodes)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, size, e.Solver().Memo().Len())
}

// TestWorkers_MatchSequential runs the same batch with several goroutines.
func TestWorkers_MatchSequential(t *testing.T) {
	var mu sync.Mutex
	seen := map[evaluate.Code]uint64{}

	e, err := evaluate.New(25,
		evaluate.WithWorkers(4),
		evaluate.WithOnCode(func(c evaluate.Code, n uint64) {
			mu.Lock()
			defer mu.Unlock()
			seen[c] = n
		}),
	)
	require.NoError(t, err)

	got, err := e.TotalComplexity(sampleCodes)
	require.NoError(t, err)
	assert.Equal(t, uint64(154115708116294), got)
	assert.Len(t, seen, len(sampleCodes))
}

func TestNew_Errors(t *testing.T) {
	_, err := evaluate.New(2, evaluate.WithWorkers(0))
	assert.ErrorIs(t, err, evaluate.ErrOptionViolation)

	_, err = evaluate.New(-1)
	assert.ErrorIs(t, err, evaluate.ErrOptionViolation)
	assert.ErrorIs(t, err, chain.ErrNegativeLayers)
}

// TestTotalComplexity_Errors propagates bad codes instead of skipping them.
func TestTotalComplexity_Errors(t *testing.T) {
	_, err := evaluate.TotalComplexity([]evaluate.Code{"029A", "0B9A"}, 2)
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)

	_, err = evaluate.TotalComplexity([]evaluate.Code{"A"}, 2)
	assert.ErrorIs(t, err, evaluate.ErrBadValue)

	e, err := evaluate.New(2, evaluate.WithWorkers(3))
	require.NoError(t, err)
	_, err = e.TotalComplexity([]evaluate.Code{"029A", "980A", "9^A"})
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)

	deep, err := evaluate.New(100)
	require.NoError(t, err)
	_, err = deep.TotalComplexity([]evaluate.Code{"029A"})
	assert.ErrorIs(t, err, chain.ErrOverflow)
}

// TestMalformedCodes rejects codes that never press A or are empty, on
// every entry point that accepts a Code directly.
func TestMalformedCodes(t *testing.T) {
	cases := []struct {
		name string
		code evaluate.Code
		err  error
	}{
		{"NoActivate", "12", evaluate.ErrMissingActivate},
		{"Empty", "", evaluate.ErrEmptyCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := evaluate.New(2)
			require.NoError(t, err)

			_, err = e.CodeLength(tc.code)
			assert.ErrorIs(t, err, tc.err)
			_, err = e.Complexity(tc.code)
			assert.ErrorIs(t, err, tc.err)
			_, err = e.ExpandCode(tc.code, 1000)
			assert.ErrorIs(t, err, tc.err)

			total, err := evaluate.TotalComplexity([]evaluate.Code{"029A", tc.code}, 2)
			assert.ErrorIs(t, err, tc.err)
			assert.Zero(t, total)
		})
	}
}

// TestExpandCode replays the expansion through the chain.
func TestExpandCode(t *testing.T) {
	e, err := evaluate.New(2)
	require.NoError(t, err)

	for _, c := range sampleCodes {
		exp, err := e.ExpandCode(c, 1000)
		require.NoError(t, err)
		n, _ := e.CodeLength(c)
		assert.Len(t, exp, int(n))

		typed, err := chain.Replay(exp, 2, keypad.Numeric(), keypad.Directional())
		require.NoError(t, err)
		assert.Equal(t, string(c), typed)
	}

	_, err = e.ExpandCode("029A", 10)
	assert.ErrorIs(t, err, chain.ErrExpansionTooLarge)
}

func TestReadCodes(t *testing.T) {
	codes, err := evaluate.ReadCodes(strings.NewReader("029A\n 980A \n\n179A\n"))
	require.NoError(t, err)
	assert.Equal(t, []evaluate.Code{"029A", "980A", "179A"}, codes)

	_, err = evaluate.ReadCodes(strings.NewReader("029A\n980\n"))
	assert.ErrorIs(t, err, evaluate.ErrMissingActivate)
	assert.Contains(t, err.Error(), "line 2")
}
