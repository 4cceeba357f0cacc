package sequencer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/keypads/codes"
	"github.com/katalvlaran/keypads/cost"
	"github.com/katalvlaran/keypads/keypad"
	"github.com/katalvlaran/keypads/paths"
	"github.com/katalvlaran/keypads/sequencer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

//----------------------------------------------------------------------------//
// Sequences Tests
//----------------------------------------------------------------------------//

// TestSequences_Numeric checks the documented numeric realizations.
func TestSequences_Numeric(t *testing.T) {
	seqs, err := sequencer.Sequences(keypad.Numeric(), paths.Numeric(), "029A")
	require.NoError(t, err)
	assert.Contains(t, seqs, "<A^A>^^AvvvA")
	assert.Contains(t, seqs, "<A^A^^>AvvvA")
	for _, s := range seqs {
		assert.Len(t, s, 12)
	}

	seqs, err = sequencer.Sequences(keypad.Numeric(), paths.Numeric(), "379A")
	require.NoError(t, err)
	assert.Contains(t, seqs, "^A^^<<A>>AvvvA")
	for _, s := range seqs {
		assert.Len(t, s, 14)
	}
}

// TestSequences_Edges covers the empty target, a bare press and bad runes.
func TestSequences_Edges(t *testing.T) {
	seqs, err := sequencer.Sequences(keypad.Numeric(), paths.Numeric(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, seqs)

	seqs, err = sequencer.Sequences(keypad.Numeric(), paths.Numeric(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, seqs)

	_, err = sequencer.Sequences(keypad.Numeric(), paths.Numeric(), "0<A")
	assert.ErrorIs(t, err, keypad.ErrInvalidButton)
}

// TestSequences_Pruning feeds a table with a deliberately long alternative
// and checks only the shortest combinations survive.
func TestSequences_Pruning(t *testing.T) {
	kp := keypad.Directional()
	table := paths.Table{}
	for k, v := range paths.Directional() {
		table[k] = v
	}
	table[keypad.ButtonPair{From: 'A', To: '>'}] = []string{"<v>vA", "vA"}

	seqs, err := sequencer.Sequences(kp, table, ">A")
	require.NoError(t, err)
	assert.Equal(t, []string{"vA^A"}, seqs)
}

// TestSequences_MissingPair checks an incomplete table is reported per pair,
// not as a bad button.
func TestSequences_MissingPair(t *testing.T) {
	table := paths.Table{}
	for k, v := range paths.Numeric() {
		table[k] = v
	}
	delete(table, keypad.ButtonPair{From: '0', To: '2'})
	table[keypad.ButtonPair{From: '2', To: '9'}] = nil

	_, err := sequencer.Sequences(keypad.Numeric(), table, "02A")
	require.ErrorIs(t, err, sequencer.ErrMissingPath)
	assert.NotErrorIs(t, err, keypad.ErrInvalidButton)
	assert.Contains(t, err.Error(), "0→2")

	_, err = sequencer.Sequences(keypad.Numeric(), table, "29A")
	assert.ErrorIs(t, err, sequencer.ErrMissingPath)

	_, err = sequencer.Sequences(keypad.Numeric(), table, "03A")
	assert.NoError(t, err)
}

//----------------------------------------------------------------------------//
// Materialize Tests
//----------------------------------------------------------------------------//

// TestMaterialize_Documented checks literal command strings at depths 0..2.
func TestMaterialize_Documented(t *testing.T) {
	cases := []struct {
		code  string
		depth int
		want  string
	}{
		{"029A", 0, "<A^A>^^AvvvA"},
		{"029A", 1, "v<<A>>^A<A>AvA<^AA>A<vAAA>^A"},
		{"029A", 2, "<vA<AA>>^AvAA<^A>Av<<A>>^AvA^A<vA>^Av<<A>^A>AAvA^Av<<A>A>^AAAvA<^A>A"},
		{"379A", 0, "^A^^<<A>>AvvvA"},
		{"379A", 1, "<A>A<AAv<AA>>^AvAA^Av<AAA^>A"},
		{"379A", 2, "v<<A>>^AvA^A<vA<AA>>^AAvA<^A>AAvA^A<vA>^AA<A>Av<<A>A>^AAAvA<^A>A"},
	}
	for _, tc := range cases {
		got, err := sequencer.Materialize(tc.code, tc.depth)
		require.NoError(t, err)
		assert.Contains(t, got, tc.want, "Materialize(%s, %d)", tc.code, tc.depth)
	}

	_, err := sequencer.Materialize("029A", -1)
	assert.ErrorIs(t, err, cost.ErrNegativeDepth)
}

// TestMaterialize_MatchesCost verifies the literal strings have exactly the
// length the cost tables predict.
func TestMaterialize_MatchesCost(t *testing.T) {
	for depth := 0; depth <= 2; depth++ {
		s, err := sequencer.New(depth)
		require.NoError(t, err)
		for _, code := range sampleCodes {
			full, err := sequencer.Materialize(code, depth)
			require.NoError(t, err)
			require.NotEmpty(t, full)
			want, err := s.Cost(code)
			require.NoError(t, err)
			for _, f := range full {
				assert.Equal(t, int(want), len(f), "code %s depth %d", code, depth)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Exhaustive cross-check
//----------------------------------------------------------------------------//

// bruteLength tries every candidate combination at every level, with no
// pruning, and returns the shortest physical string length.
func bruteLength(t *testing.T, kp *keypad.Keypad, p paths.Table, seq string, levels int) int {
	t.Helper()
	if levels == 0 {
		return len(seq)
	}
	steps := make([][]string, 0, len(seq))
	prev := keypad.Press
	for _, b := range seq {
		steps = append(steps, p[keypad.ButtonPair{From: prev, To: b}])
		prev = b
	}
	best := math.MaxInt
	var rec func(i int, prefix []byte)
	rec = func(i int, prefix []byte) {
		if i == len(steps) {
			best = min(best, bruteLength(t, keypad.Directional(), paths.Directional(), string(prefix), levels-1))
			return
		}
		for _, c := range steps[i] {
			rec(i+1, append(prefix, c...))
		}
	}
	rec(0, nil)
	return best
}

// TestCost_ExhaustiveRoundTrip compares the table-based cost with an
// unpruned enumeration of the full command string.
func TestCost_ExhaustiveRoundTrip(t *testing.T) {
	cases := []struct {
		code  string
		depth int
	}{
		{"A", 3},
		{"0A", 3},
		{"029A", 1},
		{"029A", 2},
		{"379A", 2},
		{"456A", 2},
	}
	for _, tc := range cases {
		s, err := sequencer.New(tc.depth)
		require.NoError(t, err)
		got, err := s.Cost(tc.code)
		require.NoError(t, err)
		// depth directional pads plus the numeric pad itself
		want := bruteLength(t, keypad.Numeric(), paths.Numeric(), tc.code, tc.depth+1)
		assert.Equal(t, want, int(got), "code %s depth %d", tc.code, tc.depth)
	}
}

//----------------------------------------------------------------------------//
// Sequencer Tests
//----------------------------------------------------------------------------//

// TestSequencer_Depth2 checks the per-code costs of the sample list.
func TestSequencer_Depth2(t *testing.T) {
	s, err := sequencer.New(2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Depth())

	want := map[string]uint64{"029A": 68, "980A": 60, "179A": 68, "456A": 64, "379A": 64}
	for code, n := range want {
		got, err := s.Cost(code)
		require.NoError(t, err)
		assert.Equal(t, n, got, "code %s", code)

		// second call is served from the cache
		again, err := s.Cost(code)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

// TestSequencer_BarePress verifies "A" costs one press at every depth.
func TestSequencer_BarePress(t *testing.T) {
	for depth := 0; depth <= 25; depth += 5 {
		s, err := sequencer.New(depth, sequencer.WithCacheSize(0))
		require.NoError(t, err)
		got, err := s.Cost("A")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got, "depth %d", depth)
	}
}

// TestSequencer_Errors covers construction and input failures.
func TestSequencer_Errors(t *testing.T) {
	_, err := sequencer.New(-1)
	assert.ErrorIs(t, err, cost.ErrNegativeDepth)

	_, err = sequencer.New(2, sequencer.WithCacheSize(-5))
	assert.ErrorIs(t, err, sequencer.ErrOptionViolation)

	_, err = sequencer.New(2, sequencer.WithLadder(nil))
	assert.ErrorIs(t, err, sequencer.ErrOptionViolation)

	shallow, err := cost.NewLadder(keypad.Directional(), paths.Directional(), 1)
	require.NoError(t, err)
	_, err = sequencer.New(2, sequencer.WithLadder(shallow))
	assert.ErrorIs(t, err, cost.ErrLevelOutOfRange)

	s, err := sequencer.New(2)
	require.NoError(t, err)
	_, err = s.Cost("")
	assert.ErrorIs(t, err, codes.ErrMalformedCode)
	_, err = s.Cost("029")
	assert.ErrorIs(t, err, codes.ErrMalformedCode)
	_, err = s.Cost("0x9A")
	assert.ErrorIs(t, err, keypad.ErrInvalidButton)
	_, err = s.Cost("1A2A")
	assert.ErrorIs(t, err, codes.ErrMalformedCode)
}

// TestSequencer_WithLadder verifies an injected ladder gives the same costs
// as the shared one.
func TestSequencer_WithLadder(t *testing.T) {
	l, err := cost.NewLadder(keypad.Directional(), paths.Directional(), 4)
	require.NoError(t, err)
	injected, err := sequencer.New(3, sequencer.WithLadder(l))
	require.NoError(t, err)
	shared, err := sequencer.New(3)
	require.NoError(t, err)

	for _, code := range sampleCodes {
		a, err := injected.Cost(code)
		require.NoError(t, err)
		b, err := shared.Cost(code)
		require.NoError(t, err)
		assert.Equal(t, b, a, "code %s", code)
	}
}
