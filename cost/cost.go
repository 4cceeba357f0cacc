package cost

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/keypads/keypad"
	"github.com/katalvlaran/keypads/paths"
)

// Sentinel errors for cost computations.
var (
	// ErrNegativeDepth indicates a ladder depth below zero.
	ErrNegativeDepth = errors.New("cost: depth must be non-negative")
	// ErrLevelOutOfRange indicates a level the ladder does not hold.
	ErrLevelOutOfRange = errors.New("cost: level out of range")
	// ErrUnknownPair indicates a symbol pair missing from a table.
	ErrUnknownPair = errors.New("cost: unknown button pair")
	// ErrOverflow indicates a cost that does not fit in uint64.
	ErrOverflow = errors.New("cost: uint64 overflow")
)

// Table maps a button pair to the minimum number of physical presses that
// performs the transition at one level.
type Table map[keypad.ButtonPair]uint64

// Base returns the level-0 table of kp: one press per pair.
func Base(kp *keypad.Keypad) Table {
	pairs := kp.Pairs()
	t := make(Table, len(pairs))
	for _, p := range pairs {
		t[p] = 1
	}
	return t
}

// SequenceCost prices seq against t, starting from an implicit 'A'.
// The empty sequence costs 0.
// Returns ErrUnknownPair or ErrOverflow.
// Complexity: O(len(seq)).
func SequenceCost(seq string, t Table) (uint64, error) {
	var total uint64
	prev := keypad.Press
	for _, sym := range seq {
		c, ok := t[keypad.ButtonPair{From: prev, To: sym}]
		if !ok {
			return 0, fmt.Errorf("%w: %c→%c", ErrUnknownPair, prev, sym)
		}
		var carry uint64
		total, carry = bits.Add64(total, c, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: sequence %q", ErrOverflow, seq)
		}
		prev = sym
	}
	return total, nil
}

// Next builds the table one level above prev from the candidate table p.
// Every pair of p must have at least one candidate.
func Next(p paths.Table, prev Table) (Table, error) {
	t := make(Table, len(p))
	for pair, seqs := range p {
		if len(seqs) == 0 {
			return nil, fmt.Errorf("%w: %s has no candidates", ErrUnknownPair, pair)
		}
		best := uint64(math.MaxUint64)
		for _, s := range seqs {
			c, err := SequenceCost(s, prev)
			if err != nil {
				return nil, fmt.Errorf("pair %s: %w", pair, err)
			}
			best = min(best, c)
		}
		t[pair] = best
	}
	return t, nil
}
