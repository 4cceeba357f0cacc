package paths

import (
	"strings"
	"sync"

	"github.com/katalvlaran/keypads/keypad"
)

// Table maps every ordered button pair of a keypad to its candidate sequences.
type Table map[keypad.ButtonPair][]string

// Candidates returns the one or two minimal sequences that move the arm
// from button from to button to on kp and press it. The horizontal-first
// ordering comes first. from == to yields ["A"].
// Returns keypad.ErrInvalidButton if either rune is not on kp.
func Candidates(kp *keypad.Keypad, from, to rune) ([]string, error) {
	a, err := kp.LocationOf(from)
	if err != nil {
		return nil, err
	}
	b, err := kp.LocationOf(to)
	if err != nil {
		return nil, err
	}
	return between(kp, a, b), nil
}

// between builds the candidates for two known button cells.
func between(kp *keypad.Keypad, from, to keypad.Location) []string {
	horiz := run(keypad.Right, keypad.Left, to.X-from.X)
	vert := run(keypad.Down, keypad.Up, to.Y-from.Y)

	horizFirst := horiz + vert + string(keypad.Press)
	vertFirst := vert + horiz + string(keypad.Press)

	seqs := make([]string, 0, 2)
	if _, err := kp.Walk(from, horizFirst); err == nil {
		seqs = append(seqs, horizFirst)
	}
	if vertFirst != horizFirst {
		if _, err := kp.Walk(from, vertFirst); err == nil {
			seqs = append(seqs, vertFirst)
		}
	}
	return seqs
}

// run repeats pos for d > 0 and neg for d < 0.
func run(pos, neg rune, d int) string {
	switch {
	case d > 0:
		return strings.Repeat(string(pos), d)
	case d < 0:
		return strings.Repeat(string(neg), -d)
	default:
		return ""
	}
}

// Build returns the candidate table for every ordered pair of kp.
// Complexity: O(B²·(W+H)).
func Build(kp *keypad.Keypad) Table {
	t := make(Table, len(kp.Buttons())*len(kp.Buttons()))
	for _, p := range kp.Pairs() {
		// Pairs only yields buttons of kp, so the lookups cannot fail.
		a, _ := kp.LocationOf(p.From)
		b, _ := kp.LocationOf(p.To)
		t[p] = between(kp, a, b)
	}
	return t
}

var (
	numeric     = sync.OnceValue(func() Table { return Build(keypad.Numeric()) })
	directional = sync.OnceValue(func() Table { return Build(keypad.Directional()) })
)

// Numeric returns the shared candidate table of the numeric keypad.
// Callers must not modify it.
func Numeric() Table { return numeric() }

// Directional returns the shared candidate table of the directional keypad.
// Callers must not modify it.
func Directional() Table { return directional() }
