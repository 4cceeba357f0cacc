package sequencer

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/keypads/cost"
	"github.com/katalvlaran/keypads/keypad"
	"github.com/katalvlaran/keypads/paths"
)

// Expand returns every minimal-length string that types any of targets on
// kp, sorted and without duplicates. Only the strings of the shortest
// length across all targets are kept.
func Expand(kp *keypad.Keypad, p paths.Table, targets []string) ([]string, error) {
	best := math.MaxInt
	seen := make(map[string]struct{})
	var out []string
	for _, target := range targets {
		seqs, err := Sequences(kp, p, target)
		if err != nil {
			return nil, err
		}
		if len(seqs) == 0 || len(seqs[0]) > best {
			continue
		}
		if len(seqs[0]) < best {
			best = len(seqs[0])
			out = out[:0]
			clear(seen)
		}
		for _, s := range seqs {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Materialize returns the literal command strings a human types on the
// outermost of depth directional keypads to enter code. Depth 0 yields the
// strings typed directly onto the pad driving the numeric keypad.
// The output grows geometrically; keep depth small.
func Materialize(code string, depth int) ([]string, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", cost.ErrNegativeDepth, depth)
	}
	seqs, err := Sequences(keypad.Numeric(), paths.Numeric(), code)
	if err != nil {
		return nil, err
	}
	for k := 0; k < depth; k++ {
		if seqs, err = Expand(keypad.Directional(), paths.Directional(), seqs); err != nil {
			return nil, fmt.Errorf("level %d: %w", k+1, err)
		}
	}
	return seqs, nil
}
