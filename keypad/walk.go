package keypad

import "fmt"

// Step moves one cell from loc in the direction of sym.
// 'A' leaves loc unchanged. Any other symbol returns ErrInvalidMove.
// Step does not check bounds or the gap; Walk does.
func Step(loc Location, sym rune) (Location, error) {
	if sym == Press {
		return loc, nil
	}
	for _, m := range moveOffsets {
		if m.sym == sym {
			return Location{X: loc.X + m.dx, Y: loc.Y + m.dy}, nil
		}
	}
	return loc, fmt.Errorf("%w: %q", ErrInvalidMove, sym)
}

// Walk simulates seq starting at from and returns every cell the arm
// occupies after each symbol, so len(result) == len(seq).
// Returns ErrInvalidMove, ErrOutOfBounds or ErrGapVisited at the first
// offending symbol.
// Complexity: O(len(seq)).
func (kp *Keypad) Walk(from Location, seq string) ([]Location, error) {
	visited := make([]Location, 0, len(seq))
	cur := from
	for i, sym := range seq {
		next, err := Step(cur, sym)
		if err != nil {
			return visited, err
		}
		if !kp.InBounds(next) {
			return visited, fmt.Errorf("%w: symbol %d of %q reaches %s", ErrOutOfBounds, i, seq, next)
		}
		if next == kp.gap {
			return visited, fmt.Errorf("%w: symbol %d of %q reaches %s", ErrGapVisited, i, seq, next)
		}
		cur = next
		visited = append(visited, cur)
	}
	return visited, nil
}
