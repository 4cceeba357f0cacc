package paths

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/keypads/bfs"
	"github.com/katalvlaran/keypads/gridgraph"
	"github.com/katalvlaran/keypads/keypad"
)

// ShortestWalks returns every shortest walk from button from to button to
// on kp, each spelled as move symbols followed by 'A', sorted
// lexicographically. Unlike Candidates it includes walks with several
// turns, e.g. "^<^A" next to "^^<A" and "<^^A".
// Returns keypad.ErrInvalidButton if either rune is not on kp.
// Complexity: O(W×H) for the search plus the number of walks returned.
func ShortestWalks(kp *keypad.Keypad, from, to rune) ([]string, error) {
	gg := gridgraph.New(kp)
	start, err := gg.ButtonID(from)
	if err != nil {
		return nil, err
	}
	dest, err := gg.ButtonID(to)
	if err != nil {
		return nil, err
	}

	res, err := bfs.BFS(gg.ToCoreGraph(), start, bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return !gg.IsGap(nbr)
	}))
	if err != nil {
		return nil, fmt.Errorf("paths: searching %c→%c: %w", from, to, err)
	}
	routes, err := res.PathsTo(dest)
	if err != nil {
		return nil, fmt.Errorf("paths: searching %c→%c: %w", from, to, err)
	}

	out := make([]string, 0, len(routes))
	for _, route := range routes {
		var sb strings.Builder
		for i := 1; i < len(route); i++ {
			sym, err := gg.Move(route[i-1], route[i])
			if err != nil {
				return nil, err
			}
			sb.WriteRune(sym)
		}
		sb.WriteRune(keypad.Press)
		out = append(out, sb.String())
	}
	sort.Strings(out)

	return out, nil
}
