package cost

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/keypads/keypad"
	"github.com/katalvlaran/keypads/paths"
)

// Ladder holds the cost tables of levels 0..Depth for one keypad.
// It is immutable and safe for concurrent reads.
type Ladder struct {
	tables []Table
}

// NewLadder builds levels 0..depth for kp from its candidate table p.
// Returns ErrNegativeDepth, or ErrOverflow when a level no longer fits in uint64.
// Complexity: O(depth·B²·L).
func NewLadder(kp *keypad.Keypad, p paths.Table, depth int) (*Ladder, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	l := &Ladder{tables: []Table{Base(kp)}}
	return l.extend(p, depth)
}

// extend returns a ladder of the given depth that shares l's tables.
func (l *Ladder) extend(p paths.Table, depth int) (*Ladder, error) {
	tables := make([]Table, len(l.tables), depth+1)
	copy(tables, l.tables)
	for k := len(tables); k <= depth; k++ {
		next, err := Next(p, tables[k-1])
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", k, err)
		}
		tables = append(tables, next)
	}
	return &Ladder{tables: tables}, nil
}

// prefix returns the ladder truncated to depth; depth must not exceed l.Depth().
func (l *Ladder) prefix(depth int) *Ladder {
	return &Ladder{tables: l.tables[: depth+1 : depth+1]}
}

// Depth returns the highest level held by the ladder.
func (l *Ladder) Depth() int {
	return len(l.tables) - 1
}

// Level returns the table of level k. Callers must not modify it.
func (l *Ladder) Level(k int) (Table, error) {
	if k < 0 || k >= len(l.tables) {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrLevelOutOfRange, k, l.Depth())
	}
	return l.tables[k], nil
}

// Top returns the table of the deepest level.
func (l *Ladder) Top() Table {
	return l.tables[len(l.tables)-1]
}

// Cost returns the level-k cost of pair.
func (l *Ladder) Cost(pair keypad.ButtonPair, k int) (uint64, error) {
	t, err := l.Level(k)
	if err != nil {
		return 0, err
	}
	c, ok := t[pair]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPair, pair)
	}
	return c, nil
}

// directional memoizes the deepest directional ladder built so far.
var directional struct {
	mu     sync.Mutex
	ladder *Ladder
}

// Directional returns the directional keypad ladder of the given depth.
// The process keeps the deepest ladder requested so far; shallower
// requests are served as prefixes of it and deeper ones extend it.
func Directional(depth int) (*Ladder, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	directional.mu.Lock()
	defer directional.mu.Unlock()

	if directional.ladder == nil {
		l, err := NewLadder(keypad.Directional(), paths.Directional(), depth)
		if err != nil {
			return nil, err
		}
		directional.ladder = l
		return l, nil
	}
	if depth <= directional.ladder.Depth() {
		return directional.ladder.prefix(depth), nil
	}
	l, err := directional.ladder.extend(paths.Directional(), depth)
	if err != nil {
		return nil, err
	}
	directional.ladder = l

	return l, nil
}
