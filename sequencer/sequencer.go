package sequencer

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/keypads/codes"
	"github.com/katalvlaran/keypads/cost"
	"github.com/katalvlaran/keypads/keypad"
	"github.com/katalvlaran/keypads/paths"
)

// Sequencer prices numeric codes at a fixed chain depth.
// It is safe for concurrent use.
type Sequencer struct {
	kp    *keypad.Keypad
	paths paths.Table
	depth int
	table cost.Table
	cache *lru.Cache[string, uint64] // nil when caching is disabled
}

// New returns a Sequencer for a numeric keypad behind depth directional
// keypads. Returns cost.ErrNegativeDepth, cost.ErrLevelOutOfRange when a
// supplied ladder is too shallow, or ErrOptionViolation.
func New(depth int, opts ...Option) (*Sequencer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", cost.ErrNegativeDepth, depth)
	}

	ladder := o.Ladder
	if ladder == nil {
		var err error
		if ladder, err = cost.Directional(depth); err != nil {
			return nil, err
		}
	}
	table, err := ladder.Level(depth)
	if err != nil {
		return nil, err
	}

	s := &Sequencer{
		kp:    keypad.Numeric(),
		paths: paths.Numeric(),
		depth: depth,
		table: table,
	}
	if o.CacheSize > 0 {
		if s.cache, err = lru.New[string, uint64](o.CacheSize); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Depth returns the number of directional keypads between the human and
// the numeric keypad.
func (s *Sequencer) Depth() int {
	return s.depth
}

// Cost returns the minimum number of physical presses that types code.
// Returns codes.ErrMalformedCode, keypad.ErrInvalidButton or cost.ErrOverflow.
func (s *Sequencer) Cost(code string) (uint64, error) {
	if err := codes.Validate(code); err != nil {
		return 0, err
	}
	if s.cache != nil {
		if c, ok := s.cache.Get(code); ok {
			return c, nil
		}
	}

	seqs, err := Sequences(s.kp, s.paths, code)
	if err != nil {
		return 0, err
	}
	best := uint64(math.MaxUint64)
	for _, seq := range seqs {
		c, err := cost.SequenceCost(seq, s.table)
		if err != nil {
			return 0, fmt.Errorf("code %q: %w", code, err)
		}
		best = min(best, c)
	}

	if s.cache != nil {
		s.cache.Add(code, best)
	}
	return best, nil
}

// search is the state of one incremental walk over per-transition candidates.
type search struct {
	steps [][]string
	best  int
	found []string
}

// Sequences returns every minimal-length string that types target on kp,
// starting from 'A'. Returns keypad.ErrInvalidButton for a rune not on kp
// and ErrMissingPath when p lacks a pair the target needs.
// The empty target yields [""].
func Sequences(kp *keypad.Keypad, p paths.Table, target string) ([]string, error) {
	steps := make([][]string, 0, len(target))
	cur := keypad.Press
	for _, b := range target {
		if !kp.Has(b) {
			return nil, fmt.Errorf("%w: %q in %q", keypad.ErrInvalidButton, b, target)
		}
		cands, ok := p[keypad.ButtonPair{From: cur, To: b}]
		if !ok || len(cands) == 0 {
			pair := keypad.ButtonPair{From: cur, To: b}
			return nil, fmt.Errorf("%w: %s in %q", ErrMissingPath, pair, target)
		}
		steps = append(steps, cands)
		cur = b
	}

	s := &search{steps: steps, best: math.MaxInt}
	s.extend(0, make([]byte, 0, 4*len(target)))

	return s.found, nil
}

// extend appends each candidate of step i to prefix, abandoning any
// prefix longer than the best complete string seen so far.
func (s *search) extend(i int, prefix []byte) {
	if len(prefix) > s.best {
		return
	}
	if i == len(s.steps) {
		if len(prefix) < s.best {
			s.best = len(prefix)
			s.found = s.found[:0]
		}
		s.found = append(s.found, string(prefix))
		return
	}
	for _, c := range s.steps[i] {
		s.extend(i+1, append(prefix, c...))
	}
}
