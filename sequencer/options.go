package sequencer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypads/cost"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sequencer: invalid option supplied")

	// ErrMissingPath indicates a path table with no candidates for a
	// button pair that the target needs.
	ErrMissingPath = errors.New("sequencer: no path for button pair")
)

// DefaultCacheSize is the number of per-code results a Sequencer keeps.
const DefaultCacheSize = 256

// Option configures a Sequencer via functional arguments.
// Invalid options are recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a Sequencer.
type Options struct {
	// CacheSize bounds the per-code result cache; 0 disables caching.
	CacheSize int

	// Ladder, if set, supplies the directional cost tables instead of the
	// shared ladder from cost.Directional.
	Ladder *cost.Ladder

	err error
}

// DefaultOptions returns Options with DefaultCacheSize and the shared ladder.
func DefaultOptions() Options {
	return Options{CacheSize: DefaultCacheSize}
}

// WithCacheSize sets the result cache size.
//
//	n > 0: keep the n most recently used results
//	n == 0: no cache
//	n < 0: invalid option → ErrOptionViolation
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CacheSize = n
	}
}

// WithLadder prices codes against l instead of the shared directional ladder.
// l must be at least as deep as the Sequencer.
func WithLadder(l *cost.Ladder) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil ladder", ErrOptionViolation)
			return
		}
		o.Ladder = l
	}
}
