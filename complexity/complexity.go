// Package complexity scores door codes: a code's complexity is its minimum
// press count times its numeric value, and the answer for a list of codes
// is the sum of their complexities.
//
// Sum evaluates codes in parallel; each worker only reads the shared,
// immutable cost tables, and the final reduction is a plain addition.
package complexity

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keypads/codes"
	"github.com/katalvlaran/keypads/ctxlog"
)

// Sentinel errors for complexity computations.
var (
	// ErrOverflow indicates a complexity or sum that does not fit in uint64.
	ErrOverflow = errors.New("complexity: uint64 overflow")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("complexity: invalid option supplied")
)

// Coster prices a single code. *sequencer.Sequencer implements it.
type Coster interface {
	Cost(code string) (uint64, error)
}

// Option configures Sum.
type Option func(*Options)

// Options holds the parameters of Sum.
type Options struct {
	// Workers bounds the number of codes evaluated at once.
	Workers int

	err error
}

// DefaultOptions returns Options with one worker per GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers limits concurrency to n workers; n == 0 keeps the default
// and n < 0 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// Complexity returns c.Cost(code) multiplied by the numeric value of code.
func Complexity(c Coster, code string) (uint64, error) {
	value, err := codes.NumericValue(code)
	if err != nil {
		return 0, err
	}
	presses, err := c.Cost(code)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(presses, value)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d × %d for %q", ErrOverflow, presses, value, code)
	}
	return lo, nil
}

// Sum returns the total complexity of list. Codes are evaluated
// concurrently; the first failure cancels the remaining work and is returned.
func Sum(ctx context.Context, c Coster, list []string, opts ...Option) (uint64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	log := ctxlog.FromContext(ctx)
	start := time.Now()

	results := make([]uint64, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, code := range list {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := Complexity(c, code)
			if err != nil {
				return fmt.Errorf("code %q: %w", code, err)
			}
			results[i] = v
			log.Debug("complexity", "code", code, "value", v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for i, v := range results {
		var carry uint64
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: sum at code %q", ErrOverflow, list[i])
		}
	}
	log.Info("sum of complexities", "codes", len(list), "total", total, "elapsed", time.Since(start))

	return total, nil
}
