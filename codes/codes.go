// Package codes reads and validates door codes: runs of numeric keypad
// buttons terminated by 'A', such as "029A".
package codes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypads/keypad"
)

// ErrMalformedCode indicates an empty code, one without the trailing 'A',
// or one with a non-digit before it.
var ErrMalformedCode = errors.New("codes: malformed code")

// Validate checks that code is non-empty, uses only numeric keypad buttons
// and is a run of digits closed by a single 'A'.
// Returns keypad.ErrInvalidButton for a rune that is not on the keypad and
// ErrMalformedCode otherwise.
func Validate(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty", ErrMalformedCode)
	}
	if !strings.HasSuffix(code, string(keypad.Press)) {
		return fmt.Errorf("%w: %q does not end with %q", ErrMalformedCode, code, keypad.Press)
	}
	kp := keypad.Numeric()
	for _, b := range code {
		if !kp.Has(b) {
			return fmt.Errorf("%w: %q in code %q", keypad.ErrInvalidButton, b, code)
		}
	}
	for i, b := range code[:len(code)-1] {
		if b < '0' || b > '9' {
			return fmt.Errorf("%w: %q at offset %d of %q is not a digit", ErrMalformedCode, b, i, code)
		}
	}
	return nil
}

// NumericValue returns the number formed by the digits before the trailing
// 'A', ignoring leading zeros: "029A" → 29, "A" → 0.
func NumericValue(code string) (uint64, error) {
	if err := Validate(code); err != nil {
		return 0, err
	}
	digits := strings.TrimSuffix(code, string(keypad.Press))
	if digits == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// more digits than a uint64 holds
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformedCode, code, err)
	}
	return v, nil
}

// Parse reads one code per line from r. Surrounding whitespace is
// trimmed and trailing blank lines are ignored; a blank line followed by
// more codes, or any invalid code, fails with its 1-based line number.
func Parse(r io.Reader) ([]string, error) {
	var (
		out   []string
		blank int // line number of the first pending blank line
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		code := strings.TrimSpace(sc.Text())
		if code == "" {
			if blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return nil, fmt.Errorf("line %d: %w: empty", blank, ErrMalformedCode)
		}
		if err := Validate(code); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, code)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
