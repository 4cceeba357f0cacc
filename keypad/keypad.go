package keypad

import (
	"fmt"
	"sync"
)

// NumericLayout is the door keypad, gap at bottom-left.
var NumericLayout = []string{
	"789",
	"456",
	"123",
	" 0A",
}

// DirectionalLayout is the robot control pad, gap at top-left.
var DirectionalLayout = []string{
	" ^A",
	"<v>",
}

// New builds a Keypad from rows of button labels, one rune per cell, with
// GapCell marking the single gap.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrNoGap, ErrMultipleGaps or
// ErrDuplicateButton for malformed layouts.
// Complexity: O(W×H).
func New(rows []string) (*Keypad, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	w := len([]rune(rows[0]))
	kp := &Keypad{
		Width:   w,
		Height:  len(rows),
		buttons: make(map[rune]Location, w*len(rows)),
		cells:   make(map[Location]rune, w*len(rows)),
		order:   make([]rune, 0, w*len(rows)),
	}
	gaps := 0
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, ErrNonRectangular
		}
		for x, b := range runes {
			loc := Location{X: x, Y: y}
			if b == GapCell {
				gaps++
				kp.gap = loc
				continue
			}
			if _, dup := kp.buttons[b]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateButton, b)
			}
			kp.buttons[b] = loc
			kp.cells[loc] = b
			kp.order = append(kp.order, b)
		}
	}
	switch {
	case gaps == 0:
		return nil, ErrNoGap
	case gaps > 1:
		return nil, ErrMultipleGaps
	}

	return kp, nil
}

// LocationOf returns the cell of button b, or ErrInvalidButton.
func (kp *Keypad) LocationOf(b rune) (Location, error) {
	loc, ok := kp.buttons[b]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidButton, b)
	}
	return loc, nil
}

// Gap returns the location of the gap cell.
func (kp *Keypad) Gap() Location {
	return kp.gap
}

// Has reports whether b is a button of the layout.
func (kp *Keypad) Has(b rune) bool {
	_, ok := kp.buttons[b]
	return ok
}

// ButtonAt returns the button at loc; false for the gap or out-of-bounds cells.
func (kp *Keypad) ButtonAt(loc Location) (rune, bool) {
	b, ok := kp.cells[loc]
	return b, ok
}

// InBounds reports whether loc lies within the grid.
func (kp *Keypad) InBounds(loc Location) bool {
	return loc.X >= 0 && loc.X < kp.Width && loc.Y >= 0 && loc.Y < kp.Height
}

// Buttons returns a copy of the button labels in row-major order.
func (kp *Keypad) Buttons() []rune {
	out := make([]rune, len(kp.order))
	copy(out, kp.order)
	return out
}

// Pairs returns every ordered pair of buttons, self pairs included,
// in row-major order of From then To.
// Complexity: O(B²) for B buttons.
func (kp *Keypad) Pairs() []ButtonPair {
	pairs := make([]ButtonPair, 0, len(kp.order)*len(kp.order))
	for _, a := range kp.order {
		for _, b := range kp.order {
			pairs = append(pairs, ButtonPair{From: a, To: b})
		}
	}
	return pairs
}

// mustNew panics on an invalid layout; used only for the built-in layouts.
func mustNew(rows []string) *Keypad {
	kp, err := New(rows)
	if err != nil {
		panic(err)
	}
	return kp
}

var (
	numeric     = sync.OnceValue(func() *Keypad { return mustNew(NumericLayout) })
	directional = sync.OnceValue(func() *Keypad { return mustNew(DirectionalLayout) })
)

// Numeric returns the shared numeric keypad. It is built on first use.
func Numeric() *Keypad { return numeric() }

// Directional returns the shared directional keypad. It is built on first use.
func Directional() *Keypad { return directional() }
