package keypad

import "errors"

var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same length")
	// ErrNoGap indicates the layout has no gap cell.
	ErrNoGap = errors.New("keypad: layout has no gap cell")
	// ErrMultipleGaps indicates more than one gap cell.
	ErrMultipleGaps = errors.New("keypad: layout has more than one gap cell")
	// ErrDuplicateButton indicates a button label used twice.
	ErrDuplicateButton = errors.New("keypad: duplicate button")
	// ErrInvalidButton indicates a rune that is not part of the layout.
	ErrInvalidButton = errors.New("keypad: invalid button")
	// ErrInvalidMove indicates a sequence symbol other than '<', '>', '^', 'v' or 'A'.
	ErrInvalidMove = errors.New("keypad: invalid move symbol")
	// ErrGapVisited indicates a walk stepped onto the gap cell.
	ErrGapVisited = errors.New("keypad: walk visits the gap")
	// ErrOutOfBounds indicates a walk left the grid.
	ErrOutOfBounds = errors.New("keypad: walk leaves the grid")
)
