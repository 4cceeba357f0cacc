// Package keypad describes fixed keypad layouts: a rectangular grid of
// labelled buttons with exactly one gap cell that holds no button.
//
// What:
//
//   - Keypad maps every button rune to its Location (column X, row Y).
//   - The gap cell is kept separately; a robot arm must never hover over it.
//   - Walk simulates a move sequence ('<', '>', '^', 'v', 'A') on the grid.
//   - Numeric and Directional return the two process-wide layouts.
//
// Layouts:
//
//	Numeric          Directional
//	+---+---+---+    +---+---+---+
//	| 7 | 8 | 9 |    |   | ^ | A |
//	+---+---+---+    +---+---+---+
//	| 4 | 5 | 6 |    | < | v | > |
//	+---+---+---+    +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - LocationOf: O(1).
//   - Walk:       O(len(seq)).
//
// Errors:
//
//   - ErrEmptyLayout:     no rows or an empty first row.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrNoGap:           layout without a gap cell.
//   - ErrMultipleGaps:    more than one gap cell.
//   - ErrDuplicateButton: a button label appears twice.
//   - ErrInvalidButton:   a rune that is not a button of the layout.
//   - ErrInvalidMove:     a sequence symbol that is not a move or 'A'.
//   - ErrGapVisited:      a walk stepped onto the gap.
//   - ErrOutOfBounds:     a walk left the grid.
package keypad
