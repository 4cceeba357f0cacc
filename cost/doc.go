// Package cost builds the per-level transition cost tables of a chain of
// directional keypads.
//
// Level 0 is the human: every button pair costs exactly one press.
// Level k prices a pair as the cheapest of its candidate sequences, each
// sequence scored against level k−1 with an implicit leading 'A', because
// the controlling arm always rests on 'A' between two presses:
//
//	cost(p, 0) = 1
//	cost(p, k) = min over s in paths(p) of Σ cost((s[i−1], s[i]), k−1), s[−1] = 'A'
//
// The full command string, whose length grows geometrically with depth,
// is never materialized.
//
// Complexity:
//
//   - Next:      O(B²·L) for B buttons and candidate length L.
//   - NewLadder: O(N·B²·L) for depth N.
//
// Errors:
//
//   - ErrNegativeDepth:   depth below zero.
//   - ErrLevelOutOfRange: a level beyond the ladder.
//   - ErrUnknownPair:     a symbol pair missing from the table.
//   - ErrOverflow:        a cost exceeds uint64.
package cost
