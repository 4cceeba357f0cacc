// Package paths enumerates the minimal move sequences between buttons of a
// keypad.
//
// A robot arm moves one cell per symbol ('<', '>', '^', 'v') and presses
// with 'A'. Between two buttons the shortest walk has |Δx|+|Δy| moves; the
// package keeps at most two of them: all horizontal moves first, or all
// vertical moves first. A candidate whose walk crosses the gap is dropped,
// and when both orderings spell the same string it is kept once.
//
// Restricting to these single-turn walks never loses the optimum on the
// numeric and directional layouts: every extra turn costs an extra
// transition on the controlling pad. ShortestWalks enumerates every
// shortest walk by running bfs over the keypad's grid graph with the gap
// filtered out, so that claim can be checked.
//
// Complexity:
//
//   - Candidates:    O(|Δx|+|Δy|).
//   - Build:         O(B²·(W+H)) for B buttons.
//   - ShortestWalks: O(W×H) for the search plus the size of the output.
package paths
