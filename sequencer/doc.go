// Package sequencer turns a door code into the minimum number of physical
// presses needed when the numeric keypad is driven through a chain of
// directional keypads.
//
// Sequences enumerates the minimal-length strings that type a code on a
// keypad, combining per-transition candidates with a depth-first search
// that drops any partial string already longer than the best complete one.
// A Sequencer prices those strings against the directional cost table of
// its depth and keeps recent results in an LRU cache.
//
// Expand and Materialize build the literal command strings level by level.
// Their output grows geometrically with depth, so they serve only small
// depths and cross-checks.
//
// Example usage:
//
//	s, err := sequencer.New(25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := s.Cost("029A")
package sequencer
