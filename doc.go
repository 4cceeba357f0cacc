// Package keypads computes how many physical button presses it takes to
// enter a door code when the numeric keypad is operated by a robot, that
// robot is steered from a directional keypad by another robot, and so on,
// with a human at the outermost directional keypad.
//
// The command string the human types grows geometrically with the number
// of stacked keypads, so it is never built. Instead the cost of every
// button-to-button transition is tabulated level by level, each level
// priced against the one below it.
//
// Packages, leaves first:
//
//	keypad/     — layouts, locations, the gap cell and grid walks
//	core/       — thread-safe graph of string vertices
//	gridgraph/  — keypad cells as "x,y" graph vertices
//	bfs/        — breadth-first search keeping every shortest predecessor
//	paths/      — minimal move sequences between buttons (+ BFS cross-check)
//	cost/       — per-level transition cost tables (the ladder)
//	sequencer/  — minimal cost of a code at a chain depth, literal expansion
//	codes/      — parsing, validation and numeric value of codes
//	complexity/ — cost × numeric value, summed in parallel
//	config/     — .env, flag and environment settings
//	ctxlog/     — slog logger carried in context
//	cmd/keypads — command-line driver
//
// Quick example:
//
//	s, _ := sequencer.New(25)
//	total, _ := complexity.Sum(ctx, s, []string{"029A", "980A"})
package keypads
