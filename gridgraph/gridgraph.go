// Package gridgraph treats the cells of a keypad as a four-connected grid
// graph. Every cell, the gap included, becomes a vertex with ID "x,y";
// callers that must avoid the gap filter it out during traversal.
package gridgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypads/core"
	"github.com/katalvlaran/keypads/keypad"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadVertexID indicates a vertex ID that is not "x,y" inside the grid.
	ErrBadVertexID = errors.New("gridgraph: malformed vertex ID")
	// ErrNotAdjacent indicates two cells that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("gridgraph: cells are not adjacent")
)

// Metadata keys set on every vertex by ToCoreGraph.
const (
	MetaX      = "x"
	MetaY      = "y"
	MetaButton = "button" // keypad.GapCell on the gap
)

// moves lists the move symbols in N, E, S, W order.
var moves = [4]rune{keypad.Up, keypad.Right, keypad.Down, keypad.Left}

// GridGraph wraps a keypad with grid-graph helpers. It is immutable once built.
type GridGraph struct {
	Width, Height int
	kp            *keypad.Keypad
}

// New returns the grid graph of kp.
// Complexity: O(1).
func New(kp *keypad.Keypad) *GridGraph {
	return &GridGraph{Width: kp.Width, Height: kp.Height, kp: kp}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// VertexID formats the vertex identifier of loc.
func (gg *GridGraph) VertexID(loc keypad.Location) string {
	return loc.String()
}

// ButtonID returns the vertex identifier of button b.
// Returns keypad.ErrInvalidButton if b is not on the keypad.
func (gg *GridGraph) ButtonID(b rune) (string, error) {
	loc, err := gg.kp.LocationOf(b)
	if err != nil {
		return "", err
	}
	return gg.VertexID(loc), nil
}

// Location parses a vertex identifier back into a cell.
// Returns ErrBadVertexID for malformed or out-of-bounds IDs.
func (gg *GridGraph) Location(id string) (keypad.Location, error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return keypad.Location{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || !gg.InBounds(x, y) {
		return keypad.Location{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	return keypad.Location{X: x, Y: y}, nil
}

// IsGap reports whether id names the gap cell.
func (gg *GridGraph) IsGap(id string) bool {
	return id == gg.VertexID(gg.kp.Gap())
}

// Move returns the move symbol that takes the arm from cell from to the
// adjacent cell to. Returns ErrBadVertexID or ErrNotAdjacent.
func (gg *GridGraph) Move(from, to string) (rune, error) {
	a, err := gg.Location(from)
	if err != nil {
		return 0, err
	}
	b, err := gg.Location(to)
	if err != nil {
		return 0, err
	}
	for _, sym := range moves {
		if next, _ := keypad.Step(a, sym); next == b {
			return sym, nil
		}
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, from, to)
}

// ToCoreGraph converts the grid into an unweighted, undirected *core.Graph.
// Each cell at (x,y) becomes a vertex "x,y" with metadata {x, y, button};
// an edge joins every pair of orthogonal neighbours.
// Complexity: O(W×H) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			loc := keypad.Location{X: x, Y: y}
			id := gg.VertexID(loc)
			_ = g.AddVertex(id)
			b, ok := gg.kp.ButtonAt(loc)
			if !ok {
				b = keypad.GapCell
			}
			_ = g.SetMetadata(id, MetaX, x)
			_ = g.SetMetadata(id, MetaY, y)
			_ = g.SetMetadata(id, MetaButton, b)
		}
	}
	// East and south neighbours only; the graph mirrors each edge.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.VertexID(keypad.Location{X: x, Y: y})
			if gg.InBounds(x+1, y) {
				_, _ = g.AddEdge(u, gg.VertexID(keypad.Location{X: x + 1, Y: y}), 0)
			}
			if gg.InBounds(x, y+1) {
				_, _ = g.AddEdge(u, gg.VertexID(keypad.Location{X: x, Y: y + 1}), 0)
			}
		}
	}

	return g
}
