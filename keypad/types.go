package keypad

import "fmt"

// Press is the confirm symbol that ends every sequence and the rest
// position of every keypad.
const Press = 'A'

// GapCell marks the gap in a layout row.
const GapCell = ' '

// Move symbols understood by Step and Walk.
const (
	Left  = '<'
	Right = '>'
	Up    = '^'
	Down  = 'v'
)

// Location is a (column, row) coordinate on a keypad grid.
// Row 0 is the top row.
type Location struct {
	X, Y int
}

// String renders the location as "x,y".
func (l Location) String() string {
	return fmt.Sprintf("%d,%d", l.X, l.Y)
}

// ButtonPair is an ordered (from, to) transition between two buttons.
type ButtonPair struct {
	From, To rune
}

// String renders the pair as "from→to".
func (p ButtonPair) String() string {
	return fmt.Sprintf("%c→%c", p.From, p.To)
}

// moveOffsets lists the four orthogonal moves with their symbols, in the
// N, E, S, W order.
var moveOffsets = [4]struct {
	sym    rune
	dx, dy int
}{
	{Up, 0, -1},
	{Right, 1, 0},
	{Down, 0, 1},
	{Left, -1, 0},
}

// Keypad is an immutable button layout. Width and Height give the grid
// dimensions; buttons maps labels to cells and gap is the one empty cell.
type Keypad struct {
	Width, Height int
	buttons       map[rune]Location
	cells         map[Location]rune
	order         []rune // row-major
	gap           Location
}
