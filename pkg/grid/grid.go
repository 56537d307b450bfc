// pkg/grid/grid.go
package grid

// Position is a cell on the board, identified by row and column.
// It has value equality and is usable as a map key.
type Position struct {
	Row, Col int
}

// Board dimensions.
const (
	Rows = 7
	Cols = 5
)

// Path is the fixed ordered route enemies walk, from entry to exit.
// An enemy whose path index reaches len(Path) has escaped.
// The route runs down the second column, jogs once at the bend and
// leaves through the bottom-right corner.
var Path = []Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 1},
	{Row: 2, Col: 1},
	{Row: 3, Col: 1},
	{Row: 3, Col: 2},
	{Row: 4, Col: 2},
	{Row: 4, Col: 1},
	{Row: 5, Col: 1},
	{Row: 6, Col: 1},
	{Row: 6, Col: 2},
	{Row: 6, Col: 3},
	{Row: 6, Col: 4},
}

var pathSet = func() map[Position]bool {
	set := make(map[Position]bool, len(Path))
	for _, p := range Path {
		set[p] = true
	}
	return set
}()

// Contains reports whether the position lies on the board.
func Contains(p Position) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// IsPath reports whether the position is one of the path cells.
func IsPath(p Position) bool {
	return pathSet[p]
}

// PathAt returns the path cell at the given index, or false when the
// index falls outside the route (not yet entered, or escaped).
func PathAt(index int) (Position, bool) {
	if index < 0 || index >= len(Path) {
		return Position{}, false
	}
	return Path[index], true
}

// Manhattan returns the Manhattan distance between two positions.
// This is the range metric for tower targeting.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
