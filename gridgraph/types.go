package gridgraph

import "fmt"

// CellState is the occupancy of a single cell. The zero value is Unknown.
type CellState uint8

const (
	// Unknown cells have never been observed.
	Unknown CellState = iota
	// Free cells were observed and can be entered.
	Free
	// Occupied cells hold an obstacle. Once set, the state never changes.
	Occupied
	// Unreachable cells were still Unknown when exploration finished.
	Unreachable
)

// Rune returns the single-character map glyph of s.
func (s CellState) Rune() rune {
	switch s {
	case Free:
		return 'O'
	case Occupied:
		return 'X'
	case Unreachable:
		return '#'
	default:
		return '?'
	}
}

// String implements fmt.Stringer.
func (s CellState) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Free:
		return "free"
	case Occupied:
		return "occupied"
	case Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is a grid coordinate. Row follows the world x axis and Col the world z axis.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Vertex returns the row-major vertex id of c on a map of the given size.
// The caller is responsible for bounds; see Layout.Vertex for a checked variant.
func (c Cell) Vertex(size int) int {
	return c.Row*size + c.Col
}

// CellOf decodes a row-major vertex id back into its cell.
func CellOf(v, size int) Cell {
	return Cell{Row: v / size, Col: v % size}
}

// Conn8 holds the eight neighbor offsets as (Δrow, Δcol) in the order
// N, NE, E, SE, S, SW, W, NW. Every traversal in this module uses this order.
var Conn8 = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
