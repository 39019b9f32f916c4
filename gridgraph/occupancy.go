package gridgraph

import (
	"fmt"
	"strings"
)

// Grid is the occupancy map of a square world of Size×Size cells.
// It is not safe for concurrent use; exploration drives it from a single goroutine.
type Grid struct {
	size  int
	cells []CellState
}

// NewGrid returns a size×size grid with every cell Unknown.
// Returns ErrEmptyGrid if size is not positive.
// Complexity: O(size²) time and memory.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{size: size, cells: make([]CellState, size*size)}, nil
}

// Size returns the number of rows (and columns).
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies within [0,Size)².
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Mark sets the state of c to s unless c is already Occupied, in which
// case the call is a no-op. Returns ErrOutOfBounds if c is outside the grid.
// Complexity: O(1).
func (g *Grid) Mark(c Cell, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: mark %v on %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	i := c.Vertex(g.size)
	if g.cells[i] == Occupied {
		return nil
	}
	g.cells[i] = s
	return nil
}

// Classify returns the current state of c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Classify(c Cell) (CellState, error) {
	if !g.InBounds(c) {
		return Unknown, fmt.Errorf("%w: classify %v on %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	return g.cells[c.Vertex(g.size)], nil
}

// state is Classify without the bounds check.
func (g *Grid) state(c Cell) CellState {
	return g.cells[c.Vertex(g.size)]
}

// Neighbors returns the in-bounds 8-neighbors of c in Conn8 order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Conn8))
	for _, d := range Conn8 {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// HasAdjacentUnknown reports whether any in-bounds 8-neighbor of c is Unknown.
// Cells outside the grid have no neighbors and report false.
// Complexity: O(1).
func (g *Grid) HasAdjacentUnknown(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	for _, d := range Conn8 {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) && g.state(n) == Unknown {
			return true
		}
	}
	return false
}

// IsFrontier reports whether c is Free and borders at least one Unknown cell.
func (g *Grid) IsFrontier(c Cell) bool {
	return g.InBounds(c) && g.state(c) == Free && g.HasAdjacentUnknown(c)
}

// MarkUnreachable reclassifies every Unknown cell as Unreachable and returns
// how many cells changed. A second call returns 0.
// Complexity: O(size²).
func (g *Grid) MarkUnreachable() int {
	n := 0
	for i, s := range g.cells {
		if s == Unknown {
			g.cells[i] = Unreachable
			n++
		}
	}
	return n
}

// Count returns the number of cells currently in state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}
	return n
}

// String renders the map one row per line, each cell prefixed by a space:
// '?' unknown, 'O' free, 'X' occupied, '#' unreachable.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (2*g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			sb.WriteByte(' ')
			sb.WriteRune(g.cells[r*g.size+c].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
