package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Layout ties the grid to world coordinates. World positions are orb.Points
// whose X is the world x axis and whose Y carries the world z axis.
type Layout struct {
	MapSize  int     // cells per side
	CellSize float64 // world units per cell side
}

// NewLayout validates and returns a Layout.
func NewLayout(mapSize int, cellSize float64) (Layout, error) {
	if mapSize <= 0 || cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return Layout{}, fmt.Errorf("%w: mapSize=%d cellSize=%g", ErrInvalidLayout, mapSize, cellSize)
	}
	return Layout{MapSize: mapSize, CellSize: cellSize}, nil
}

// Order returns the number of cells, which is also the vertex count.
func (l Layout) Order() int {
	return l.MapSize * l.MapSize
}

// InBounds reports whether c lies on the map.
func (l Layout) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < l.MapSize && c.Col >= 0 && c.Col < l.MapSize
}

// PositionToCell returns floor(p / CellSize) per axis. The result may lie
// outside the map; check with InBounds.
func (l Layout) PositionToCell(p orb.Point) Cell {
	return Cell{
		Row: int(math.Floor(p.X() / l.CellSize)),
		Col: int(math.Floor(p.Y() / l.CellSize)),
	}
}

// CellToPosition returns the world position of the center of c.
func (l Layout) CellToPosition(c Cell) orb.Point {
	half := l.CellSize / 2
	return orb.Point{
		float64(c.Row)*l.CellSize + half,
		float64(c.Col)*l.CellSize + half,
	}
}

// Vertex returns the vertex id of c, or ErrOutOfBounds.
func (l Layout) Vertex(c Cell) (int, error) {
	if !l.InBounds(c) {
		return -1, fmt.Errorf("%w: %v on %dx%d map", ErrOutOfBounds, c, l.MapSize, l.MapSize)
	}
	return c.Vertex(l.MapSize), nil
}

// Cell decodes vertex id v, or returns ErrOutOfBounds.
func (l Layout) Cell(v int) (Cell, error) {
	if v < 0 || v >= l.Order() {
		return Cell{}, fmt.Errorf("%w: vertex %d on %dx%d map", ErrOutOfBounds, v, l.MapSize, l.MapSize)
	}
	return CellOf(v, l.MapSize), nil
}

// VertexNumbering renders the vertex id of every cell, one row per line.
func (l Layout) VertexNumbering() string {
	var sb strings.Builder
	for r := 0; r < l.MapSize; r++ {
		for c := 0; c < l.MapSize; c++ {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(r*l.MapSize + c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
