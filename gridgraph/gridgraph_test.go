package gridgraph_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/frontier/gridgraph"
)

//----------------------------------------------------------------------------//
// Grid
//----------------------------------------------------------------------------//

type GridSuite struct {
	suite.Suite
	g *gridgraph.Grid
}

func (s *GridSuite) SetupTest() {
	g, err := gridgraph.NewGrid(4)
	s.Require().NoError(err)
	s.g = g
}

func (s *GridSuite) TestNewGridErrors() {
	for _, size := range []int{0, -3} {
		_, err := gridgraph.NewGrid(size)
		s.Require().ErrorIs(err, gridgraph.ErrEmptyGrid)
	}
}

func (s *GridSuite) TestStartsUnknown() {
	require := require.New(s.T())
	require.Equal(16, s.g.Count(gridgraph.Unknown))
	st, err := s.g.Classify(gridgraph.Cell{Row: 3, Col: 3})
	require.NoError(err)
	require.Equal(gridgraph.Unknown, st)
}

func (s *GridSuite) TestOutOfBounds() {
	require := require.New(s.T())
	for _, c := range []gridgraph.Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		require.ErrorIs(s.g.Mark(c, gridgraph.Free), gridgraph.ErrOutOfBounds, "mark %v", c)
		_, err := s.g.Classify(c)
		require.ErrorIs(err, gridgraph.ErrOutOfBounds, "classify %v", c)
		require.False(s.g.HasAdjacentUnknown(c))
	}
}

// TestOccupiedIsSticky marks a cell Occupied and then tries every other state.
func (s *GridSuite) TestOccupiedIsSticky() {
	require := require.New(s.T())
	c := gridgraph.Cell{Row: 1, Col: 2}
	require.NoError(s.g.Mark(c, gridgraph.Occupied))
	for _, st := range []gridgraph.CellState{gridgraph.Free, gridgraph.Unknown, gridgraph.Unreachable, gridgraph.Occupied} {
		require.NoError(s.g.Mark(c, st))
		got, err := s.g.Classify(c)
		require.NoError(err)
		require.Equal(gridgraph.Occupied, got, "after marking %v", st)
	}
	s.g.MarkUnreachable()
	got, _ := s.g.Classify(c)
	require.Equal(gridgraph.Occupied, got)
}

func (s *GridSuite) TestHasAdjacentUnknownAndFrontier() {
	require := require.New(s.T())
	corner := gridgraph.Cell{Row: 0, Col: 0}
	require.NoError(s.g.Mark(corner, gridgraph.Free))
	require.True(s.g.HasAdjacentUnknown(corner))
	require.True(s.g.IsFrontier(corner))

	for _, n := range s.g.Neighbors(corner) {
		require.NoError(s.g.Mark(n, gridgraph.Free))
	}
	require.False(s.g.HasAdjacentUnknown(corner))
	require.False(s.g.IsFrontier(corner))

	// occupied neighbors count as known
	edge := gridgraph.Cell{Row: 0, Col: 1}
	require.True(s.g.HasAdjacentUnknown(edge))
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 0, Col: 2}, gridgraph.Occupied))
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 1, Col: 2}, gridgraph.Occupied))
	require.False(s.g.HasAdjacentUnknown(edge))

	// an Occupied cell is never a frontier
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 3, Col: 3}, gridgraph.Occupied))
	require.False(s.g.IsFrontier(gridgraph.Cell{Row: 3, Col: 3}))
}

func (s *GridSuite) TestNeighborsOrderAndBounds() {
	require := require.New(s.T())
	require.Equal([]gridgraph.Cell{{0, 1}, {1, 1}, {1, 0}}, s.g.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))
	require.Len(s.g.Neighbors(gridgraph.Cell{Row: 1, Col: 1}), 8)
	require.Len(s.g.Neighbors(gridgraph.Cell{Row: 0, Col: 2}), 5)
}

// TestMarkUnreachableOnce verifies Unknown cells flip exactly once.
func (s *GridSuite) TestMarkUnreachableOnce() {
	require := require.New(s.T())
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Free))
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 0, Col: 1}, gridgraph.Occupied))

	require.Equal(14, s.g.MarkUnreachable())
	require.Equal(0, s.g.MarkUnreachable())
	require.Equal(14, s.g.Count(gridgraph.Unreachable))
	require.Equal(1, s.g.Count(gridgraph.Free))
	require.Equal(0, s.g.Count(gridgraph.Unknown))
}

func (s *GridSuite) TestString() {
	require := require.New(s.T())
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Free))
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 0, Col: 1}, gridgraph.Occupied))
	require.NoError(s.g.Mark(gridgraph.Cell{Row: 3, Col: 3}, gridgraph.Free))
	want := " O X ? ?\n" +
		" ? ? ? ?\n" +
		" ? ? ? ?\n" +
		" ? ? ? O\n"
	require.Equal(want, s.g.String())
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

//----------------------------------------------------------------------------//
// Graph
//----------------------------------------------------------------------------//

func TestNewGraphErrors(t *testing.T) {
	_, err := gridgraph.NewGraph(0)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestAddEdgeIdempotent verifies that repeating an edge leaves degrees unchanged.
func TestAddEdgeIdempotent(t *testing.T) {
	g, err := gridgraph.NewGraph(9)
	require.NoError(t, err)

	added, err := g.AddEdge(0, 4)
	require.NoError(t, err)
	require.True(t, added)
	da, db := g.Degree(0), g.Degree(4)

	for i := 0; i < 3; i++ {
		added, err = g.AddEdge(0, 4)
		require.NoError(t, err)
		require.False(t, added)
		added, err = g.AddEdge(4, 0)
		require.NoError(t, err)
		require.False(t, added)
	}
	require.Equal(t, da, g.Degree(0))
	require.Equal(t, db, g.Degree(4))
	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge(4, 0))
}

func TestAddEdgeRejectsLoopsAndBadIDs(t *testing.T) {
	g, _ := gridgraph.NewGraph(4)

	added, err := g.AddEdge(2, 2)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 0, g.Degree(2))

	_, err = g.AddEdge(-1, 2)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = g.AddEdge(1, 4)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = g.Neighbors(7)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	require.False(t, g.HasEdge(1, 9))
}

func TestNeighborsInsertionOrder(t *testing.T) {
	g, _ := gridgraph.NewGraph(6)
	for _, v := range []int{5, 1, 3} {
		_, err := g.AddEdge(0, v)
		require.NoError(t, err)
	}
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{5, 1, 3}, nbrs)

	// the returned slice is a copy
	nbrs[0] = 42
	again, _ := g.Neighbors(0)
	require.Equal(t, 5, again[0])

	require.Equal(t, "Node 0: 5, 1, 3\nNode 1: 0\nNode 3: 0\nNode 5: 0\n", g.String())
}

//----------------------------------------------------------------------------//
// Layout
//----------------------------------------------------------------------------//

func TestNewLayoutErrors(t *testing.T) {
	cases := []struct {
		name     string
		size     int
		cellSize float64
	}{
		{"ZeroSize", 0, 6},
		{"NegativeCell", 6, -1},
		{"ZeroCell", 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewLayout(tc.size, tc.cellSize)
			require.ErrorIs(t, err, gridgraph.ErrInvalidLayout)
		})
	}
}

// TestCoordinateRoundTrip checks PositionToCell(CellToPosition(c)) == c and
// the vertex bijection for every cell.
func TestCoordinateRoundTrip(t *testing.T) {
	l, err := gridgraph.NewLayout(6, 6)
	require.NoError(t, err)
	for r := 0; r < l.MapSize; r++ {
		for c := 0; c < l.MapSize; c++ {
			cell := gridgraph.Cell{Row: r, Col: c}
			require.Equal(t, cell, l.PositionToCell(l.CellToPosition(cell)))

			v, err := l.Vertex(cell)
			require.NoError(t, err)
			require.Equal(t, r*6+c, v)
			back, err := l.Cell(v)
			require.NoError(t, err)
			require.Equal(t, cell, back)
		}
	}
}

func TestPositionToCellFloors(t *testing.T) {
	l, _ := gridgraph.NewLayout(10, 8)
	require.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, l.PositionToCell(orb.Point{0, 7.99}))
	require.Equal(t, gridgraph.Cell{Row: 1, Col: 2}, l.PositionToCell(orb.Point{8, 16}))
	require.Equal(t, gridgraph.Cell{Row: -1, Col: 0}, l.PositionToCell(orb.Point{-0.5, 4}))
	require.Equal(t, orb.Point{4, 12}, l.CellToPosition(gridgraph.Cell{Row: 0, Col: 1}))

	_, err := l.Vertex(gridgraph.Cell{Row: -1, Col: 0})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = l.Cell(100)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestVertexNumbering(t *testing.T) {
	l, _ := gridgraph.NewLayout(2, 1)
	require.Equal(t, " 0 1\n 2 3\n", l.VertexNumbering())
}
