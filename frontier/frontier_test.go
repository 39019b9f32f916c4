package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/frontier/frontier"
	"github.com/katalvlaran/frontier/gridgraph"
)

type SetSuite struct {
	suite.Suite
	s *frontier.Set
}

func (s *SetSuite) SetupTest() {
	s.s = frontier.New()
}

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

func (s *SetSuite) TestInsertIsIdempotent() {
	require := require.New(s.T())
	require.True(s.s.IsEmpty())
	require.True(s.s.Insert(cell(0, 1)))
	require.False(s.s.Insert(cell(0, 1)))
	require.True(s.s.Insert(cell(1, 1)))
	require.Equal(2, s.s.Len())
	require.True(s.s.Contains(cell(1, 1)))
	require.False(s.s.Contains(cell(2, 2)))
}

// TestTakeNextIsLIFO verifies most-recently-inserted selection.
func (s *SetSuite) TestTakeNextIsLIFO() {
	require := require.New(s.T())
	for _, c := range []gridgraph.Cell{cell(0, 1), cell(1, 1), cell(1, 0)} {
		s.s.Insert(c)
	}
	for _, want := range []gridgraph.Cell{cell(1, 0), cell(1, 1), cell(0, 1)} {
		got, ok := s.s.TakeNext()
		require.True(ok)
		require.Equal(want, got)
		require.False(s.s.Contains(got))
	}
	_, ok := s.s.TakeNext()
	require.False(ok)
	require.True(s.s.IsEmpty())

	// a taken cell may be inserted again
	require.True(s.s.Insert(cell(1, 0)))
}

// TestNewestPeeks returns the LIFO choice without removing it.
func (s *SetSuite) TestNewestPeeks() {
	require := require.New(s.T())
	_, ok := s.s.Newest()
	require.False(ok)

	s.s.Insert(cell(0, 1))
	s.s.Insert(cell(1, 1))
	got, ok := s.s.Newest()
	require.True(ok)
	require.Equal(cell(1, 1), got)
	require.True(s.s.Contains(cell(1, 1)))
	require.Equal(2, s.s.Len())

	again, _ := s.s.Newest()
	require.Equal(got, again)
	s.s.Remove(got)
	got, _ = s.s.Newest()
	require.Equal(cell(0, 1), got)
}

// TestPruneStaleAdjacentRemovals removes neighbors in a row, the case a
// forward index walk with in-place deletion would skip.
func (s *SetSuite) TestPruneStaleAdjacentRemovals() {
	require := require.New(s.T())
	for i := 0; i < 6; i++ {
		s.s.Insert(cell(0, i))
	}
	seen := map[gridgraph.Cell]int{}
	stale := map[int]bool{1: true, 2: true, 3: true, 5: true}
	removed := s.s.PruneStale(func(c gridgraph.Cell) bool {
		seen[c]++
		return !stale[c.Col]
	})
	require.Equal(4, removed)
	require.Equal([]gridgraph.Cell{cell(0, 0), cell(0, 4)}, s.s.Cells())
	require.Len(seen, 6)
	for c, n := range seen {
		require.Equal(1, n, "cell %v examined %d times", c, n)
	}
	require.False(s.s.Contains(cell(0, 2)))
	require.True(s.s.Insert(cell(0, 2)))
}

func (s *SetSuite) TestRemove() {
	require := require.New(s.T())
	s.s.Insert(cell(0, 0))
	s.s.Insert(cell(0, 1))
	s.s.Insert(cell(0, 2))
	require.True(s.s.Remove(cell(0, 1)))
	require.False(s.s.Remove(cell(0, 1)))
	require.Equal([]gridgraph.Cell{cell(0, 0), cell(0, 2)}, s.s.Cells())
}

func (s *SetSuite) TestString() {
	require.Equal(s.T(), "Target Locations:", s.s.String())
	s.s.Insert(cell(0, 1))
	s.s.Insert(cell(1, 1))
	require.Equal(s.T(), "Target Locations: (0,1), (1,1)", s.s.String())
}

// TestSoundnessAgainstGrid checks that after pruning with Grid.IsFrontier the
// set equals the cells re-derived from the grid.
func (s *SetSuite) TestSoundnessAgainstGrid() {
	require := require.New(s.T())
	g, err := gridgraph.NewGrid(4)
	require.NoError(err)
	for _, c := range []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(1, 0), cell(1, 1), cell(2, 2)} {
		require.NoError(g.Mark(c, gridgraph.Free))
		s.s.Insert(c)
	}
	// a Free candidate later hit by the sensor drops out
	require.NoError(g.Mark(cell(2, 2), gridgraph.Occupied))
	require.NoError(g.Mark(cell(3, 3), gridgraph.Occupied))

	s.s.PruneStale(g.IsFrontier)

	var want []gridgraph.Cell
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if g.IsFrontier(cell(r, c)) {
				want = append(want, cell(r, c))
			}
		}
	}
	require.ElementsMatch(want, s.s.Cells())
	require.False(s.s.Contains(cell(0, 0)))
	require.False(s.s.Contains(cell(2, 2)))
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetSuite))
}
