package explore

import (
	"github.com/katalvlaran/frontier/frontier"
	"github.com/katalvlaran/frontier/gridgraph"
)

// State is the exploration context: every structure one run mutates,
// created together at start and sized to the map. It is passed explicitly
// to the sweep; nothing in this module keeps package-level state.
type State struct {
	Layout   gridgraph.Layout
	Grid     *gridgraph.Grid
	Graph    *gridgraph.Graph
	Frontier *frontier.Set
}

// NewState allocates an all-Unknown grid, an edgeless graph and an empty
// frontier for layout.
func NewState(layout gridgraph.Layout) (*State, error) {
	if _, err := gridgraph.NewLayout(layout.MapSize, layout.CellSize); err != nil {
		return nil, err
	}
	grid, err := gridgraph.NewGrid(layout.MapSize)
	if err != nil {
		return nil, err
	}
	graph, err := gridgraph.NewGraph(layout.Order())
	if err != nil {
		return nil, err
	}
	return &State{
		Layout:   layout,
		Grid:     grid,
		Graph:    graph,
		Frontier: frontier.New(),
	}, nil
}

// Prune drops every frontier candidate that is no longer a Free cell
// bordering Unknown space and returns how many were dropped.
func (s *State) Prune() int {
	return s.Frontier.PruneStale(s.Grid.IsFrontier)
}

// passable reports whether routes may cross vertex v.
func (s *State) passable(v int) bool {
	st, err := s.Grid.Classify(gridgraph.CellOf(v, s.Layout.MapSize))
	return err == nil && st != gridgraph.Occupied
}
