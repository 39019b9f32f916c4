package explore

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/frontier/gridgraph"
	"github.com/katalvlaran/frontier/sensor"
)

// SweepReport summarizes what one sweep changed.
type SweepReport struct {
	Origin   gridgraph.Cell
	Freed    []gridgraph.Cell // Unknown → Free
	Occupied []gridgraph.Cell // newly Occupied
	Inserted []gridgraph.Cell // new frontier candidates, in insertion order
	Edges    int              // graph edges added
	Ignored  int              // hits outside the map or on non-obstacle colliders
}

// Sweep probes the eight fixed directions around the agent and folds the
// answers into a State.
type Sweep struct {
	sensor   sensor.Sensor
	rangeLen float64
}

// NewSweep returns a Sweep casting rays of length rangeLen through s.
func NewSweep(s sensor.Sensor, rangeLen float64) (*Sweep, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: sensor", ErrNilCollaborator)
	}
	if !(rangeLen > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRange, rangeLen)
	}
	return &Sweep{sensor: s, rangeLen: rangeLen}, nil
}

// Range returns the sensing range in world units.
func (sw *Sweep) Range() float64 {
	return sw.rangeLen
}

// Run performs one sweep from origin.
//
// The agent's own cell is observed first. Then, per direction:
//   - an obstacle hit marks the hit cell Occupied;
//   - a miss credits the cell under origin+range*direction: it becomes Free,
//     gets an edge to the agent cell and to each in-bounds 8-neighbor, and
//     joins the frontier if it was Unknown and bordered Unknown cells.
//
// Repeating a sweep from the same origin changes nothing.
// Returns gridgraph.ErrOutOfBounds if origin lies outside the map.
func (sw *Sweep) Run(st *State, origin orb.Point) (SweepReport, error) {
	agentCell := st.Layout.PositionToCell(origin)
	agentV, err := st.Layout.Vertex(agentCell)
	if err != nil {
		return SweepReport{}, fmt.Errorf("explore: agent at %v: %w", origin, err)
	}
	rep := SweepReport{Origin: agentCell}
	sw.observe(st, agentCell, &rep)

	for _, dir := range sensor.Directions {
		obs := sw.sensor.Probe(origin, dir, sw.rangeLen)
		if obs.Hit {
			sw.hit(st, obs, &rep)
			continue
		}

		probed := st.Layout.PositionToCell(sensor.ProbePoint(origin, dir, sw.rangeLen))
		if !st.Grid.InBounds(probed) {
			continue
		}
		sw.observe(st, probed, &rep)

		pv := probed.Vertex(st.Layout.MapSize)
		if err := sw.link(st, agentV, pv, &rep); err != nil {
			return rep, err
		}
		for _, n := range st.Grid.Neighbors(probed) {
			if err := sw.link(st, pv, n.Vertex(st.Layout.MapSize), &rep); err != nil {
				return rep, err
			}
		}
	}
	return rep, nil
}

// observe applies the Unknown → Free rule to an in-bounds cell.
func (sw *Sweep) observe(st *State, c gridgraph.Cell, rep *SweepReport) {
	prev, _ := st.Grid.Classify(c)
	if prev != gridgraph.Unknown {
		_ = st.Grid.Mark(c, gridgraph.Free)
		return
	}
	borders := st.Grid.HasAdjacentUnknown(c)
	_ = st.Grid.Mark(c, gridgraph.Free)
	rep.Freed = append(rep.Freed, c)
	if borders && st.Frontier.Insert(c) {
		rep.Inserted = append(rep.Inserted, c)
	}
}

func (sw *Sweep) hit(st *State, obs sensor.Observation, rep *SweepReport) {
	if obs.Collider != sensor.ColliderObstacle {
		rep.Ignored++
		return
	}
	c := st.Layout.PositionToCell(obs.At)
	prev, err := st.Grid.Classify(c)
	if err != nil {
		rep.Ignored++
		return
	}
	_ = st.Grid.Mark(c, gridgraph.Occupied)
	if prev != gridgraph.Occupied {
		rep.Occupied = append(rep.Occupied, c)
	}
}

func (sw *Sweep) link(st *State, a, b int, rep *SweepReport) error {
	added, err := st.Graph.AddEdge(a, b)
	if err != nil {
		return err
	}
	if added {
		rep.Edges++
	}
	return nil
}
