package sim

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Markers is the registry of live target markers. It implements
// explore.MarkerFactory.
type Markers struct {
	live    map[uuid.UUID]orb.Point
	radius  float64
	spawned int
}

// NewMarkers returns an empty registry; a drone within radius of a marker touches it.
func NewMarkers(radius float64) (*Markers, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: arrival radius %g", ErrInvalidParam, radius)
	}
	return &Markers{live: make(map[uuid.UUID]orb.Point), radius: radius}, nil
}

// Spawn implements explore.MarkerFactory.
func (m *Markers) Spawn(p orb.Point) (uuid.UUID, error) {
	id := uuid.New()
	m.live[id] = p
	m.spawned++
	return id, nil
}

// Despawn implements explore.MarkerFactory. Returns ErrUnknownMarker for
// markers that are not live.
func (m *Markers) Despawn(id uuid.UUID) error {
	if _, ok := m.live[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMarker, id)
	}
	delete(m.live, id)
	return nil
}

// Live returns the number of live markers.
func (m *Markers) Live() int { return len(m.live) }

// Spawned returns how many markers were ever spawned.
func (m *Markers) Spawned() int { return m.spawned }

// At returns the position of a live marker.
func (m *Markers) At(id uuid.UUID) (orb.Point, bool) {
	p, ok := m.live[id]
	return p, ok
}

// Touching returns the live markers within the arrival radius of p, ordered by id.
func (m *Markers) Touching(p orb.Point) []uuid.UUID {
	var out []uuid.UUID
	for id, at := range m.live {
		if planar.Distance(p, at) <= m.radius {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}
