package sensor

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/frontier/gridgraph"
)

// Collider is the category of object a probe hit.
type Collider uint8

const (
	// ColliderNone is reported for misses.
	ColliderNone Collider = iota
	// ColliderObstacle is static geometry; the hit cell becomes Occupied.
	ColliderObstacle
	// ColliderMarker is a target marker spawned by the explorer.
	ColliderMarker
	// ColliderOther is anything the sensor could not classify.
	ColliderOther
)

// String implements fmt.Stringer.
func (c Collider) String() string {
	switch c {
	case ColliderNone:
		return "none"
	case ColliderObstacle:
		return "obstacle"
	case ColliderMarker:
		return "marker"
	default:
		return "other"
	}
}

// Observation is the result of one probe.
type Observation struct {
	Hit      bool
	At       orb.Point // where the hit object sits; zero for misses
	Collider Collider
}

// Miss is the Observation for a ray that hit nothing within range.
var Miss = Observation{}

// Sensor casts a single ray. Implementations keep no state between calls
// that would make the answer depend on call order.
type Sensor interface {
	Probe(origin, direction orb.Point, maxRange float64) Observation
}

// Func adapts a plain function to Sensor.
type Func func(origin, direction orb.Point, maxRange float64) Observation

// Probe implements Sensor.
func (f Func) Probe(origin, direction orb.Point, maxRange float64) Observation {
	return f(origin, direction, maxRange)
}

// Directions are the eight fixed probe directions in gridgraph.Conn8 order
// (N, NE, E, SE, S, SW, W, NW). They are not normalized: diagonals reach
// maxRange along both axes.
var Directions = func() [8]orb.Point {
	var out [8]orb.Point
	for i, d := range gridgraph.Conn8 {
		out[i] = orb.Point{float64(d[0]), float64(d[1])}
	}
	return out
}()

// ProbePoint returns the point a miss along direction is credited to:
// origin + maxRange*direction.
func ProbePoint(origin, direction orb.Point, maxRange float64) orb.Point {
	return orb.Point{
		origin.X() + maxRange*direction.X(),
		origin.Y() + maxRange*direction.Y(),
	}
}
