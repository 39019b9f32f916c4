package sim

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Drone flies in a straight line toward its destination at a fixed speed
// per step. It implements explore.Agent.
type Drone struct {
	pos    orb.Point
	dest   orb.Point
	speed  float64
	moving bool
	flown  float64
}

// NewDrone places a drone at start.
func NewDrone(start orb.Point, speed float64) (*Drone, error) {
	if !(speed > 0) {
		return nil, fmt.Errorf("%w: speed %g", ErrInvalidParam, speed)
	}
	return &Drone{pos: start, dest: start, speed: speed}, nil
}

// Position implements explore.Agent.
func (d *Drone) Position() orb.Point { return d.pos }

// SetDestination implements explore.Agent.
func (d *Drone) SetDestination(p orb.Point) {
	d.dest = p
	d.moving = true
}

// Moving reports whether the drone still has somewhere to go.
func (d *Drone) Moving() bool { return d.moving }

// Flown returns the total distance travelled.
func (d *Drone) Flown() float64 { return d.flown }

// Step advances the drone by at most one speed unit and reports whether it
// reached its destination during this step.
func (d *Drone) Step() bool {
	if !d.moving {
		return false
	}
	dist := planar.Distance(d.pos, d.dest)
	if dist <= d.speed {
		d.flown += dist
		d.pos = d.dest
		d.moving = false
		return true
	}
	f := d.speed / dist
	d.pos = orb.Point{
		d.pos.X() + f*(d.dest.X()-d.pos.X()),
		d.pos.Y() + f*(d.dest.Y()-d.pos.Y()),
	}
	d.flown += d.speed
	return false
}
