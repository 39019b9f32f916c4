package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/frontier/gridgraph"
	"github.com/katalvlaran/frontier/sensor"
)

var (
	// ErrEmptyObstacle indicates an obstacle footprint with zero width or depth.
	ErrEmptyObstacle = errors.New("sim: obstacle footprint must have positive extent")
	// ErrUnknownMarker indicates a despawn of a marker that is not live.
	ErrUnknownMarker = errors.New("sim: unknown marker")
	// ErrInvalidParam indicates a non-positive speed, radius or probe step.
	ErrInvalidParam = errors.New("sim: parameter must be positive")
)

// Obstacle is a static axis-aligned footprint in world coordinates.
type Obstacle struct {
	Footprint orb.Bound
	Collider  sensor.Collider
	rect      rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *Obstacle) Bounds() rtreego.Rect {
	return o.rect
}

// World indexes obstacles in an R-tree and answers sensor probes against them.
type World struct {
	tree      *rtreego.Rtree
	obstacles []*Obstacle
	probeStep float64
}

// NewWorld returns an empty world sampling rays every probeStep world units.
func NewWorld(probeStep float64) (*World, error) {
	if !(probeStep > 0) {
		return nil, fmt.Errorf("%w: probe step %g", ErrInvalidParam, probeStep)
	}
	return &World{
		tree:      rtreego.NewTree(2, 25, 50),
		probeStep: probeStep,
	}, nil
}

// AddObstacle inserts a footprint classified as an obstacle.
func (w *World) AddObstacle(b orb.Bound) error {
	return w.add(b, sensor.ColliderObstacle)
}

// AddCellObstacle fills cell c of layout with an obstacle.
func (w *World) AddCellObstacle(l gridgraph.Layout, c gridgraph.Cell) error {
	return w.AddObstacle(CellBound(l, c))
}

func (w *World) add(b orb.Bound, kind sensor.Collider) error {
	dx, dy := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	if !(dx > 0) || !(dy > 0) {
		return fmt.Errorf("%w: %v", ErrEmptyObstacle, b)
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min.X(), b.Min.Y()}, []float64{dx, dy})
	if err != nil {
		return fmt.Errorf("sim: index obstacle %v: %w", b, err)
	}
	o := &Obstacle{Footprint: b, Collider: kind, rect: rect}
	w.tree.Insert(o)
	w.obstacles = append(w.obstacles, o)
	return nil
}

// Len returns the number of obstacles.
func (w *World) Len() int {
	return len(w.obstacles)
}

// Probe implements sensor.Sensor. It samples the ray from origin for
// maxRange world units along the normalized direction and reports the first
// obstacle containing a sample, located at the obstacle's center. The origin
// itself is not sampled.
func (w *World) Probe(origin, direction orb.Point, maxRange float64) sensor.Observation {
	norm := math.Hypot(direction.X(), direction.Y())
	if norm == 0 || !(maxRange > 0) {
		return sensor.Miss
	}
	dx, dy := maxRange*direction.X()/norm, maxRange*direction.Y()/norm
	reach := orb.Point{origin.X() + dx, origin.Y() + dy}
	candidates := w.alongSegment(origin, reach)
	if len(candidates) == 0 {
		return sensor.Miss
	}

	n := int(math.Ceil(maxRange / w.probeStep))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		p := orb.Point{origin.X() + t*dx, origin.Y() + t*dy}
		for _, o := range candidates {
			if o.Footprint.Contains(p) {
				return sensor.Observation{Hit: true, At: o.Footprint.Center(), Collider: o.Collider}
			}
		}
	}
	return sensor.Miss
}

// alongSegment returns the obstacles whose footprint intersects the
// bounding box of segment a-b, in index order.
func (w *World) alongSegment(a, b orb.Point) []*Obstacle {
	if len(w.obstacles) == 0 {
		return nil
	}
	const pad = 1e-6
	minX, minY := math.Min(a.X(), b.X())-pad, math.Min(a.Y(), b.Y())-pad
	maxX, maxY := math.Max(a.X(), b.X())+pad, math.Max(a.Y(), b.Y())+pad
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{maxX - minX, maxY - minY})
	if err != nil {
		return nil
	}
	hits := w.tree.SearchIntersect(rect)
	out := make([]*Obstacle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*Obstacle))
	}
	return out
}

// CellBound returns the world footprint of cell c.
func CellBound(l gridgraph.Layout, c gridgraph.Cell) orb.Bound {
	lo := orb.Point{float64(c.Row) * l.CellSize, float64(c.Col) * l.CellSize}
	return orb.Bound{Min: lo, Max: orb.Point{lo.X() + l.CellSize, lo.Y() + l.CellSize}}
}
