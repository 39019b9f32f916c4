package explore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/frontier/gridgraph"
	"github.com/katalvlaran/frontier/route"
	"github.com/katalvlaran/frontier/sensor"
)

// MarkerID identifies a spawned target marker.
type MarkerID = uuid.UUID

// Agent is the movement actuator. SetDestination hands over a world
// position; the agent drives there on its own and its arrival is reported
// through Explorer.NotifyArrival.
type Agent interface {
	Position() orb.Point
	SetDestination(p orb.Point)
}

// MarkerFactory spawns and removes the visual markers waypoints are tied to.
type MarkerFactory interface {
	Spawn(p orb.Point) (MarkerID, error)
	Despawn(id MarkerID) error
}

// Stats counts what happened during a run.
type Stats struct {
	Ticks                int
	Sweeps               int
	Routes               int // routes planned successfully
	Waypoints            int // waypoints committed to the agent
	Pruned               int // frontier candidates dropped as stale
	UnreachableFrontiers int // frontiers dropped because no route existed
	ZeroLengthRoutes     int // frontiers dropped because the agent already stood on them
	StaleArrivals        int
	UnreachableCells     int // cells flipped to Unreachable at completion
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithLogger sets the logger; by default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(e *Explorer) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithOccupiedRouting lets routes cross Occupied cells when allow is true.
// By default they are avoided.
func WithOccupiedRouting(allow bool) Option {
	return func(e *Explorer) { e.crossOccupied = allow }
}

type target struct {
	id     MarkerID
	vertex int
}

// Explorer drives one exploration run. All methods must be called from the
// same goroutine; arrivals are queued by NotifyArrival and consumed by Tick.
type Explorer struct {
	state   *State
	sweep   *Sweep
	router  *route.Router
	agent   Agent
	markers MarkerFactory
	logger  *log.Logger

	crossOccupied bool

	live     *target
	arrivals []MarkerID
	started  bool
	done     bool
	stats    Stats
}

// New wires an Explorer for the given layout and collaborators.
func New(layout gridgraph.Layout, rangeLen float64, agent Agent, s sensor.Sensor, markers MarkerFactory, opts ...Option) (*Explorer, error) {
	if agent == nil {
		return nil, fmt.Errorf("%w: agent", ErrNilCollaborator)
	}
	if markers == nil {
		return nil, fmt.Errorf("%w: marker factory", ErrNilCollaborator)
	}
	sw, err := NewSweep(s, rangeLen)
	if err != nil {
		return nil, err
	}
	st, err := NewState(layout)
	if err != nil {
		return nil, err
	}
	e := &Explorer{
		state:   st,
		sweep:   sw,
		agent:   agent,
		markers: markers,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	var ropts []route.Option
	if !e.crossOccupied {
		ropts = append(ropts, route.WithPassable(st.passable))
	}
	e.router = route.New(st.Graph, ropts...)
	return e, nil
}

// State exposes the exploration context for inspection.
func (e *Explorer) State() *State { return e.state }

// Done reports whether exploration has completed. It never reverts.
func (e *Explorer) Done() bool { return e.done }

// Stats returns a copy of the run counters.
func (e *Explorer) Stats() Stats { return e.stats }

// Target returns the live marker and the vertex it stands on.
func (e *Explorer) Target() (MarkerID, int, bool) {
	if e.live == nil {
		return uuid.Nil, -1, false
	}
	return e.live.id, e.live.vertex, true
}

// Route returns the waypoints still queued after the live target.
func (e *Explorer) Route() []int { return e.router.Pending() }

// Start performs the first sweep, which marks the agent's cell Free, and
// commits the first waypoint, or completes at once when nothing is left to
// explore. An agent outside the map fails with gridgraph.ErrOutOfBounds.
func (e *Explorer) Start(ctx context.Context) error {
	if e.started {
		return ErrAlreadyStarted
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	cell := e.state.Layout.PositionToCell(e.agent.Position())
	if !e.state.Layout.InBounds(cell) {
		return fmt.Errorf("explore: agent start at %v: %w", cell, gridgraph.ErrOutOfBounds)
	}
	e.started = true
	e.logger.Printf("[EXPLORE] [INFO] start at %v on %dx%d map", cell, e.state.Layout.MapSize, e.state.Layout.MapSize)

	if err := e.sense(); err != nil {
		return err
	}
	e.prune()
	return e.advanceOrFinish(ctx)
}

// NotifyArrival queues an arrival event for marker id. Events are
// edge-triggered and may arrive any number of times between ticks; the
// next Tick validates them against the live target.
func (e *Explorer) NotifyArrival(id MarkerID) {
	if e.done {
		return
	}
	e.arrivals = append(e.arrivals, id)
}

// Tick runs one simulation step in fixed order: sweep, prune, consume the
// queued arrivals, advance. The first Tick starts the run if Start was not
// called. After completion Tick is a no-op. A cancelled ctx stops the tick
// before anything is mutated.
func (e *Explorer) Tick(ctx context.Context) error {
	if !e.started {
		return e.Start(ctx)
	}
	if e.done {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.stats.Ticks++

	if err := e.sense(); err != nil {
		return err
	}
	e.prune()

	arrived := e.consumeArrivals()
	if !arrived && e.live != nil {
		return nil
	}
	return e.advanceOrFinish(ctx)
}

// advanceOrFinish completes the run when no route is being followed and no
// frontier is left; otherwise it commits the next waypoint.
func (e *Explorer) advanceOrFinish(ctx context.Context) error {
	if e.router.State() == route.Idle && e.state.Frontier.IsEmpty() {
		e.finish()
		return nil
	}
	return e.advance(ctx)
}

func (e *Explorer) sense() error {
	rep, err := e.sweep.Run(e.state, e.agent.Position())
	if err != nil {
		return err
	}
	e.stats.Sweeps++
	if len(rep.Inserted) > 0 || len(rep.Occupied) > 0 {
		e.logger.Printf("[EXPLORE] [INFO] sweep at %v: freed=%d occupied=%v frontier+=%v edges+=%d",
			rep.Origin, len(rep.Freed), rep.Occupied, rep.Inserted, rep.Edges)
	}
	return nil
}

func (e *Explorer) prune() {
	if n := e.state.Prune(); n > 0 {
		e.stats.Pruned += n
	}
}

// consumeArrivals drains the queue and reports whether the live target was
// reached. The live marker is despawned at most once.
func (e *Explorer) consumeArrivals() bool {
	if len(e.arrivals) == 0 {
		return false
	}
	arrived := false
	for _, id := range e.arrivals {
		if e.live != nil && !arrived && id == e.live.id {
			arrived = true
			continue
		}
		e.stats.StaleArrivals++
		e.logger.Printf("[EXPLORE] [WARN] %v: %s", ErrStaleMarkerArrival, id)
	}
	e.arrivals = e.arrivals[:0]
	if !arrived {
		return false
	}
	if err := e.markers.Despawn(e.live.id); err != nil {
		e.logger.Printf("[EXPLORE] [WARN] despawn %s: %v", e.live.id, err)
	}
	e.live = nil
	return true
}

// advance commits the next waypoint: from the route being followed, or from
// a freshly planned route to the most recently discovered frontier. The
// chosen frontier stays a candidate until a sweep prunes it. Frontiers that
// cannot be routed to, or that the agent already stands on, are dropped;
// running out of frontiers completes the run.
func (e *Explorer) advance(ctx context.Context) error {
	for {
		if e.router.State() == route.Following {
			v, err := e.router.Next()
			if err != nil {
				return err
			}
			return e.commit(v)
		}

		next, ok := e.state.Frontier.Newest()
		if !ok {
			e.finish()
			return nil
		}
		src, err := e.state.Layout.Vertex(e.state.Layout.PositionToCell(e.agent.Position()))
		if err != nil {
			return fmt.Errorf("explore: agent position: %w", err)
		}
		dst := next.Vertex(e.state.Layout.MapSize)

		err = e.router.Plan(ctx, src, dst)
		switch {
		case err == nil:
			e.stats.Routes++
			e.logger.Printf("[EXPLORE] [INFO] frontier %v: route of %d waypoints", next, e.router.Len())
		case errors.Is(err, route.ErrZeroLengthRoute):
			e.state.Frontier.Remove(next)
			e.stats.ZeroLengthRoutes++
		case errors.Is(err, route.ErrUnreachable):
			e.state.Frontier.Remove(next)
			e.stats.UnreachableFrontiers++
			e.logger.Printf("[EXPLORE] [WARN] frontier %v dropped: %v", next, err)
		default:
			return err
		}
	}
}

// commit spawns a marker on waypoint v and sends the agent there. When the
// marker cannot be spawned, v goes back on the route for the next tick.
func (e *Explorer) commit(v int) error {
	pos := e.state.Layout.CellToPosition(gridgraph.CellOf(v, e.state.Layout.MapSize))
	id, err := e.markers.Spawn(pos)
	if err != nil {
		e.router.Requeue(v)
		return fmt.Errorf("explore: spawn marker at %v: %w", pos, err)
	}
	e.live = &target{id: id, vertex: v}
	e.agent.SetDestination(pos)
	e.stats.Waypoints++
	return nil
}

// finish reclassifies the remaining Unknown cells and releases the live marker.
func (e *Explorer) finish() {
	if e.done {
		return
	}
	e.stats.UnreachableCells = e.state.Grid.MarkUnreachable()
	e.router.Reset()
	if e.live != nil {
		if err := e.markers.Despawn(e.live.id); err != nil {
			e.logger.Printf("[EXPLORE] [WARN] despawn %s: %v", e.live.id, err)
		}
		e.live = nil
	}
	e.arrivals = nil
	e.done = true
	e.logger.Printf("[EXPLORE] [INFO] done: %d ticks, %d waypoints, %d cells unreachable\n%s",
		e.stats.Ticks, e.stats.Waypoints, e.stats.UnreachableCells, e.state.Grid)
}
