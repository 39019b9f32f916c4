package route

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/frontier/bfs"
)

var (
	// ErrEmptyRoute is returned by Next when no route is being followed.
	ErrEmptyRoute = errors.New("route: no active route")
	// ErrUnreachable is returned by Plan when the destination is not connected to the source.
	ErrUnreachable = errors.New("route: destination unreachable")
	// ErrZeroLengthRoute is returned by Plan when source and destination coincide.
	ErrZeroLengthRoute = errors.New("route: source equals destination")
	// ErrRouteActive is returned by Plan while a previous route still has waypoints.
	ErrRouteActive = errors.New("route: previous route not exhausted")
)

// State is the Router state.
type State int

const (
	// Idle means no committed route.
	Idle State = iota
	// Following means waypoints remain on the stack.
	Following
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Following {
		return "following"
	}
	return "idle"
}

// Option configures a Router.
type Option func(*Router)

// WithPassable restricts planning to vertices for which fn returns true.
// The destination is always admitted, so a route may end on a cell that
// would otherwise be filtered.
func WithPassable(fn func(v int) bool) Option {
	return func(r *Router) {
		if fn != nil {
			r.passable = fn
		}
	}
}

// Router owns the current route over a graph.
type Router struct {
	graph    bfs.Graph
	passable func(v int) bool
	stack    []int // top is the last element
	dest     int
}

// New returns an Idle Router over g.
func New(g bfs.Graph, opts ...Option) *Router {
	r := &Router{graph: g, dest: bfs.NoVertex}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State reports Idle or Following.
func (r *Router) State() State {
	if len(r.stack) == 0 {
		return Idle
	}
	return Following
}

// Len returns the number of waypoints left.
func (r *Router) Len() int {
	return len(r.stack)
}

// Destination returns the vertex the current route leads to, or bfs.NoVertex when Idle.
func (r *Router) Destination() int {
	if len(r.stack) == 0 {
		return bfs.NoVertex
	}
	return r.dest
}

// Plan computes a shortest route from src to dst and makes the Router Following.
//
// The predecessor chain is walked from dst back to src, pushing every vertex
// except src, so the first Next returns the vertex adjacent to src.
// Errors:
//   - ErrRouteActive     if the previous route still has waypoints.
//   - ErrZeroLengthRoute if src == dst.
//   - ErrUnreachable     if the chain hits an unvisited marker before src;
//     the route is left empty.
//   - any bfs error (invalid ids, context cancellation).
func (r *Router) Plan(ctx context.Context, src, dst int) error {
	if len(r.stack) > 0 {
		return ErrRouteActive
	}
	if src == dst {
		return fmt.Errorf("%w: %d", ErrZeroLengthRoute, src)
	}
	if dst < 0 || dst >= r.graph.Order() {
		return fmt.Errorf("%w: destination %d (order %d)", bfs.ErrStartVertexNotFound, dst, r.graph.Order())
	}

	opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithTarget(dst)}
	if r.passable != nil {
		opts = append(opts, bfs.WithFilterNeighbor(func(_, nbr int) bool {
			return nbr == dst || r.passable(nbr)
		}))
	}
	res, err := bfs.BFS(r.graph, src, opts...)
	if err != nil {
		return fmt.Errorf("route: plan %d→%d: %w", src, dst, err)
	}

	for cur := dst; cur != src; cur = res.Parent[cur] {
		if cur == bfs.NoVertex {
			r.stack = r.stack[:0]
			return fmt.Errorf("%w: %d→%d", ErrUnreachable, src, dst)
		}
		r.stack = append(r.stack, cur)
	}
	r.dest = dst
	return nil
}

// Next pops the next waypoint. Returns ErrEmptyRoute when Idle; the Router
// becomes Idle when the last waypoint is popped.
func (r *Router) Next() (int, error) {
	n := len(r.stack)
	if n == 0 {
		return bfs.NoVertex, ErrEmptyRoute
	}
	v := r.stack[n-1]
	r.stack = r.stack[:n-1]
	return v, nil
}

// Requeue puts v back on top of the route, undoing a Next whose waypoint
// could not be handed to the agent. The next call to Next returns v again.
func (r *Router) Requeue(v int) {
	if len(r.stack) == 0 {
		r.dest = v
	}
	r.stack = append(r.stack, v)
}

// Pending returns the remaining waypoints in the order Next would return them.
func (r *Router) Pending() []int {
	out := make([]int, len(r.stack))
	for i := range r.stack {
		out[i] = r.stack[len(r.stack)-1-i]
	}
	return out
}

// Reset drops the current route.
func (r *Router) Reset() {
	r.stack = r.stack[:0]
	r.dest = bfs.NoVertex
}

// String lists the pending waypoints: "Route: 11, 22, 33".
func (r *Router) String() string {
	var sb strings.Builder
	sb.WriteString("Route:")
	for i, v := range r.Pending() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
