// Package route plans and hands out the waypoints that lead an agent to a
// chosen frontier cell.
//
// What:
//
//	A Router is a two-state machine:
//
//	Idle --Plan--> Following --Next (last waypoint)--> Idle
//
//	Plan runs a breadth-first search with an early stop at the destination
//	and stores the path as a stack whose top is the vertex nearest the
//	source; Next pops one waypoint at a time and Requeue undoes a pop.
//	A new route can only be planned once the previous one is exhausted.
//
// Passability:
//
//	WithPassable keeps the search off vertices the caller rejects. The
//	destination itself is always admitted.
//
// Complexity:
//
//   - Plan: O(V + E) for the search plus O(path) for the walk back.
//   - Next, Requeue, Len, State: O(1).
//
// Errors:
//
//   - ErrRouteActive:     Plan while waypoints remain.
//   - ErrZeroLengthRoute: source and destination coincide.
//   - ErrUnreachable:     destination not connected to the source.
//   - ErrEmptyRoute:      Next while Idle.
package route
