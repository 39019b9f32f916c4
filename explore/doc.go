// Package explore runs frontier-based exploration of an unknown grid world.
//
// What:
//
//   - State bundles the occupancy Grid, the connectivity Graph and the
//     frontier Set of one run.
//   - Sweep casts the eight fixed rays each tick and folds the answers into
//     State: hits mark Occupied cells, misses free the probed cell, link it
//     into the graph and, when it borders Unknown space, make it a frontier.
//   - Explorer sequences a run: Start, then one Tick per simulation step.
//     A Tick sweeps, prunes stale frontiers, consumes queued arrival events
//     and, once the live waypoint is reached, commits the next one.
//
// Frontier selection:
//
//	The next frontier is the most recently discovered one (LIFO), not the
//	nearest. This is a policy choice; exploration order therefore follows
//	discovery order rather than distance. Choosing a frontier does not
//	remove it: it leaves the set when a sweep shows it no longer borders
//	Unknown space, or when it is dropped as unroutable.
//
// Completion:
//
//	The run is done once no route is being followed and the frontier set
//	is empty, checked at Start and whenever the live waypoint is reached.
//	Every cell still Unknown then becomes Unreachable. Later Ticks do nothing.
//
// Recoverable conditions (unreachable frontier, frontier under the agent,
// arrivals at stale markers) are handled internally, logged and counted in
// Stats. Out-of-bounds agent positions fail fast.
package explore
