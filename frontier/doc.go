// Package frontier keeps the candidate cells an exploring agent may head to
// next: Free cells that still border Unknown space.
//
// What:
//
//   - Set has set semantics for membership and keeps insertion order for
//     selection.
//   - Newest peeks at the most recently inserted candidate; TakeNext pops it.
//   - PruneStale drops candidates that stopped qualifying. It walks the
//     order from the back, so each candidate is examined exactly once and
//     the survivors keep their relative order.
//
// Why LIFO:
//
//	The agent keeps pushing into the region it discovered last
//	(depth-first flavored exploration) rather than hopping to the globally
//	nearest cell. A candidate chosen as a target stays in the set until it
//	is pruned or explicitly removed.
//
// Complexity:
//
//   - Insert, Contains, Newest, TakeNext: O(1).
//   - Remove:                             O(n).
//   - PruneStale:                         O(n) calls to keep.
package frontier
