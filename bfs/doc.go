// Package bfs provides breadth-first search over integer-vertex graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, NoVertex if unseen
//   - Parent: vertex → predecessor in the BFS tree, NoVertex for start and unseen
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Stops early once a target is dequeued via WithTarget.
//
// Determinism
//
//	Neighbors are expanded in the order Graph.Neighbors returns them and a
//	vertex keeps the first predecessor that discovered it. Among several
//	shortest paths the winner is therefore decided by adjacency order, not
//	by the smallest vertex id.
//
// Complexity (V = Order, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (queue, Depth, Parent, visited arrays)
//
// Usage
//
//	res, err := bfs.BFS(g, src, bfs.WithContext(ctx), bfs.WithTarget(dst))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // context errors or hook errors
//	}
//	path, err := res.PathTo(dst) // ErrNoPath if dst was never reached
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if start is not in [0, Order).
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth or Target).
//   - ErrNeighbors            if Graph.Neighbors fails or returns an invalid id.
//   - ErrNoPath               from Result.PathTo for unreached vertices.
package bfs
