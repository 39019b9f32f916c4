// Package gridgraph models a square world discretized into cells, the
// occupancy map built over it while exploring, and the connectivity graph
// grown between observed cells.
//
// What:
//
//   - Grid holds one CellState per cell (Unknown, Free, Occupied, Unreachable)
//     and enforces that Occupied is sticky.
//   - Graph is an undirected, simple adjacency list over integer vertex ids
//     (row*size + col) that only ever grows.
//   - Layout maps world positions (orb.Point, x and z) to cells and back,
//     using the center-of-cell convention.
//
// Connectivity:
//
//	All neighbor queries are 8-connected. Offsets are visited in the fixed
//	order N, NE, E, SE, S, SW, W, NW expressed as (Δrow, Δcol):
//	(0,1) (1,1) (1,0) (1,-1) (0,-1) (-1,-1) (-1,0) (-1,1).
//
// Complexity:
//
//   - Mark, Classify, HasAdjacentUnknown: O(1).
//   - MarkUnreachable, Count:             O(size²).
//   - AddEdge, HasEdge:                   O(deg) linear scan.
//
// Errors:
//
//   - ErrEmptyGrid:     grid or graph created with no cells.
//   - ErrOutOfBounds:   cell or vertex outside the map.
//   - ErrInvalidLayout: non-positive map size or cell size.
package gridgraph
