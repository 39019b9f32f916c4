package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid or graph was requested with no cells.
	ErrEmptyGrid = errors.New("gridgraph: map must have at least one cell")
	// ErrOutOfBounds indicates a cell or vertex id lies outside the map.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrInvalidLayout indicates a non-positive map size or cell size.
	ErrInvalidLayout = errors.New("gridgraph: map size and cell size must be positive")
)
