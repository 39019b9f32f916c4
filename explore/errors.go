package explore

import "errors"

var (
	// ErrNilCollaborator indicates a required agent, sensor or marker factory was nil.
	ErrNilCollaborator = errors.New("explore: nil collaborator")
	// ErrInvalidRange indicates a non-positive sensing range.
	ErrInvalidRange = errors.New("explore: sensing range must be positive")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("explore: already started")
	// ErrStaleMarkerArrival reports an arrival for a marker that is not the live target.
	// It is logged and counted, never returned to the caller.
	ErrStaleMarkerArrival = errors.New("explore: arrival at stale marker")
)
