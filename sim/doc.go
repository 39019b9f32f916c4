// Package sim provides in-process stand-ins for the collaborators an
// Explorer drives.
//
// What:
//
//   - World indexes static obstacle footprints (orb.Bound) in an R-tree and
//     answers sensor probes by sampling the ray against the candidates the
//     index returns for the ray's bounding box.
//   - Drone flies in a straight line toward its destination at a fixed
//     speed per step.
//   - Markers is the uuid-keyed registry of target markers and tells which
//     ones the drone touches.
//   - Simulation steps all of them: one explorer tick, one drone move, then
//     arrival events for markers the drone has just started touching.
//
// Complexity:
//
//   - Probe: one R-tree search plus O(maxRange/probeStep × candidates).
//   - Touching: O(live markers).
//
// Errors:
//
//   - ErrInvalidParam:  non-positive speed, radius or probe step.
//   - ErrEmptyObstacle: obstacle footprint with no area.
//   - ErrUnknownMarker: despawn of a marker that is not live.
//   - ErrTickBudget:    Run ended before exploration completed.
package sim
