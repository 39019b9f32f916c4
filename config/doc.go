// Package config loads exploration run parameters from .env files and the
// environment.
//
// Keys and defaults:
//
//	EXPLORE_MAP_SIZE        10    cells per side
//	EXPLORE_CELL_SIZE       8     world units per cell
//	EXPLORE_SENSOR_RANGE    11    ray length in world units
//	EXPLORE_MAX_TICKS       5000  tick budget of a simulated run
//	EXPLORE_AGENT_SPEED     4     world units per tick
//	EXPLORE_ARRIVAL_RADIUS  1     marker touch distance
//	EXPLORE_PROBE_STEP      0.25  ray sampling interval
//
// Precedence:
//
//	Variables already set in the environment win over .env entries, which
//	win over the defaults. Empty values fall back to the default.
//
// Errors:
//
//   - ErrInvalidConfig: a value that does not parse or is not positive.
package config
