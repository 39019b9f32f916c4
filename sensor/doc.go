// Package sensor defines the ray-probe contract an exploring agent relies on.
//
// What:
//
//	A Sensor answers one question: casting a ray from origin along
//	direction, does it hit something within maxRange, and if so where and
//	what. The category of the thing hit is resolved once, at the sensor
//	boundary, into the closed Collider enumeration so callers never
//	compare tags.
//
// Range:
//
//	Hits are detected up to maxRange world units along the direction,
//	whatever its length. A miss is credited to ProbePoint, which scales the
//	raw direction by maxRange; Directions are not normalized, so a diagonal
//	miss lands on the diagonal neighbor cell.
//
// Directions:
//
//	The eight sweep directions follow gridgraph.Conn8:
//	N, NE, E, SE, S, SW, W, NW.
package sensor
