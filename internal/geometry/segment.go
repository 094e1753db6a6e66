// Package geometry provides the planar predicates the occupancy engine is
// built on: segment intersection, boundary-inclusive point location, polygon
// intersection and containment, and mitred ring offsetting. All functions
// operate on orb types and expect closed rings (first point == last point).
package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// epsilon absorbs floating-point noise in orientation tests. Coordinates are
// meters with magnitudes in the tens, so cross products carry noise many
// orders of magnitude below this.
const epsilon = 1e-9

// cross returns the z component of (b-a) x (c-a). Positive when c lies to
// the left of the directed line a->b.
func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// inSegmentBox reports whether q lies within the bounding box of segment ab,
// with tolerance. Only meaningful once q is known to be collinear with ab.
func inSegmentBox(a, b, q orb.Point) bool {
	return q[0] <= math.Max(a[0], b[0])+epsilon && q[0] >= math.Min(a[0], b[0])-epsilon &&
		q[1] <= math.Max(a[1], b[1])+epsilon && q[1] >= math.Min(a[1], b[1])-epsilon
}

// PointOnSegment reports whether q lies on segment ab, endpoints included.
func PointOnSegment(a, b, q orb.Point) bool {
	return math.Abs(cross(a, b, q)) <= epsilon && inSegmentBox(a, b, q)
}

// SegmentsIntersect reports whether segments p1p2 and p3p4 share any point.
// Shared endpoints and collinear overlap count as intersection.
func SegmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > epsilon && d2 < -epsilon) || (d1 < -epsilon && d2 > epsilon)) &&
		((d3 > epsilon && d4 < -epsilon) || (d3 < -epsilon && d4 > epsilon)) {
		return true
	}

	// Collinear and touching cases
	if math.Abs(d1) <= epsilon && inSegmentBox(p3, p4, p1) {
		return true
	}
	if math.Abs(d2) <= epsilon && inSegmentBox(p3, p4, p2) {
		return true
	}
	if math.Abs(d3) <= epsilon && inSegmentBox(p1, p2, p3) {
		return true
	}
	if math.Abs(d4) <= epsilon && inSegmentBox(p1, p2, p4) {
		return true
	}

	return false
}

// SegmentsProperlyCross reports whether the interiors of segments p1p2 and
// p3p4 cross. Touching at an endpoint or running collinear does not count,
// which is what containment needs: boundary contact is allowed, passing
// through is not.
func SegmentsProperlyCross(p1, p2, p3, p4 orb.Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	return ((d1 > epsilon && d2 < -epsilon) || (d1 < -epsilon && d2 > epsilon)) &&
		((d3 > epsilon && d4 < -epsilon) || (d3 < -epsilon && d4 > epsilon))
}
