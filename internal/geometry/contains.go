package geometry

import "github.com/paulmach/orb"

// PointOnRing reports whether p lies on the boundary of the ring.
func PointOnRing(ring orb.Ring, p orb.Point) bool {
	for i := 0; i < len(ring)-1; i++ {
		if PointOnSegment(ring[i], ring[i+1], p) {
			return true
		}
	}
	return false
}

// pointInRing is a ray-casting test counting edge crossings of a rightward
// ray from p. Points exactly on the boundary are not classified reliably;
// callers check PointOnRing first.
func pointInRing(ring orb.Ring, p orb.Point) bool {
	count := 0
	for i := 0; i < len(ring)-1; i++ {
		v1, v2 := ring[i], ring[i+1]
		if (v1[1] > p[1]) != (v2[1] > p[1]) {
			slope := (p[0]-v1[0])*(v2[1]-v1[1]) - (v2[0]-v1[0])*(p[1]-v1[1])
			if v2[1] > v1[1] {
				if slope > 0 {
					count++
				}
			} else {
				if slope < 0 {
					count++
				}
			}
		}
	}
	return count%2 == 1
}

// PointInPolygon reports whether p lies inside the polygon or on its
// boundary. A point strictly inside a hole is outside; a point on a hole's
// boundary is inside (boundary contact counts for every ring).
func PointInPolygon(poly orb.Polygon, p orb.Point) bool {
	if len(poly) == 0 {
		return false
	}

	for _, ring := range poly {
		if PointOnRing(ring, p) {
			return true
		}
	}

	if !pointInRing(poly[0], p) {
		return false
	}
	for _, hole := range poly[1:] {
		if pointInRing(hole, p) {
			return false
		}
	}
	return true
}
