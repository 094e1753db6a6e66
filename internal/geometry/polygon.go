package geometry

import "github.com/paulmach/orb"

// PolygonsIntersect reports whether polygons a and b share any point,
// boundary contact included. After a bounding-box reject it checks edge
// pairs across all rings, then mutual vertex containment, which covers the
// one-wholly-inside-the-other cases (including a sitting inside a hole of b,
// where no vertex of a lands inside b).
func PolygonsIntersect(a, b orb.Polygon) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	for _, ra := range a {
		for _, rb := range b {
			for i := 0; i < len(ra)-1; i++ {
				for j := 0; j < len(rb)-1; j++ {
					if SegmentsIntersect(ra[i], ra[i+1], rb[j], rb[j+1]) {
						return true
					}
				}
			}
		}
	}

	for _, ra := range a {
		for _, v := range ra {
			if PointInPolygon(b, v) {
				return true
			}
		}
	}
	for _, rb := range b {
		for _, v := range rb {
			if PointInPolygon(a, v) {
				return true
			}
		}
	}

	return false
}

// PolygonContains reports whether inner lies wholly inside outer, boundary
// contact allowed. Every vertex and edge midpoint of inner must be in outer,
// no inner edge may properly cross an outer ring, and no hole of outer may
// poke into inner's interior.
func PolygonContains(outer, inner orb.Polygon) bool {
	if len(outer) == 0 || len(inner) == 0 {
		return false
	}
	if !outer.Bound().Intersects(inner.Bound()) {
		return false
	}

	for _, ri := range inner {
		for _, v := range ri {
			if !PointInPolygon(outer, v) {
				return false
			}
		}
		for i := 0; i < len(ri)-1; i++ {
			// Midpoints catch edges that leave and re-enter through the
			// boundary without a proper crossing (e.g. along a shared edge).
			mid := orb.Point{(ri[i][0] + ri[i+1][0]) / 2, (ri[i][1] + ri[i+1][1]) / 2}
			if !PointInPolygon(outer, mid) {
				return false
			}
			for _, ro := range outer {
				for j := 0; j < len(ro)-1; j++ {
					if SegmentsProperlyCross(ri[i], ri[i+1], ro[j], ro[j+1]) {
						return false
					}
				}
			}
		}
	}

	// A hole of outer lying strictly inside inner means inner covers ground
	// that outer excludes.
	for _, hole := range outer[1:] {
		for _, v := range hole {
			if PointInPolygon(inner, v) && !onAnyRing(inner, v) {
				return false
			}
		}
	}

	return true
}

func onAnyRing(poly orb.Polygon, p orb.Point) bool {
	for _, ring := range poly {
		if PointOnRing(ring, p) {
			return true
		}
	}
	return false
}
