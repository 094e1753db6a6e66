package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// ExpandRing offsets a closed ring outward by dist meters using mitre joins:
// each edge is shifted along its outward normal and adjacent shifted edges
// are intersected, so corners stay sharp and the result is a conservative
// superset of the input. dist <= 0 returns an untouched copy.
func ExpandRing(ring orb.Ring, dist float64) orb.Ring {
	pts := distinctVertices(ring)
	if dist <= 0 || len(pts) < 3 {
		return append(orb.Ring(nil), ring...)
	}

	// For a counterclockwise ring the interior lies to the left of travel,
	// so the outward normal of edge (dx, dy) is (dy, -dx). Clockwise rings
	// flip the sign.
	sign := 1.0
	if ring.Orientation() == orb.CW {
		sign = -1.0
	}

	n := len(pts)
	out := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]

		n1 := outwardNormal(prev, cur, sign)
		n2 := outwardNormal(cur, next, sign)

		// Shift both incident edges outward and intersect their carrier
		// lines to form the mitre vertex.
		p1 := orb.Point{prev[0] + n1[0]*dist, prev[1] + n1[1]*dist}
		d1 := orb.Point{cur[0] - prev[0], cur[1] - prev[1]}
		p2 := orb.Point{cur[0] + n2[0]*dist, cur[1] + n2[1]*dist}
		d2 := orb.Point{next[0] - cur[0], next[1] - cur[1]}

		v, ok := lineIntersection(p1, d1, p2, d2)
		if !ok {
			// Collinear edges share a normal; offset the vertex directly.
			v = orb.Point{cur[0] + n1[0]*dist, cur[1] + n1[1]*dist}
		}
		out = append(out, v)
	}

	out = append(out, out[0])
	return out
}

// distinctVertices strips the closing point and consecutive duplicates.
func distinctVertices(ring orb.Ring) []orb.Point {
	pts := make([]orb.Point, 0, len(ring))
	for _, p := range ring {
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// outwardNormal returns the unit normal of edge a->b pointing away from the
// ring interior, per the orientation sign.
func outwardNormal(a, b orb.Point, sign float64) orb.Point {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	l := math.Hypot(dx, dy)
	return orb.Point{sign * dy / l, -sign * dx / l}
}

// lineIntersection solves p1 + t*d1 == p2 + s*d2. ok is false when the
// lines are (near) parallel.
func lineIntersection(p1, d1, p2, d2 orb.Point) (orb.Point, bool) {
	denom := d1[0]*d2[1] - d1[1]*d2[0]
	if math.Abs(denom) < epsilon {
		return orb.Point{}, false
	}
	t := ((p2[0]-p1[0])*d2[1] - (p2[1]-p1[1])*d2[0]) / denom
	return orb.Point{p1[0] + t*d1[0], p1[1] + t*d1[1]}, true
}
