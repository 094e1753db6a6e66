package model

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Zone is a fixed planar region defined by a shell ring and optional hole
// rings, tagged with a type label such as "autonomousOperatingZone" or
// "singleTruckZone". Zones are immutable after construction and safe to share
// across concurrent predicate evaluations.
type Zone struct {
	zoneType string
	polygon  orb.Polygon
}

// NewZone builds a zone from a ring list in GeoJSON order: the first ring is
// the shell, any further rings are holes. Every ring is validated and
// deep-copied.
func NewZone(zoneType string, rings [][][]float64) (*Zone, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("%w: coordinates must contain at least a shell ring", ErrInvalidZoneGeometry)
	}

	polygon := make(orb.Polygon, 0, len(rings))
	for _, ring := range rings {
		if err := ValidateCoordinates(ring); err != nil {
			return nil, err
		}

		r := make(orb.Ring, 0, len(ring)+1)
		for _, v := range ring {
			r = append(r, orb.Point{v[0], v[1]})
		}
		if r[0] != r[len(r)-1] {
			r = append(r, r[0])
		}
		polygon = append(polygon, r)
	}

	return &Zone{zoneType: zoneType, polygon: polygon}, nil
}

// Type returns the zone's type label.
func (z *Zone) Type() string {
	return z.zoneType
}

// Bounds returns the zone's polygon (shell minus holes).
func (z *Zone) Bounds() orb.Polygon {
	return z.polygon
}
