// Package occupancy holds the four boolean relations between vehicles and
// zones. All predicates are pure and stateless, and always evaluate against
// each vehicle's current bounds, so the uncertainty buffer from a stale
// position update affects every test transparently.
//
// Argument kinds are enforced by the type system; ErrTypeMismatch remains for
// the one wrong kind still expressible in Go, a nil entity.
package occupancy

import (
	"fmt"

	"github.com/paulmach/orb"

	"zonewatch/internal/geometry"
	"zonewatch/internal/model"
)

// Contained reports whether the vehicle's bounds lie wholly inside the
// zone's bounds, boundary contact allowed. Strictly stronger than
// Intersects: a vehicle straddling the zone boundary is not contained.
func Contained(zone *model.Zone, vehicle *model.Vehicle) (bool, error) {
	if zone == nil {
		return false, fmt.Errorf("%w: zone must be a Zone", model.ErrTypeMismatch)
	}
	if vehicle == nil {
		return false, fmt.Errorf("%w: vehicle must be a Vehicle", model.ErrTypeMismatch)
	}
	return geometry.PolygonContains(zone.Bounds(), vehicle.Bounds()), nil
}

// Intersects reports whether the vehicle's bounds share any point with the
// zone's bounds.
func Intersects(zone *model.Zone, vehicle *model.Vehicle) (bool, error) {
	if zone == nil {
		return false, fmt.Errorf("%w: zone must be a Zone", model.ErrTypeMismatch)
	}
	if vehicle == nil {
		return false, fmt.Errorf("%w: vehicle must be a Vehicle", model.ErrTypeMismatch)
	}
	return geometry.PolygonsIntersect(zone.Bounds(), vehicle.Bounds()), nil
}

// IntersectsOccupied reports whether target intersects a zone that at least
// one vehicle in others also intersects. When target misses the zone the
// result is false without examining others. Target is not filtered out of
// others: passing it there counts as self-occupation, so callers pass only
// genuinely distinct vehicles.
func IntersectsOccupied(zone *model.Zone, target *model.Vehicle, others []*model.Vehicle) (bool, error) {
	if zone == nil {
		return false, fmt.Errorf("%w: zone must be a Zone", model.ErrTypeMismatch)
	}
	if target == nil {
		return false, fmt.Errorf("%w: target must be a Vehicle", model.ErrTypeMismatch)
	}
	for i, v := range others {
		if v == nil {
			return false, fmt.Errorf("%w: others[%d] must be a Vehicle", model.ErrTypeMismatch, i)
		}
	}

	targetIntersects, err := Intersects(zone, target)
	if err != nil {
		return false, err
	}
	if !targetIntersects {
		return false, nil
	}

	zoneBounds := zone.Bounds()
	for _, v := range others {
		if geometry.PolygonsIntersect(zoneBounds, v.Bounds()) {
			return true, nil
		}
	}
	return false, nil
}

// AnyPairIntersects reports whether any two distinct vehicles have
// intersecting bounds, each buffer-expanded per its own update age. Every
// unordered pair is examined at most once; the result does not depend on
// input order.
func AnyPairIntersects(vehicles []*model.Vehicle) (bool, error) {
	for i, v := range vehicles {
		if v == nil {
			return false, fmt.Errorf("%w: vehicles[%d] must be a Vehicle", model.ErrTypeMismatch, i)
		}
	}

	bounds := make([]orb.Polygon, len(vehicles))
	for i, v := range vehicles {
		bounds[i] = v.Bounds()
	}

	for i := 0; i < len(bounds); i++ {
		for j := i + 1; j < len(bounds); j++ {
			if geometry.PolygonsIntersect(bounds[i], bounds[j]) {
				return true, nil
			}
		}
	}
	return false, nil
}
