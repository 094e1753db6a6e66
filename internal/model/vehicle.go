package model

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"zonewatch/internal/geometry"
)

// BufferExpansionRate is the worst-case vehicle speed in m/s used to grow a
// vehicle's boundary during a communication gap.
const BufferExpansionRate = 3.0

// Vehicle is a polygonal vehicle footprint in planar meters. The outline is
// fixed at construction; the update age tracks how long ago the position was
// last confirmed and drives the uncertainty buffer in Bounds.
//
// A Vehicle is not safe for concurrent use: SetUpdateAge must not race with a
// predicate evaluation reading Bounds.
type Vehicle struct {
	ring      orb.Ring
	updateAge float64
}

// NewVehicle validates and deep-copies the boundary vertices. The update age
// starts at zero (position just confirmed).
func NewVehicle(vertices [][]float64) (*Vehicle, error) {
	if err := ValidateCoordinates(vertices); err != nil {
		return nil, err
	}

	ring := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		ring = append(ring, orb.Point{v[0], v[1]})
	}
	// Close the ring per orb convention.
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return &Vehicle{ring: ring}, nil
}

// SetUpdateAge records the seconds elapsed since the last confirmed position.
// A negative or non-finite age fails with ErrInvalidAge and leaves the stored
// age unchanged.
func (v *Vehicle) SetUpdateAge(age float64) error {
	if math.IsNaN(age) || math.IsInf(age, 0) || age < 0 {
		return fmt.Errorf("%w: age must be a non-negative finite number, got %v", ErrInvalidAge, age)
	}
	v.updateAge = age
	return nil
}

// UpdateAge returns the seconds elapsed since the last confirmed position.
func (v *Vehicle) UpdateAge() float64 {
	return v.updateAge
}

// Bounds returns the vehicle's current boundary polygon. With no
// communication delay the raw outline is returned as-is; offsetting by zero
// is not guaranteed to be an exact identity, so the branch is required for
// correctness. With a delay the outline is offset outward by
// updateAge * BufferExpansionRate using a mitre join, so corners stay sharp
// and the envelope never underestimates possible displacement.
func (v *Vehicle) Bounds() orb.Polygon {
	if v.updateAge == 0 {
		return orb.Polygon{v.ring}
	}

	dist := v.updateAge * BufferExpansionRate
	return orb.Polygon{geometry.ExpandRing(v.ring, dist)}
}
