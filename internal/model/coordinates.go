package model

import (
	"fmt"
	"math"
)

// ValidateCoordinates ensures that coords is a non-empty list of [x, y] pairs
// with finite components. Shared by the Vehicle and Zone constructors, which
// must reject bad input before storing anything.
func ValidateCoordinates(coords [][]float64) error {
	if len(coords) == 0 {
		return fmt.Errorf("%w: coordinates must be a non-empty list of coordinate pairs", ErrInvalidCoordinates)
	}

	for i, pair := range coords {
		// A flat list of numbers decodes as pairs of the wrong arity; it is
		// rejected here rather than reinterpreted.
		if len(pair) != 2 {
			return fmt.Errorf("%w: coordinate %d has %d components, want 2", ErrInvalidCoordinates, i, len(pair))
		}
		for _, v := range pair {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: coordinate %d has a non-finite component", ErrInvalidCoordinates, i)
			}
		}
	}

	return nil
}
