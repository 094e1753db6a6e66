package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZone(t *testing.T) {
	zone, err := NewZone("singleTruckZone", [][][]float64{
		{{0, 0}, {6, 0}, {6, 6}, {0, 6}},
	})
	require.NoError(t, err)

	assert.Equal(t, "singleTruckZone", zone.Type())
	require.Len(t, zone.Bounds(), 1)
	assert.Equal(t, zone.Bounds()[0][0], zone.Bounds()[0][len(zone.Bounds()[0])-1])
}

func TestNewZone_WithHoles(t *testing.T) {
	zone, err := NewZone("autonomousOperatingZone", [][][]float64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{4, 4}, {6, 4}, {6, 6}, {4, 6}},
	})
	require.NoError(t, err)
	assert.Len(t, zone.Bounds(), 2)
}

func TestNewZone_InvalidGeometry(t *testing.T) {
	_, err := NewZone("z", nil)
	assert.ErrorIs(t, err, ErrInvalidZoneGeometry)

	_, err = NewZone("z", [][][]float64{})
	assert.ErrorIs(t, err, ErrInvalidZoneGeometry)
}

func TestNewZone_InvalidRing(t *testing.T) {
	// Bad shell
	_, err := NewZone("z", [][][]float64{{}})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	// Good shell, bad hole
	_, err = NewZone("z", [][][]float64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{4, 4, 4}},
	})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestNewZone_CopiesInput(t *testing.T) {
	rings := [][][]float64{{{0, 0}, {6, 0}, {6, 6}, {0, 6}}}
	zone, err := NewZone("z", rings)
	require.NoError(t, err)

	rings[0][0][0] = 99
	assert.Equal(t, 0.0, zone.Bounds()[0][0][0])
}
