package zone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonewatch/internal/model"
)

const twoZoneFixture = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"zoneType": "autonomousOperatingZone"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[-8, -8], [8, -8], [8, 8], [-8, 8], [-8, -8]]]
			}
		},
		{
			"type": "Feature",
			"properties": {"zoneType": "singleTruckZone"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0, 0], [6, 0], [6, 6], [0, 6], [0, 0]]]
			}
		}
	]
}`

func writeZoneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zones.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRegistry_LoadFromFile(t *testing.T) {
	registry := NewRegistry()
	diags := registry.LoadFromFile(writeZoneFile(t, twoZoneFixture))

	assert.Empty(t, diags)
	assert.Equal(t, 2, registry.Count())

	truckZones := registry.ZonesByType("singleTruckZone")
	require.Len(t, truckZones, 1)
	assert.Equal(t, "singleTruckZone", truckZones[0].Type())

	assert.Empty(t, registry.ZonesByType("noSuchType"))
}

func TestRegistry_LoadReplacesContents(t *testing.T) {
	registry := NewRegistry()
	registry.LoadFromFile(writeZoneFile(t, twoZoneFixture))
	require.Equal(t, 2, registry.Count())

	// A reload from a broken file leaves an empty registry, not an error.
	diags := registry.LoadFromFile(writeZoneFile(t, "broken"))
	assert.NotEmpty(t, diags)
	assert.Equal(t, 0, registry.Count())
	assert.Empty(t, registry.AllZones())
}

func TestRegistry_ZonesAt(t *testing.T) {
	registry := NewRegistry()
	registry.LoadFromFile(writeZoneFile(t, twoZoneFixture))

	// (3, 3) is inside both the operating zone and the truck zone.
	both := registry.ZonesAt(orb.Point{3, 3})
	assert.Len(t, both, 2)

	// (-5, -5) is only inside the operating zone.
	one := registry.ZonesAt(orb.Point{-5, -5})
	require.Len(t, one, 1)
	assert.Equal(t, "autonomousOperatingZone", one[0].Type())

	assert.Empty(t, registry.ZonesAt(orb.Point{100, 100}))
}

func TestRegistry_Add(t *testing.T) {
	registry := NewRegistry()

	z, err := model.NewZone("manual", [][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}})
	require.NoError(t, err)

	id := registry.Add(z)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, registry.Count())
	require.Len(t, registry.ZonesByType("manual"), 1)
	assert.Len(t, registry.ZonesAt(orb.Point{0.5, 0.5}), 1)
}
