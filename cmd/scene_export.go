package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb/geojson"

	"zonewatch/internal/model"
)

// exportSceneToGeoJSON exports zones and vehicle bounds to a GeoJSON file for
// visualization. The delayed vehicle is exported twice: at its confirmed
// position and with its current uncertainty envelope.
func exportSceneToGeoJSON(zones []*model.Zone, vehicles []*model.Vehicle, delayed *model.Vehicle, outputFile string) {
	log.Printf("Exporting %d zones and %d vehicles to GeoJSON file: %s", len(zones), len(vehicles), outputFile)

	// Create a GeoJSON FeatureCollection
	fc := geojson.NewFeatureCollection()

	// Add each zone as a feature
	for _, z := range zones {
		feature := geojson.NewFeature(z.Bounds())
		feature.Properties["zoneType"] = z.Type()
		fc.Append(feature)
	}

	// Add each vehicle at its confirmed position
	delayedAge := delayed.UpdateAge()
	_ = delayed.SetUpdateAge(0)
	for i, v := range vehicles {
		feature := geojson.NewFeature(v.Bounds())
		feature.Properties["name"] = fmt.Sprintf("vehicle %d", i+1)
		fc.Append(feature)
	}

	// Add the uncertainty envelope of the delayed vehicle
	if delayedAge > 0 {
		_ = delayed.SetUpdateAge(delayedAge)
		feature := geojson.NewFeature(delayed.Bounds())
		feature.Properties["name"] = "delayed vehicle envelope"
		feature.Properties["update_age"] = delayedAge
		fc.Append(feature)
	}

	// Marshal the FeatureCollection to JSON
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal scene to GeoJSON: %v", err)
		return
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		log.Printf("Failed to write scene file: %v", err)
		return
	}

	log.Printf("Scene exported to %s", outputFile)
}
