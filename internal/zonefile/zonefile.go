// Package zonefile loads zones from GeoJSON feature collections. Loading is
// deliberately lenient: callers scan candidate files in bulk, so every
// failure mode degrades to a smaller (possibly empty) zone list plus
// diagnostics rather than an error. Entity constructors stay strict; the
// tolerant policy lives only here.
package zonefile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"zonewatch/internal/model"
)

// featureCollection mirrors the top-level GeoJSON shape. Pointer fields
// distinguish a missing key from an empty value; features stay raw so one
// undecodable feature cannot poison the rest of the file.
type featureCollection struct {
	Type     *string            `json:"type"`
	Features *[]json.RawMessage `json:"features"`
}

type feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   *geometryBlock         `json:"geometry"`
}

type geometryBlock struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// LoadZones reads a GeoJSON file and returns the zones it could extract plus
// one diagnostic per skipped feature or file-level problem. It never fails:
// a missing or undecodable file yields an empty list. Diagnostics are also
// logged so bulk callers that ignore them still leave a trace.
func LoadZones(path string) ([]*model.Zone, []string) {
	f, err := os.Open(path)
	if err != nil {
		return nil, warn(fmt.Sprintf("zone file %s could not be opened: %v", path, err))
	}
	defer f.Close()

	var fc featureCollection
	if err := json.NewDecoder(f).Decode(&fc); err != nil {
		return nil, warn(fmt.Sprintf("zone file %s is not valid JSON: %v", path, err))
	}

	if fc.Features == nil {
		return nil, warn(fmt.Sprintf("zone file %s contains no field features", path))
	}
	if fc.Type == nil {
		return nil, warn(fmt.Sprintf("zone file %s contains no field type", path))
	}

	var diags []string
	if len(*fc.Features) == 0 {
		diags = warn(fmt.Sprintf("zone file %s contains an empty feature list", path))
	}

	var zones []*model.Zone
	for i, raw := range *fc.Features {
		var feat feature
		if err := json.Unmarshal(raw, &feat); err != nil {
			diags = append(diags, warn(fmt.Sprintf("feature %d is not a decodable feature record; skipping", i))...)
			continue
		}
		if feat.Type != "Feature" {
			diags = append(diags, warn(fmt.Sprintf("feature %d has type %q, not Feature; skipping", i, feat.Type))...)
			continue
		}
		zoneType, ok := feat.Properties["zoneType"].(string)
		if !ok {
			diags = append(diags, warn(fmt.Sprintf("feature %d has no zoneType property; skipping", i))...)
			continue
		}
		if feat.Geometry == nil {
			diags = append(diags, warn(fmt.Sprintf("feature %d has no geometry; skipping", i))...)
			continue
		}
		if feat.Geometry.Type != "Polygon" {
			diags = append(diags, warn(fmt.Sprintf("feature %d has geometry type %q, not Polygon; skipping", i, feat.Geometry.Type))...)
			continue
		}

		zone, err := model.NewZone(zoneType, feat.Geometry.Coordinates)
		if err != nil {
			diags = append(diags, warn(fmt.Sprintf("feature %d has invalid coordinates: %v; skipping", i, err))...)
			continue
		}
		zones = append(zones, zone)
	}

	return zones, diags
}

func warn(msg string) []string {
	log.Printf("zonefile: %s", msg)
	return []string{msg}
}
