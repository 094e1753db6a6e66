package zone

import (
	"log"
	"sync"
	"time"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"zonewatch/internal/geometry"
	"zonewatch/internal/model"
	"zonewatch/internal/service/storage"
	"zonewatch/internal/util"
	"zonewatch/internal/zonefile"
)

// ZoneSpatial represents a zone with its spatial information for R-tree indexing
type ZoneSpatial struct {
	ID          string      // Registry identifier
	BoundingBox orb.Bound   // Bounding box of the zone polygon
	Zone        *model.Zone // Reference to the zone object
}

// Bounds implements the rtreego.Spatial interface
// Returns the bounding rectangle of the zone for R-tree indexing
func (z *ZoneSpatial) Bounds() rtreego.Rect {
	// Convert orb.Bound to rtreego.Rect format
	minX, minY := z.BoundingBox.Min[0], z.BoundingBox.Min[1]
	maxX, maxY := z.BoundingBox.Max[0], z.BoundingBox.Max[1]

	rect, _ := rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{maxX - minX, maxY - minY},
	)

	return rect
}

// Registry holds the loaded zones and a spatial index over them. Zones are
// immutable, so lookups hand out shared pointers; only reloads swap state.
type Registry struct {
	storage      storage.Storage[string, *model.Zone]
	spatialIndex *rtreego.Rtree // R-tree spatial index
	indexMutex   sync.RWMutex   // Mutex for thread-safe index operations
}

var (
	registryInstance *Registry
	registryOnce     sync.Once
)

// GetRegistry returns the singleton instance of the zone Registry
func GetRegistry() *Registry {
	registryOnce.Do(func() {
		registryInstance = NewRegistry()
	})
	return registryInstance
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		storage:      storage.NewMemoryStorage[string, *model.Zone](),
		spatialIndex: rtreego.NewTree(2, 2, 8), // 2D index sized for small zone fleets
	}
}

// LoadFromFile replaces the registry contents with the zones parsed from a
// GeoJSON file. Parsing is lenient: unusable files or features are reported
// as diagnostics and an empty or partial load is not an error.
func (r *Registry) LoadFromFile(path string) []string {
	startTime := time.Now()

	zones, diags := zonefile.LoadZones(path)

	r.indexMutex.Lock()
	defer r.indexMutex.Unlock()

	r.storage.Clear()
	r.spatialIndex = rtreego.NewTree(2, 2, 8)

	for _, zone := range zones {
		id := util.ShortUUID()
		r.storage.Set(id, zone)
		r.spatialIndex.Insert(&ZoneSpatial{
			ID:          id,
			BoundingBox: zone.Bounds().Bound(),
			Zone:        zone,
		})
	}

	log.Printf("Zone registry loaded %d zones from %s in %v (%d diagnostics)",
		len(zones), path, time.Since(startTime), len(diags))

	return diags
}

// Add inserts a single constructed zone, for callers that build zones
// directly instead of loading a file.
func (r *Registry) Add(zone *model.Zone) string {
	r.indexMutex.Lock()
	defer r.indexMutex.Unlock()

	id := util.ShortUUID()
	r.storage.Set(id, zone)
	r.spatialIndex.Insert(&ZoneSpatial{
		ID:          id,
		BoundingBox: zone.Bounds().Bound(),
		Zone:        zone,
	})
	return id
}

// ZonesByType returns all zones carrying the given type label
func (r *Registry) ZonesByType(zoneType string) []*model.Zone {
	var result []*model.Zone
	r.storage.ForEach(func(id string, zone *model.Zone) bool {
		if zone.Type() == zoneType {
			result = append(result, zone)
		}
		return true
	})
	return result
}

// AllZones returns every loaded zone
func (r *Registry) AllZones() []*model.Zone {
	return r.storage.GetAllValues()
}

// ZonesAt returns all zones containing the given point
func (r *Registry) ZonesAt(p orb.Point) []*model.Zone {
	r.indexMutex.RLock()
	defer r.indexMutex.RUnlock()

	// Filter candidates through the R-tree first, then run the precise
	// point-in-polygon check on each hit.
	searchRect, err := rtreego.NewRect(
		rtreego.Point{p[0], p[1]},
		[]float64{0.001, 0.001}, // Small search box for point queries
	)
	if err != nil {
		log.Printf("invalid search rect: %v", err)
		return nil
	}

	spatialResults := r.spatialIndex.SearchIntersect(searchRect)
	if len(spatialResults) == 0 {
		return nil
	}

	var result []*model.Zone
	for _, item := range spatialResults {
		zoneSpatial := item.(*ZoneSpatial)
		if geometry.PointInPolygon(zoneSpatial.Zone.Bounds(), p) {
			result = append(result, zoneSpatial.Zone)
		}
	}

	return result
}

// Count returns the number of loaded zones
func (r *Registry) Count() int {
	return r.storage.Count()
}
