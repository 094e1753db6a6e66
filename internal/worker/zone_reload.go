package worker

import (
	"log"
	"time"

	"zonewatch/internal/config"
	"zonewatch/internal/service/zone"
)

// StartZoneReloadWorker starts the worker that periodically re-reads the zone
// file so edits to the zone definitions are picked up without a restart.
// Reload is lenient like the initial load: a broken file empties the registry
// and leaves diagnostics in the log.
func StartZoneReloadWorker(registry *zone.Registry, zoneFile string) {
	ticker := time.NewTicker(config.ZoneReloadInterval)
	go func() {
		for range ticker.C {
			log.Println("Zone reload worker: re-reading zone file")
			registry.LoadFromFile(zoneFile)
		}
	}()

	log.Println("Zone reload worker started with interval:", config.ZoneReloadInterval)
}
