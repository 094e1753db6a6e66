package worker

import (
	"log"

	"zonewatch/internal/service/zone"
)

// StartAllWorkers initializes and starts all background workers
func StartAllWorkers(registry *zone.Registry, zoneFile string) {
	log.Println("Starting all workers...")

	StartZoneReloadWorker(registry, zoneFile)

	log.Println("All workers started")
}
