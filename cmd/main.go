package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"zonewatch/internal/api"
	"zonewatch/internal/config"
	"zonewatch/internal/observability"
	"zonewatch/internal/service/zone"
	"zonewatch/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load zones into the registry
	registry := zone.GetRegistry()
	registry.LoadFromFile(cfg.ZoneFile)

	// Register metrics
	collector := observability.NewCollector(nil)
	collector.ZonesLoaded.Set(float64(registry.Count()))

	// Answer the demo questions and export the scene
	runDemo(registry)

	// Start background workers
	worker.StartAllWorkers(registry, cfg.ZoneFile)

	// Setup and run API server
	runAPIServer(cfg, registry, collector)
}

func runAPIServer(cfg config.Config, registry *zone.Registry, collector *observability.Collector) {
	// Initialize Gin router
	r := gin.Default()

	// Configure API routes
	api.SetupRouter(r, registry, collector)

	// Start the server
	if err := r.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run API server: %v", err)
	}
}
