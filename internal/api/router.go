package api

import (
	"github.com/gin-gonic/gin"

	routes "zonewatch/internal/api/handlers"
	"zonewatch/internal/observability"
	"zonewatch/internal/service/zone"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, registry *zone.Registry, collector *observability.Collector) {
	// API group
	api := r.Group("/api")

	// Setup main handlers
	routes.SetupMainHandlers(r.Group(""), registry, collector)

	// Setup query handlers
	routes.SetupQueryHandlers(api, registry, collector)
}
