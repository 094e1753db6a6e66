package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zonewatch/internal/observability"
	"zonewatch/internal/service/zone"
)

// SetupMainHandlers registers the main application endpoints
func SetupMainHandlers(router *gin.RouterGroup, registry *zone.Registry, collector *observability.Collector) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"zones":  registry.Count(),
		})
	})

	router.GET("/metrics", gin.WrapH(collector.Handler()))
}
