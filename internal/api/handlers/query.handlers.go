package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zonewatch/internal/model"
	"zonewatch/internal/observability"
	"zonewatch/internal/service/occupancy"
	"zonewatch/internal/service/zone"
)

// vehiclePayload carries an inline vehicle definition in query requests.
type vehiclePayload struct {
	Vertices  [][]float64 `json:"vertices" binding:"required"`
	UpdateAge float64     `json:"update_age"`
}

type zoneQueryRequest struct {
	ZoneType string         `json:"zone_type" binding:"required"`
	Vehicle  vehiclePayload `json:"vehicle" binding:"required"`
}

type occupiedQueryRequest struct {
	ZoneType string           `json:"zone_type" binding:"required"`
	Vehicle  vehiclePayload   `json:"vehicle" binding:"required"`
	Others   []vehiclePayload `json:"others"`
}

type anyPairQueryRequest struct {
	Vehicles []vehiclePayload `json:"vehicles" binding:"required"`
}

// SetupQueryHandlers registers the predicate query endpoints. Zone arguments
// are resolved by type label against the registry; a query against a type
// with no loaded zones is a 404, an invalid vehicle payload a 400. The
// boolean result is true when the relation holds for any zone of the type.
func SetupQueryHandlers(router *gin.RouterGroup, registry *zone.Registry, collector *observability.Collector) {
	queries := router.Group("/queries")

	queries.GET("/zones", func(c *gin.Context) {
		zones := registry.AllZones()
		if t := c.Query("type"); t != "" {
			zones = registry.ZonesByType(t)
		}

		summaries := make([]gin.H, 0, len(zones))
		for _, z := range zones {
			bound := z.Bounds().Bound()
			summaries = append(summaries, gin.H{
				"type":  z.Type(),
				"rings": len(z.Bounds()),
				"bbox":  []float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]},
			})
		}
		c.JSON(http.StatusOK, gin.H{"zones": summaries})
	})

	queries.POST("/contained", func(c *gin.Context) {
		var req zoneQueryRequest
		if !bindQuery(c, &req) {
			return
		}
		vehicle, ok := buildVehicle(c, req.Vehicle)
		if !ok {
			return
		}
		zones, ok := resolveZones(c, registry, req.ZoneType)
		if !ok {
			return
		}

		result := false
		for _, z := range zones {
			contained, err := occupancy.Contained(z, vehicle)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if contained {
				result = true
				break
			}
		}
		collector.RecordEvaluation("contained", result)
		c.JSON(http.StatusOK, gin.H{"result": result})
	})

	queries.POST("/intersects", func(c *gin.Context) {
		var req zoneQueryRequest
		if !bindQuery(c, &req) {
			return
		}
		vehicle, ok := buildVehicle(c, req.Vehicle)
		if !ok {
			return
		}
		zones, ok := resolveZones(c, registry, req.ZoneType)
		if !ok {
			return
		}

		result := false
		for _, z := range zones {
			intersects, err := occupancy.Intersects(z, vehicle)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if intersects {
				result = true
				break
			}
		}
		collector.RecordEvaluation("intersects", result)
		c.JSON(http.StatusOK, gin.H{"result": result})
	})

	queries.POST("/occupied", func(c *gin.Context) {
		var req occupiedQueryRequest
		if !bindQuery(c, &req) {
			return
		}
		target, ok := buildVehicle(c, req.Vehicle)
		if !ok {
			return
		}
		others := make([]*model.Vehicle, 0, len(req.Others))
		for _, p := range req.Others {
			v, ok := buildVehicle(c, p)
			if !ok {
				return
			}
			others = append(others, v)
		}
		zones, ok := resolveZones(c, registry, req.ZoneType)
		if !ok {
			return
		}

		result := false
		for _, z := range zones {
			occupied, err := occupancy.IntersectsOccupied(z, target, others)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if occupied {
				result = true
				break
			}
		}
		collector.RecordEvaluation("occupied", result)
		c.JSON(http.StatusOK, gin.H{"result": result})
	})

	queries.POST("/any-pair", func(c *gin.Context) {
		var req anyPairQueryRequest
		if !bindQuery(c, &req) {
			return
		}
		vehicles := make([]*model.Vehicle, 0, len(req.Vehicles))
		for _, p := range req.Vehicles {
			v, ok := buildVehicle(c, p)
			if !ok {
				return
			}
			vehicles = append(vehicles, v)
		}

		result, err := occupancy.AnyPairIntersects(vehicles)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		collector.RecordEvaluation("any_pair", result)
		c.JSON(http.StatusOK, gin.H{"result": result})
	})
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func buildVehicle(c *gin.Context, p vehiclePayload) (*model.Vehicle, bool) {
	vehicle, err := model.NewVehicle(p.Vertices)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if err := vehicle.SetUpdateAge(p.UpdateAge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return vehicle, true
}

func resolveZones(c *gin.Context, registry *zone.Registry, zoneType string) ([]*model.Zone, bool) {
	zones := registry.ZonesByType(zoneType)
	if len(zones) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no zones of type " + zoneType})
		return nil, false
	}
	return zones, true
}
