package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonewatch/internal/model"
	"zonewatch/internal/observability"
	"zonewatch/internal/service/zone"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := zone.NewRegistry()
	truck, err := model.NewZone("singleTruckZone", [][][]float64{
		{{0, 0}, {6, 0}, {6, 6}, {0, 6}},
	})
	require.NoError(t, err)
	registry.Add(truck)

	collector := observability.NewCollector(prometheus.NewRegistry())

	r := gin.New()
	SetupMainHandlers(r.Group(""), registry, collector)
	SetupQueryHandlers(r.Group("/api"), registry, collector)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"zones":1`)
}

func TestContainedEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/queries/contained", `{
		"zone_type": "singleTruckZone",
		"vehicle": {"vertices": [[1, 1], [2, 1], [2, 2], [1, 2]]}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":true`)
}

func TestContainedEndpoint_BufferPushesOut(t *testing.T) {
	r := newTestRouter(t)

	// The same vehicle with 10 s of stale telemetry grows past the zone.
	w := postJSON(r, "/api/queries/contained", `{
		"zone_type": "singleTruckZone",
		"vehicle": {"vertices": [[1, 1], [2, 1], [2, 2], [1, 2]], "update_age": 10}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":false`)
}

func TestIntersectsEndpoint_UnknownZoneType(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/queries/intersects", `{
		"zone_type": "noSuchZone",
		"vehicle": {"vertices": [[1, 1], [2, 1], [2, 2], [1, 2]]}
	}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntersectsEndpoint_InvalidVehicle(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/queries/intersects", `{
		"zone_type": "singleTruckZone",
		"vehicle": {"vertices": [[1], [2]]}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntersectsEndpoint_NegativeAge(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/queries/intersects", `{
		"zone_type": "singleTruckZone",
		"vehicle": {"vertices": [[1, 1], [2, 1], [2, 2], [1, 2]], "update_age": -5}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOccupiedEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/queries/occupied", `{
		"zone_type": "singleTruckZone",
		"vehicle": {"vertices": [[1, 1], [2, 1], [2, 2], [1, 2]]},
		"others": [{"vertices": [[4, 4], [5, 4], [5, 5], [4, 5]]}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":true`)

	w = postJSON(r, "/api/queries/occupied", `{
		"zone_type": "singleTruckZone",
		"vehicle": {"vertices": [[1, 1], [2, 1], [2, 2], [1, 2]]},
		"others": [{"vertices": [[40, 40], [50, 40], [50, 50], [40, 50]]}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":false`)
}

func TestAnyPairEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/queries/any-pair", `{
		"vehicles": [
			{"vertices": [[-0.1, -0.1], [-0.1, 0.1], [0.1, 0.1], [0.1, -0.1]]},
			{"vertices": [[9.9, 9.9], [9.9, 10.1], [10.1, 10.1], [10.1, 9.9]]}
		]
	}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":false`)

	w = postJSON(r, "/api/queries/any-pair", `{
		"vehicles": [
			{"vertices": [[-0.1, -0.1], [-0.1, 0.1], [0.1, 0.1], [0.1, -0.1]], "update_age": 10},
			{"vertices": [[9.9, 9.9], [9.9, 10.1], [10.1, 10.1], [10.1, 9.9]]}
		]
	}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":true`)
}

func TestZonesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/queries/zones?type=singleTruckZone", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "singleTruckZone")
}
