package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles Prometheus metrics for the query surface.
type Collector struct {
	gatherer prometheus.Gatherer

	PredicateEvaluations *prometheus.CounterVec
	ZonesLoaded          prometheus.Gauge
}

// NewCollector registers the metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "predicate_evaluations_total",
		Help: "Total number of predicate evaluations, labeled by predicate and boolean result.",
	}, []string{"predicate", "result"})

	zonesLoaded := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "zones_loaded",
		Help: "Current number of zones in the registry.",
	})

	reg.MustRegister(evaluations, zonesLoaded)

	return &Collector{
		gatherer:             gatherer,
		PredicateEvaluations: evaluations,
		ZonesLoaded:          zonesLoaded,
	}
}

// RecordEvaluation counts one predicate evaluation and its outcome.
func (c *Collector) RecordEvaluation(predicate string, result bool) {
	c.PredicateEvaluations.WithLabelValues(predicate, strconv.FormatBool(result)).Inc()
}

// Handler returns an HTTP handler exposing the collector's metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
