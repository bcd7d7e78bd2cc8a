package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio. Cada instancia usa su propio
// registry para que los tests puedan crear routers sin chocar con el global.
type Metrics struct {
	Registry *prometheus.Registry

	CatalogLoads     *prometheus.CounterVec // result=ok|error
	CatalogSize      prometheus.Gauge
	ViewsRecorded    prometheus.Counter
	StorageFailures  *prometheus.CounterVec // op=get|set
	AdoptionRequests *prometheus.CounterVec // result=accepted|rejected
	HTTPRequests     *prometheus.CounterVec // method, route, status
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		CatalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Catalog source parses by result.",
		}, []string{"result"}),
		CatalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_pets",
			Help: "Number of pets in the memoized catalog.",
		}),
		ViewsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recency_views_recorded_total",
			Help: "Pet detail views recorded into visitor recency lists.",
		}),
		StorageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recency_storage_failures_total",
			Help: "Recency storage operations that failed and were degraded.",
		}, []string{"op"}),
		AdoptionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adoption_requests_total",
			Help: "Adoption interest submissions by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.CatalogLoads,
		m.CatalogSize,
		m.ViewsRecorded,
		m.StorageFailures,
		m.AdoptionRequests,
		m.HTTPRequests,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
