package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the license service. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	SourceLoads     *prometheus.CounterVec
	CachedRecords   prometheus.Gauge
	RequestDuration *prometheus.HistogramVec
	Barcodes        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "dlviewer_cache_hits_total",
			Help: "Record-set reads served from the cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "dlviewer_cache_misses_total",
			Help: "Record-set reads that required a load",
		}),
		SourceLoads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dlviewer_source_loads_total",
			Help: "Load attempts per record source and outcome",
		}, []string{"source", "outcome"}),
		CachedRecords: f.NewGauge(prometheus.GaugeOpts{
			Name: "dlviewer_cached_records",
			Help: "Number of records in the current cache entry",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dlviewer_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		Barcodes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dlviewer_barcodes_rendered_total",
			Help: "Barcode render attempts by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}

// SourceLoad records one load attempt against source. outcome is one of
// "ok", "empty" or "error".
func (m *Metrics) SourceLoad(source, outcome string) {
	if m == nil {
		return
	}
	m.SourceLoads.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) SetCachedRecords(n int) {
	if m == nil {
		return
	}
	m.CachedRecords.Set(float64(n))
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

func (m *Metrics) BarcodeRendered(outcome string) {
	if m == nil {
		return
	}
	m.Barcodes.WithLabelValues(outcome).Inc()
}
