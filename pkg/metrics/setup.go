package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Server      *http.Server
	Registry    *prometheus.Registry
	serviceName string

	// Domain instruments.
	archiveRequests *prometheus.CounterVec
	archiveLatency  *prometheus.HistogramVec
	rowsLoaded      prometheus.Gauge
	loadDuration    prometheus.Histogram
}

func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m := &Metrics{
		Registry:    registry,
		serviceName: cfg.ServiceName,

		archiveRequests: createCounterVec(
			"seriesdesk_archive_requests_total",
			"Archive REST requests by route template, method and outcome.",
			[]string{"route", "method", "outcome"},
		),
		archiveLatency: createHistogramVec(
			"seriesdesk_archive_request_seconds",
			"Archive REST request latency by route template.",
			[]string{"route"},
			prometheus.DefBuckets,
		),
		rowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seriesdesk_rows_loaded",
			Help: "Row count produced by the most recent collection load.",
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "seriesdesk_load_duration_seconds",
			Help:    "End-to-end duration of collection loads.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}

	wrappedRegistry.MustRegister(
		m.archiveRequests,
		m.archiveLatency,
		m.rowsLoaded,
		m.loadDuration,
	)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}

// SetRowsLoaded records the row count of the latest load.
func (m *Metrics) SetRowsLoaded(n int) {
	m.rowsLoaded.Set(float64(n))
}

// ObserveLoadDuration records one load's duration in seconds.
func (m *Metrics) ObserveLoadDuration(seconds float64) {
	m.loadDuration.Observe(seconds)
}
