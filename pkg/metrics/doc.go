// Package metrics exposes Prometheus instrumentation for the seriesdesk
// core: archive request counts and latencies, conflict outcomes, and
// collection-load figures, served from an own registry on a dedicated HTTP
// address.
//
// *Metrics implements the archive client's Observer interface, so wiring
//
//	fx.Provide(func(m *metrics.Metrics) archive.Observer { return m })
//
// is all it takes to get per-route request metrics.
package metrics
