// Package tracer provides distributed tracing for the seriesdesk core using
// OpenTelemetry.
//
// It wraps the OpenTelemetry tracer provider with span creation, error
// recording and W3C Trace Context propagation helpers. Export over OTLP/HTTP
// is optional and controlled by SERIESDESK_TRACE_EXPORT; the exporter
// endpoint comes from the standard OTEL_EXPORTER_OTLP_* variables.
//
//	ctx, span := tracerClient.StartSpan(ctx, "collection-load")
//	defer span.End()
package tracer
