package tracer

import (
	"context"
	"errors"
	"testing"

	traceSpan "go.opentelemetry.io/otel/trace"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

func newTestTracer() *Tracer {
	return NewClient(Config{
		ServiceName:  "seriesdesk-test",
		AppEnv:       "test",
		EnableExport: false,
	}, nopLogger{})
}

func TestStartSpan_ProducesValidSpanContext(t *testing.T) {
	tr := newTestTracer()

	ctx, span := tr.StartSpan(context.Background(), "collection-load")
	defer span.End()

	sc := traceSpan.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		t.Fatal("expected a valid span context")
	}

	_, child := tr.StartSpan(ctx, "series-aggregate")
	defer child.End()
	if child.SpanContext().TraceID() != sc.TraceID() {
		t.Error("child span should share the parent's trace ID")
	}
}

func TestCarrier_RoundTripsTraceContext(t *testing.T) {
	tr := newTestTracer()

	ctx, span := tr.StartSpan(context.Background(), "archive-request")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	if carrier["traceparent"] == "" {
		t.Fatal("expected a traceparent header in the carrier")
	}

	restored := tr.SetCarrierOnContext(context.Background(), carrier)
	got := traceSpan.SpanContextFromContext(restored)
	want := traceSpan.SpanContextFromContext(ctx)
	if got.TraceID() != want.TraceID() {
		t.Errorf("trace ID lost in propagation: got %s, want %s", got.TraceID(), want.TraceID())
	}
}

func TestRecordErrorOnSpan(t *testing.T) {
	tr := newTestTracer()

	_, span := tr.StartSpan(context.Background(), "metadata-write")
	defer span.End()

	// Must not panic and must leave the span usable.
	tr.RecordErrorOnSpan(span, errors.New("conditional write rejected"))
	tr.SetAttributes(span, map[string]interface{}{
		"series_id": "s1",
		"attempt":   2,
		"retrying":  true,
	})
}
