package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Tracing.Endpoint != "localhost:4318" || cfg.Metrics.Endpoint != "localhost:4318" {
		t.Errorf("unexpected endpoints %q %q", cfg.Tracing.Endpoint, cfg.Metrics.Endpoint)
	}
	if cfg.Tracing.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %v", cfg.Tracing.SampleRate)
	}
	if cfg.Metrics.Interval != 15*time.Second {
		t.Errorf("expected 15s interval, got %v", cfg.Metrics.Interval)
	}
	if cfg.Tracing.Enabled || cfg.Metrics.Enabled {
		t.Error("exporters must be disabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Tracing: TracingConfig{SampleRate: 1.5}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for sample rate > 1")
	}
	cfg.Tracing.SampleRate = 0.25
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{}, "svc", "dev", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown returned %v", err)
	}
}

func TestNewMetrics(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordRequest(ctx, "POST /transcript", "success", 100*time.Millisecond)
	metrics.RecordProviderCall(ctx, "supadata", "transcript", "ok", 50*time.Millisecond)
	metrics.RecordError(ctx, "INVALID_INPUT")
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordRequest(ctx, "GET /", "success", time.Millisecond)
	m.RecordProviderCall(ctx, "supadata", "job_status", "error", time.Millisecond)
	m.RecordError(ctx, "TIMEOUT")
}

func TestStartSpanRecordsAttributes(t *testing.T) {
	exporter := installRecorder(t)

	ctx, span := StartSpan(context.Background(), SpanProviderCall)
	SetSpanAttribute(ctx, AttrProvider, "supadata")
	SetSpanAttribute(ctx, AttrHTTPStatus, 202)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "langs", []string{"en", "de"})
	SetSpanAttribute(ctx, "unsupported", struct{}{})
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != SpanProviderCall {
		t.Errorf("unexpected span name %q", spans[0].Name)
	}
	found := false
	for _, kv := range spans[0].Attributes {
		if string(kv.Key) == AttrProvider && kv.Value.AsString() == "supadata" {
			found = true
		}
	}
	if !found {
		t.Errorf("provider attribute missing: %v", spans[0].Attributes)
	}
}

func TestSetSpanError(t *testing.T) {
	exporter := installRecorder(t)

	ctx, span := StartSpan(context.Background(), "test-error")
	SetSpanError(ctx, errors.New("upstream failed"))
	SetSpanError(ctx, nil)
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status.Code)
	}
	if len(spans[0].Events) != 1 {
		t.Errorf("expected one recorded error event, got %d", len(spans[0].Events))
	}
}

func TestNoSpanHelpersDoNotPanic(t *testing.T) {
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
	SetSpanError(ctx, errors.New("no span"))
	if traceID, spanID := TraceIDs(ctx); traceID != "" || spanID != "" {
		t.Errorf("expected empty ids, got %q %q", traceID, spanID)
	}
}

func TestTraceIDs(t *testing.T) {
	installRecorder(t)

	ctx, span := StartSpan(context.Background(), "ids")
	defer span.End()

	traceID, spanID := TraceIDs(ctx)
	if len(traceID) != 32 || len(spanID) != 16 {
		t.Errorf("unexpected ids %q %q", traceID, spanID)
	}
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
	}
	for _, tc := range tests {
		if got := samplerFor(tc.rate).Description(); got != tc.want {
			t.Errorf("samplerFor(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
	if got := samplerFor(0.5).Description(); got == "AlwaysOnSampler" || got == "AlwaysOffSampler" {
		t.Errorf("expected ratio sampler, got %q", got)
	}
}

func TestInitTracerAndMeter(t *testing.T) {
	prevTP := otel.GetTracerProvider()
	prevMP := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	})

	cfg := Config{
		Tracing: TracingConfig{Enabled: true, Insecure: true},
		Metrics: MetricsConfig{Enabled: true, Insecure: true},
	}
	cfg.ApplyDefaults()

	shutdown, err := Setup(context.Background(), cfg, "svc", "1.0.0", "test")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	// Nothing listens on the endpoint; only make sure shutdown returns.
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}
