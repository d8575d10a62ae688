// Package observability wires OpenTelemetry tracing and metrics.
//
//	shutdown, err := observability.Setup(ctx, cfg.Observability, "transcript-gateway", version.Version, "production")
//	defer shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanProviderCall)
//	defer span.End()
//
//	metrics, _ := observability.NewMetrics(observability.Meter("transcript-gateway"))
//	metrics.RecordRequest(ctx, "POST /transcript", "success", elapsed)
package observability
