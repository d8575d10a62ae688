package middleware

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/transcript-gateway/logger"
	"github.com/kbukum/transcript-gateway/observability"
)

// Tracing starts a server span per request, continuing any incoming W3C
// trace context, and exposes the trace ids to the logger.
func Tracing() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := observability.StartSpan(ctx, fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			if traceID, spanID := observability.TraceIDs(ctx); traceID != "" {
				ctx = logger.ContextWithTrace(ctx, traceID, spanID)
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, sw.status)
			if sw.status >= http.StatusInternalServerError {
				observability.SetSpanError(ctx, fmt.Errorf("HTTP %d", sw.status))
			}
		})
	}
}
