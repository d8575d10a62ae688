// Package server provides the HTTP server: a Gin engine mounted on a
// ServeMux, wrapped in net/http middleware and served over HTTP/1.1 and
// h2c.
//
// Middleware (server/middleware) wraps the whole mux, so it also covers
// 404s and anything mounted with Handle:
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: X-Request-ID generation and propagation
//   - Tracing: OpenTelemetry server spans
//   - RequestLogger: one log line per request, level by status
//   - CORS, BodySizeLimit, RateLimit (token bucket per client IP)
//   - Auth: optional bearer-token validation
//
// Default endpoints (server/endpoint): /health, /ready and /info.
package server
