// Package component defines the lifecycle contract for the long-lived
// parts of the gateway (HTTP server, transcription provider, telemetry
// exporters) and a Registry that starts them in order, stops them in
// reverse and aggregates their health for the readiness endpoint.
package component
