// Package version exposes build information for the /info endpoint and the
// outbound User-Agent header.
package version
