package transcription

import (
	"context"

	"github.com/kbukum/transcript-gateway/provider"
)

// Provider is the contract transcript backends implement. Each method makes
// exactly one upstream call.
type Provider interface {
	provider.Provider

	// Transcript retrieves a transcript for an arbitrary media URL.
	Transcript(ctx context.Context, req Request) (Result, error)
	// YouTubeTranscript retrieves a transcript for a YouTube video id.
	YouTubeTranscript(ctx context.Context, req Request) (Result, error)
	// JobStatus looks up an asynchronous job once.
	JobStatus(ctx context.Context, jobID string) (*Job, error)
}

// NewManager creates a provider manager for transcription backends
// configured with C.
func NewManager[C any](selector provider.Selector[Provider]) *provider.Manager[C, Provider] {
	if selector == nil {
		selector = &provider.HealthCheckSelector[Provider]{}
	}
	return provider.NewManager(provider.NewRegistry[C, Provider](), selector)
}
