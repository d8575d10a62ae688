package supadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kbukum/transcript-gateway/httpclient"
	"github.com/kbukum/transcript-gateway/observability"
	"github.com/kbukum/transcript-gateway/transcription"
)

const (
	// ProviderName is the registered name for the Supadata provider.
	ProviderName = "supadata"

	apiKeyHeader = "x-api-key"
)

// Provider implements transcription.Provider on top of the Supadata REST API.
// It is safe for concurrent use.
type Provider struct {
	cfg     Config
	adapter *httpclient.Adapter
	metrics *observability.Metrics
}

// Option customizes a Provider.
type Option func(*providerOptions)

type providerOptions struct {
	metrics     *observability.Metrics
	httpOptions []httpclient.Option
}

// WithMetrics records every upstream call on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *providerOptions) { o.metrics = m }
}

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *providerOptions) { o.httpOptions = append(o.httpOptions, httpclient.WithHTTPClient(c)) }
}

// NewProvider creates a Supadata provider. It fails when the API key is missing.
func NewProvider(cfg Config, opts ...Option) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o providerOptions
	for _, opt := range opts {
		opt(&o)
	}

	adapter, err := httpclient.New(httpclient.Config{
		Name:      ProviderName,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		RateLimit: cfg.RateLimit,
		Auth:      httpclient.APIKeyAuthHeader(cfg.APIKey, apiKeyHeader),
	}, o.httpOptions...)
	if err != nil {
		return nil, fmt.Errorf("supadata: %w", err)
	}

	return &Provider{cfg: cfg, adapter: adapter, metrics: o.metrics}, nil
}

// Factory creates Supadata providers for a provider.Registry.
func Factory(opts ...Option) func(Config) (transcription.Provider, error) {
	return func(cfg Config) (transcription.Provider, error) {
		return NewProvider(cfg, opts...)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured. It never calls
// the API, since every call is billed against the key.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcript calls GET /transcript for an arbitrary media URL.
func (p *Provider) Transcript(ctx context.Context, req transcription.Request) (transcription.Result, error) {
	return p.fetchTranscript(ctx, "transcript", "/transcript",
		httpclient.WithQueryParam("url", req.URL),
		httpclient.WithQueryParam("lang", req.Language),
		httpclient.WithQueryParam("text", strconv.FormatBool(req.PlainText)),
		httpclient.WithQueryParam("mode", string(req.Mode)),
	)
}

// YouTubeTranscript calls GET /youtube/transcript for a video id.
func (p *Provider) YouTubeTranscript(ctx context.Context, req transcription.Request) (transcription.Result, error) {
	return p.fetchTranscript(ctx, "youtube_transcript", "/youtube/transcript",
		httpclient.WithQueryParam("videoId", req.VideoID),
		httpclient.WithQueryParam("lang", req.Language),
		httpclient.WithQueryParam("text", strconv.FormatBool(req.PlainText)),
	)
}

// JobStatus calls GET /transcript/{jobId} once.
func (p *Provider) JobStatus(ctx context.Context, jobID string) (job *transcription.Job, err error) {
	if jobID == "" {
		return nil, &transcription.Error{Kind: transcription.KindValidation, Provider: ProviderName, Message: "job id is required"}
	}

	ctx, end := p.startCall(ctx, "job_status")
	defer func() { end(err) }()
	observability.SetSpanAttribute(ctx, observability.AttrJobID, jobID)

	resp, err := httpclient.Get[jobResponse](p.adapter, ctx, "/transcript/"+url.PathEscape(jobID))
	if err != nil {
		return nil, classify(err)
	}
	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.StatusCode)

	if resp.Data.Status == "" {
		return nil, unexpected("job response carries no status", nil)
	}
	content, segments, err := decodeContent(resp.Data.Content)
	if err != nil {
		return nil, unexpected("undecodable job content", err)
	}
	observability.SetSpanAttribute(ctx, observability.AttrJobStatus, resp.Data.Status)

	return &transcription.Job{
		ID:       jobID,
		Status:   transcription.JobStatus(resp.Data.Status),
		Language: resp.Data.Lang,
		Content:  content,
		Segments: segments,
		Error:    decodeJobError(resp.Data.Error),
	}, nil
}

func (p *Provider) fetchTranscript(ctx context.Context, op, path string, opts ...httpclient.RequestOption) (res transcription.Result, err error) {
	ctx, end := p.startCall(ctx, op)
	defer func() { end(err) }()

	resp, err := httpclient.Get[transcriptResponse](p.adapter, ctx, path, opts...)
	if err != nil {
		return nil, classify(err)
	}
	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.StatusCode)
	return toResult(resp.StatusCode, &resp.Data)
}

// toResult picks the result variant from the status code: 202 is always a
// job, 200 is content unless the body only names a job.
func toResult(status int, data *transcriptResponse) (transcription.Result, error) {
	if data.Error != "" {
		e := &transcription.Error{Kind: transcription.KindUnknown, Provider: ProviderName, StatusCode: status}
		applyBody(e, data.errorResponse)
		return nil, e
	}
	if status == http.StatusAccepted || (data.JobID != "" && !hasContent(data.Content)) {
		if data.JobID == "" {
			return nil, unexpected("accepted response carries no jobId", nil)
		}
		return &transcription.Deferred{JobID: data.JobID}, nil
	}

	if !hasContent(data.Content) {
		return nil, unexpected("response carries neither content nor jobId", nil)
	}
	content, segments, err := decodeContent(data.Content)
	if err != nil {
		return nil, unexpected("undecodable transcript content", err)
	}
	return &transcription.Immediate{
		Language:           data.Lang,
		Content:            content,
		Segments:           segments,
		AvailableLanguages: data.AvailableLangs,
	}, nil
}

func (p *Provider) startCall(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, observability.SpanProviderCall)
	observability.SetSpanAttribute(ctx, observability.AttrProvider, ProviderName)
	observability.SetSpanAttribute(ctx, observability.AttrOperation, op)

	return ctx, func(err error) {
		status := "ok"
		if err != nil {
			status = "error"
			if e, ok := transcription.AsError(err); ok {
				status = e.Kind.String()
			}
			observability.SetSpanError(ctx, err)
		}
		p.metrics.RecordProviderCall(ctx, ProviderName, op, status, time.Since(start))
		span.End()
	}
}

var codeKinds = map[string]transcription.ErrorKind{
	"invalid-request":        transcription.KindValidation,
	"transcript-unavailable": transcription.KindValidation,
	"not-found":              transcription.KindValidation,
	"limit-exceeded":         transcription.KindRateLimited,
	"unauthorized":           transcription.KindUnknown,
	"upgrade-required":       transcription.KindUnknown,
	"internal-error":         transcription.KindUnknown,
}

// classify maps adapter failures and Supadata error bodies onto
// transcription error kinds. A known provider error code wins over the
// HTTP status.
func classify(err error) *transcription.Error {
	e := &transcription.Error{Kind: transcription.KindUnknown, Provider: ProviderName, Message: err.Error(), Err: err}

	herr, ok := httpclient.AsError(err)
	if !ok {
		return e
	}
	e.StatusCode = herr.StatusCode

	switch herr.Code {
	case httpclient.ErrCodeTimeout:
		e.Kind = transcription.KindTimeout
		e.Message = "request to supadata timed out"
	case httpclient.ErrCodeConnection:
		e.Kind = transcription.KindConnection
		e.Message = "could not reach supadata"
	case httpclient.ErrCodeRateLimit:
		e.Kind = transcription.KindRateLimited
		e.Message = "supadata rate limit exceeded"
	case httpclient.ErrCodeValidation, httpclient.ErrCodeNotFound:
		e.Kind = transcription.KindValidation
	}

	var body errorResponse
	if len(herr.Body) > 0 && json.Unmarshal(herr.Body, &body) == nil && (body.Error != "" || body.Message != "") {
		applyBody(e, body)
	}
	return e
}

func applyBody(e *transcription.Error, body errorResponse) {
	e.Code = body.Error
	e.Message = body.Message
	if e.Message == "" {
		e.Message = body.Error
	}
	e.Details = body.Details
	e.DocumentationURL = body.DocumentationURL
	if kind, ok := codeKinds[body.Error]; ok {
		e.Kind = kind
	}
}

func unexpected(msg string, cause error) *transcription.Error {
	if cause != nil {
		msg = msg + ": " + cause.Error()
	}
	return &transcription.Error{Kind: transcription.KindUnknown, Provider: ProviderName, Message: msg, Err: cause}
}
