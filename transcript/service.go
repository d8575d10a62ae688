package transcript

import (
	"context"
	"fmt"

	apperrors "github.com/kbukum/transcript-gateway/errors"
	"github.com/kbukum/transcript-gateway/logger"
	"github.com/kbukum/transcript-gateway/observability"
	"github.com/kbukum/transcript-gateway/transcription"
	"github.com/kbukum/transcript-gateway/util"
	"github.com/kbukum/transcript-gateway/validation"
)

// Service resolves transcript requests against a single provider. It holds
// no per-request state and is safe for concurrent use.
type Service struct {
	provider transcription.Provider
	cfg      Config
	log      *logger.Logger
}

// NewService creates a Service backed by p.
func NewService(p transcription.Provider, cfg Config) *Service {
	cfg.ApplyDefaults()
	return &Service{
		provider: p,
		cfg:      cfg,
		log:      logger.WithComponent("transcript"),
	}
}

// Resolve validates req, makes one transcript call and, when the provider
// answers with a job reference, exactly one status lookup.
func (s *Service) Resolve(ctx context.Context, req Request) (out *Outcome, err error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanResolve)
	defer func() {
		if err != nil {
			observability.SetSpanError(ctx, err)
		} else {
			observability.SetSpanAttribute(ctx, observability.AttrOutcome, string(out.Status))
		}
		span.End()
	}()

	req.sanitize()
	if err = validation.Validate(req); err != nil {
		return nil, err
	}

	call := s.buildCall(req)
	var res transcription.Result
	id, ok := s.videoID(req.URL)
	switch {
	case ok && call.Mode == transcription.ModeNative:
		// The video-id operation only serves existing captions.
		call.VideoID = id
		observability.SetSpanAttribute(ctx, observability.AttrPlatform, "youtube")
		s.log.WithContext(ctx).Debug("Normalized YouTube URL", map[string]interface{}{"video_id": id})
		res, err = s.provider.YouTubeTranscript(ctx, call)
	case ok:
		call.VideoID = id
		call.URL = CanonicalYouTubeURL(id)
		observability.SetSpanAttribute(ctx, observability.AttrPlatform, "youtube")
		s.log.WithContext(ctx).Debug("Normalized YouTube URL", map[string]interface{}{"video_id": id, "mode": string(call.Mode)})
		res, err = s.provider.Transcript(ctx, call)
	default:
		observability.SetSpanAttribute(ctx, observability.AttrPlatform, "url")
		res, err = s.provider.Transcript(ctx, call)
	}
	if err != nil {
		return nil, ToAppError(err)
	}

	switch r := res.(type) {
	case *transcription.Immediate:
		return immediateOutcome(r), nil
	case *transcription.Deferred:
		return s.JobStatus(ctx, r.JobID)
	default:
		return nil, apperrors.Internal(fmt.Errorf("transcript: unexpected result %T", res))
	}
}

// JobStatus looks up a job once and maps its state to an Outcome.
func (s *Service) JobStatus(ctx context.Context, jobID string) (*Outcome, error) {
	jobID = util.SanitizeString(jobID)
	if jobID == "" {
		return nil, apperrors.MissingField("job_id")
	}
	job, err := s.provider.JobStatus(ctx, jobID)
	if err != nil {
		return nil, ToAppError(err)
	}
	if job == nil {
		return nil, apperrors.Internal(fmt.Errorf("transcript: provider returned no job for %q", jobID))
	}
	if job.ID == "" {
		job.ID = jobID
	}
	return jobOutcome(job), nil
}

func (s *Service) buildCall(req Request) transcription.Request {
	plain := s.cfg.PlainText
	if req.Text != nil {
		plain = *req.Text
	}
	return transcription.Request{
		URL:       req.URL,
		Language:  util.Coalesce(req.Language, s.cfg.DefaultLanguage),
		PlainText: plain,
		Mode:      transcription.Mode(util.Coalesce(req.Mode, s.cfg.DefaultMode)),
	}
}

func (s *Service) videoID(rawURL string) (string, bool) {
	if !s.cfg.NormalizeYouTube {
		return "", false
	}
	return YouTubeVideoID(rawURL)
}
