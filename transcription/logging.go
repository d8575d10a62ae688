package transcription

import (
	"context"
	"time"

	"github.com/kbukum/transcript-gateway/logger"
)

// WithLogging wraps p so every upstream call is logged with its duration
// and outcome.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &loggingProvider{inner: p, log: log}
}

type loggingProvider struct {
	inner Provider
	log   *logger.Logger
}

func (l *loggingProvider) Name() string                         { return l.inner.Name() }
func (l *loggingProvider) IsAvailable(ctx context.Context) bool { return l.inner.IsAvailable(ctx) }

func (l *loggingProvider) Transcript(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	res, err := l.inner.Transcript(ctx, req)
	l.record(ctx, "transcript", start, resultFields(res), err)
	return res, err
}

func (l *loggingProvider) YouTubeTranscript(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	res, err := l.inner.YouTubeTranscript(ctx, req)
	l.record(ctx, "youtube_transcript", start, resultFields(res), err)
	return res, err
}

func (l *loggingProvider) JobStatus(ctx context.Context, jobID string) (*Job, error) {
	start := time.Now()
	job, err := l.inner.JobStatus(ctx, jobID)
	fields := map[string]interface{}{logger.FieldJobID: jobID}
	if job != nil {
		fields["job_status"] = string(job.Status)
	}
	l.record(ctx, "job_status", start, fields, err)
	return job, err
}

func (l *loggingProvider) record(ctx context.Context, op string, start time.Time, fields map[string]interface{}, err error) {
	for k, v := range logger.DurationFields(op, time.Since(start)) {
		fields[k] = v
	}
	fields["provider"] = l.inner.Name()

	log := l.log.WithContext(ctx)
	if err != nil {
		log.WithError(err).Warn("provider call failed", fields)
		return
	}
	log.Debug("provider call ok", fields)
}

func resultFields(res Result) map[string]interface{} {
	fields := map[string]interface{}{}
	switch r := res.(type) {
	case *Immediate:
		fields["result"] = "immediate"
		fields["language"] = r.Language
	case *Deferred:
		fields["result"] = "deferred"
		fields[logger.FieldJobID] = r.JobID
	}
	return fields
}
