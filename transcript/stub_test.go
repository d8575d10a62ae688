package transcript

import (
	"context"
	"sync"

	"github.com/kbukum/transcript-gateway/transcription"
)

type recordedCall struct {
	op  string
	req transcription.Request
	job string
}

// stubProvider records every call and replays canned answers.
type stubProvider struct {
	mu     sync.Mutex
	calls  []recordedCall
	result transcription.Result
	job    *transcription.Job
	err    error
	jobErr error
}

func (s *stubProvider) Name() string                     { return "stub" }
func (s *stubProvider) IsAvailable(context.Context) bool { return true }

func (s *stubProvider) Transcript(_ context.Context, req transcription.Request) (transcription.Result, error) {
	s.record(recordedCall{op: "transcript", req: req})
	return s.result, s.err
}

func (s *stubProvider) YouTubeTranscript(_ context.Context, req transcription.Request) (transcription.Result, error) {
	s.record(recordedCall{op: "youtube", req: req})
	return s.result, s.err
}

func (s *stubProvider) JobStatus(_ context.Context, jobID string) (*transcription.Job, error) {
	s.record(recordedCall{op: "job", job: jobID})
	return s.job, s.jobErr
}

func (s *stubProvider) record(c recordedCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

func (s *stubProvider) ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.op
	}
	return out
}
