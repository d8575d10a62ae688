package transcription

import "strings"

// Mode selects how the provider obtains a transcript.
type Mode string

const (
	// ModeNative only returns existing captions.
	ModeNative Mode = "native"
	// ModeAuto uses native captions and falls back to generation.
	ModeAuto Mode = "auto"
	// ModeGenerate always generates a transcript from the media.
	ModeGenerate Mode = "generate"
)

// Request holds parameters for a transcript call.
type Request struct {
	// URL is the media URL for the generic operation.
	URL string
	// VideoID is the platform identifier for the platform-specific operation.
	VideoID string
	// Language is the preferred ISO 639-1 language code.
	Language string
	// PlainText asks for a single text blob instead of timed segments.
	PlainText bool
	Mode      Mode
}

// Result is the outcome of a transcript call: exactly one of *Immediate or
// *Deferred.
type Result interface {
	isResult()
}

// Immediate carries a transcript returned within the same call.
type Immediate struct {
	Language           string
	Content            string
	Segments           []Segment
	AvailableLanguages []string
}

// Deferred carries the reference of an asynchronous upstream job.
type Deferred struct {
	JobID string
}

func (*Immediate) isResult() {}
func (*Deferred) isResult()  {}

// Segment is a timed chunk of a transcript. Offset and Duration are in
// milliseconds.
type Segment struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Language string  `json:"lang,omitempty"`
}

// JoinSegments concatenates segment texts into one transcript, one segment
// per line.
func JoinSegments(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, "\n")
}

// JobStatus is the upstream state of an asynchronous job. Values outside
// the known set are preserved verbatim.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobActive    JobStatus = "active"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job is the result of a single status lookup.
type Job struct {
	ID       string
	Status   JobStatus
	Language string
	Content  string
	Segments []Segment
	// Error is the upstream failure description for failed jobs.
	Error string
}
