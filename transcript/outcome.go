package transcript

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kbukum/transcript-gateway/transcription"
)

// Status is the handler-level state of a resolved request.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusProcessing Status = "processing"
	StatusFailed     Status = "failed"
)

// Outcome is the resolved view of one transcript request.
type Outcome struct {
	Status   Status
	Language string
	// Content is the transcript exactly as the provider returned it.
	Content  string
	Segments []transcription.Segment
	JobID    string
	// JobStatus is the raw upstream job status, empty for immediate results.
	JobStatus string
	Message   string
}

// HTTPStatus returns 202 while a job is still running and 200 otherwise.
func (o *Outcome) HTTPStatus() int {
	if o.Status == StatusProcessing {
		return http.StatusAccepted
	}
	return http.StatusOK
}

// DisplayStatus is "completed" for content returned in the first call and
// the raw job status otherwise.
func (o *Outcome) DisplayStatus() string {
	if o.JobStatus == "" {
		return string(transcription.JobCompleted)
	}
	return o.JobStatus
}

// DisplayContent is the transcript on success and the status message
// otherwise.
func (o *Outcome) DisplayContent() string {
	if o.Status == StatusSuccess {
		return o.Content
	}
	return o.Message
}

type successBody struct {
	Status   Status                  `json:"status"`
	Language string                  `json:"language"`
	Content  string                  `json:"content"`
	Segments []transcription.Segment `json:"segments,omitempty"`
	JobID    string                  `json:"job_id,omitempty"`
}

type jobBody struct {
	Status  Status `json:"status"`
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// MarshalJSON renders success as {status, language, content[, segments][, job_id]}
// and everything else as {status, job_id, message}, in that key order.
func (o *Outcome) MarshalJSON() ([]byte, error) {
	if o.Status == StatusSuccess {
		return json.Marshal(successBody{
			Status:   o.Status,
			Language: o.Language,
			Content:  o.Content,
			Segments: o.Segments,
			JobID:    o.JobID,
		})
	}
	return json.Marshal(jobBody{Status: o.Status, JobID: o.JobID, Message: o.Message})
}

func immediateOutcome(r *transcription.Immediate) *Outcome {
	return &Outcome{
		Status:   StatusSuccess,
		Language: r.Language,
		Content:  r.Content,
		Segments: r.Segments,
	}
}

func jobOutcome(job *transcription.Job) *Outcome {
	o := &Outcome{JobID: job.ID, JobStatus: string(job.Status)}
	switch job.Status {
	case transcription.JobCompleted:
		o.Status = StatusSuccess
		o.Language = job.Language
		o.Content = job.Content
		o.Segments = job.Segments
	case transcription.JobFailed:
		o.Status = StatusFailed
		o.Message = pendingMessage(job.Status)
		if job.Error != "" {
			o.Message = fmt.Sprintf("%s (%s)", o.Message, job.Error)
		}
	default:
		o.Status = StatusProcessing
		o.Message = pendingMessage(job.Status)
	}
	return o
}

func pendingMessage(status transcription.JobStatus) string {
	return fmt.Sprintf("Job is not completed yet. Status: %s", status)
}
