package supadata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kbukum/transcript-gateway/transcription"
)

// transcriptResponse is the body of GET /transcript and
// GET /youtube/transcript. 200 carries content, 202 carries jobId and 206
// carries an error body for media without a transcript.
type transcriptResponse struct {
	errorResponse
	Content        json.RawMessage `json:"content"`
	Lang           string          `json:"lang"`
	AvailableLangs []string        `json:"availableLangs"`
	JobID          string          `json:"jobId"`
}

// jobResponse is the body of GET /transcript/{jobId}.
type jobResponse struct {
	Status  string          `json:"status"`
	Content json.RawMessage `json:"content"`
	Lang    string          `json:"lang"`
	Error   json.RawMessage `json:"error"`
}

// errorResponse is the body of any 4xx/5xx answer.
type errorResponse struct {
	Error            string `json:"error"`
	Message          string `json:"message"`
	Details          string `json:"details"`
	DocumentationURL string `json:"documentationUrl"`
}

type wireSegment struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Lang     string  `json:"lang"`
}

// decodeContent accepts either a plain string or an array of timed
// segments. Absent or null content decodes to the zero value.
func decodeContent(raw json.RawMessage) (string, []transcription.Segment, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", nil, err
		}
		return s, nil, nil
	case '[':
		var ws []wireSegment
		if err := json.Unmarshal(raw, &ws); err != nil {
			return "", nil, err
		}
		segs := make([]transcription.Segment, len(ws))
		for i, s := range ws {
			segs[i] = transcription.Segment{Text: s.Text, Offset: s.Offset, Duration: s.Duration, Language: s.Lang}
		}
		return transcription.JoinSegments(segs), segs, nil
	default:
		return "", nil, fmt.Errorf("unexpected content type %q", raw[:1])
	}
}

// hasContent reports whether the content key was present, even if empty.
func hasContent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// decodeJobError accepts the job error as a string or as an error object.
func decodeJobError(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var e errorResponse
	if err := json.Unmarshal(raw, &e); err == nil {
		switch {
		case e.Message != "":
			return e.Message
		case e.Error != "":
			return e.Error
		}
	}
	return string(raw)
}
