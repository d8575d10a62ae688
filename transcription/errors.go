package transcription

import (
	"errors"
	"fmt"
)

// ErrorKind classifies provider failures.
type ErrorKind int

const (
	// KindUnknown covers upstream 5xx, auth failures of our own key and
	// responses that cannot be decoded.
	KindUnknown ErrorKind = iota
	// KindValidation means the provider rejected the request or media.
	KindValidation
	// KindConnection means the provider could not be reached.
	KindConnection
	// KindTimeout means the call exceeded its deadline.
	KindTimeout
	// KindRateLimited means the provider or the local limiter refused the call.
	KindRateLimited
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// Error is a classified provider failure.
type Error struct {
	Kind     ErrorKind
	Provider string
	// StatusCode is the upstream HTTP status, 0 for transport failures.
	StatusCode int
	// Code is the provider's machine-readable error code, if any.
	Code             string
	Message          string
	Details          string
	DocumentationURL string
	Err              error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Code, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, msg)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a *Error from the chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
