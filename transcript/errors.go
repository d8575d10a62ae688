package transcript

import (
	"context"
	"errors"

	apperrors "github.com/kbukum/transcript-gateway/errors"
	"github.com/kbukum/transcript-gateway/transcription"
	"github.com/kbukum/transcript-gateway/util"
)

// ToAppError maps any error from the transcript path onto the unified
// AppError taxonomy. AppErrors pass through unchanged.
func ToAppError(err error) *apperrors.AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	if perr, ok := transcription.AsError(err); ok {
		return fromProviderError(perr)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Timeout("transcript").WithCause(err)
	}
	return apperrors.Internal(err)
}

func fromProviderError(e *transcription.Error) *apperrors.AppError {
	var appErr *apperrors.AppError
	switch e.Kind {
	case transcription.KindValidation:
		appErr = apperrors.Validation(util.Coalesce(e.Message, "The transcription provider rejected the request."))
		if e.Details != "" {
			appErr.WithDetail("provider_details", e.Details)
		}
	case transcription.KindConnection:
		appErr = apperrors.ConnectionFailed(util.Coalesce(e.Provider, "transcription provider"))
	case transcription.KindTimeout:
		appErr = apperrors.Timeout("transcript")
	case transcription.KindRateLimited:
		appErr = apperrors.RateLimited()
	default:
		appErr = apperrors.Internal(nil)
	}

	appErr.WithCause(e)
	if e.Code != "" {
		appErr.WithDetail("provider_code", e.Code)
	}
	if e.DocumentationURL != "" {
		appErr.WithDocumentation(e.DocumentationURL)
	}
	return appErr
}
