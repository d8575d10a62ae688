// Package transcript is the transcript request handler: it normalizes
// media URLs, calls a transcription.Provider once, resolves asynchronous
// job references with a single status lookup, and renders the outcome as
// JSON or HTML.
//
// Every failure is mapped onto errors.AppError so that all endpoints share
// one error policy:
//
//	validation   -> 400 INVALID_INPUT / MISSING_FIELD
//	connection   -> 503 CONNECTION_FAILED
//	timeout      -> 504 TIMEOUT
//	rate limited -> 429 RATE_LIMITED
//	anything else-> 500 INTERNAL_ERROR
package transcript
