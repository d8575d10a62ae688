// Package transcription defines the contract between the gateway and
// transcript providers.
//
// A provider call yields a Result that is exactly one of two variants:
//
//	switch r := res.(type) {
//	case *transcription.Immediate:
//	    // transcript available now: r.Content, r.Language
//	case *transcription.Deferred:
//	    // upstream job started: look it up once with JobStatus(ctx, r.JobID)
//	}
//
// Failures are reported as *Error values classified by ErrorKind.
//
// # Backends
//
//   - transcription/supadata: Supadata REST API
package transcription
