// Package supadata binds the transcription contract to the Supadata REST
// API (https://api.supadata.ai/v1).
//
// Endpoints used:
//
//	GET /transcript?url=&lang=&text=&mode=     200 {content, lang, availableLangs} | 202 {jobId}
//	GET /youtube/transcript?videoId=&lang=&text=
//	GET /transcript/{jobId}                    {status, content, lang, error}
//
// Each method performs exactly one request; nothing is retried or polled.
package supadata
