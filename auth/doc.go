// Package auth provides optional bearer-token protection for the gateway.
//
// Subpackages:
//
//   - auth/jwt: HMAC JWT service built on golang-jwt
//   - auth/authctx: request context propagation for validated claims
//
// The top-level package holds the TokenValidator contract consumed by
// server/middleware.Auth and the Config that builds one:
//
//	auth:
//	  enabled: true
//	  secret: "${AUTH_SECRET}"
//	  issuer: "transcript-gateway"
//
// There is no default secret; enabling auth without one fails validation.
package auth
