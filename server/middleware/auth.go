package middleware

import (
	"net/http"
	"strings"

	"github.com/kbukum/transcript-gateway/auth"
	"github.com/kbukum/transcript-gateway/auth/authctx"
	apperrors "github.com/kbukum/transcript-gateway/errors"
)

// AuthConfig configures the bearer-token middleware.
type AuthConfig struct {
	// Validator validates a token string and returns the claims.
	Validator auth.TokenValidator
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string
}

// Auth returns middleware that requires a valid Bearer token. Validated
// claims are stored in the request context (see authctx).
func Auth(cfg AuthConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if matchesPath(r.URL.Path, cfg.SkipPaths) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, apperrors.Unauthorized("Authorization header required."))
				return
			}
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				writeError(w, apperrors.Unauthorized("Invalid authorization header format."))
				return
			}

			claims, err := cfg.Validator.ValidateToken(strings.TrimSpace(token))
			if err != nil {
				writeError(w, apperrors.Unauthorized("Invalid token.").WithCause(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(authctx.Set(r.Context(), claims)))
		})
	}
}

func matchesPath(path string, skip []string) bool {
	for _, p := range skip {
		if p == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
