package auth

import (
	"github.com/kbukum/transcript-gateway/auth/jwt"
)

// TokenValidator validates a token string and returns the parsed claims.
// Middleware depends on this interface rather than on the JWT service.
type TokenValidator interface {
	ValidateToken(token string) (any, error)
}

// TokenValidatorFunc adapts an ordinary function to the TokenValidator interface.
type TokenValidatorFunc func(token string) (any, error)

// ValidateToken implements TokenValidator.
func (f TokenValidatorFunc) ValidateToken(token string) (any, error) {
	return f(token)
}

// NewValidator builds the JWT validator described by cfg. It returns nil
// when auth is disabled.
func NewValidator(cfg Config) (TokenValidator, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	svc, err := jwt.NewService(&cfg.JWT, func() *jwt.Claims { return &jwt.Claims{} })
	if err != nil {
		return nil, err
	}
	return TokenValidatorFunc(svc.ValidatorFunc()), nil
}
