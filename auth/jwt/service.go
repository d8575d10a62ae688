// Package jwt provides an HMAC JWT token service parameterized by the
// claims type.
//
//	svc, err := jwt.NewService(&cfg, func() *jwt.Claims { return &jwt.Claims{} })
//	token, err := svc.Generate(&jwt.Claims{RegisteredClaims: gojwt.RegisteredClaims{Subject: "ops"}})
//	claims, err := svc.Parse(token)
package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set accepted by the gateway.
type Claims struct {
	gojwt.RegisteredClaims
	// Scope is an optional space-separated scope list.
	Scope string `json:"scope,omitempty"`
}

// Service generates and parses tokens for claims type T.
type Service[T gojwt.Claims] struct {
	cfg      Config
	newEmpty func() T
}

// NewService creates a new JWT service. newEmpty returns a fresh T for parsing.
func NewService[T gojwt.Claims](cfg *Config, newEmpty func() T) (*Service[T], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service[T]{cfg: *cfg, newEmpty: newEmpty}, nil
}

// Generate signs claims. Registered time claims left zero are filled from
// the configured TTL when T is *Claims.
func (s *Service[T]) Generate(claims T) (string, error) {
	if c, ok := any(claims).(*Claims); ok {
		now := time.Now()
		if c.IssuedAt == nil {
			c.IssuedAt = gojwt.NewNumericDate(now)
		}
		if c.ExpiresAt == nil {
			c.ExpiresAt = gojwt.NewNumericDate(now.Add(s.cfg.TokenTTL))
		}
		if c.Issuer == "" {
			c.Issuer = s.cfg.Issuer
		}
	}
	token := gojwt.NewWithClaims(s.cfg.signingMethod(), claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns its claims. It checks the
// signature, expiry and, when configured, issuer and audience.
func (s *Service[T]) Parse(tokenString string) (T, error) {
	var zero T
	claims := s.newEmpty()
	token, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc, s.parserOptions()...)
	if err != nil {
		return zero, fmt.Errorf("jwt: parse token: %w", err)
	}
	if !token.Valid {
		return zero, errors.New("jwt: invalid token")
	}
	parsed, ok := token.Claims.(T)
	if !ok {
		return zero, errors.New("jwt: unexpected claims type")
	}
	return parsed, nil
}

// ValidatorFunc bridges the typed service to untyped middleware.
func (s *Service[T]) ValidatorFunc() func(string) (any, error) {
	return func(token string) (any, error) {
		return s.Parse(token)
	}
}

func (s *Service[T]) keyFunc(token *gojwt.Token) (interface{}, error) {
	if token.Method.Alg() != s.cfg.signingMethod().Alg() {
		return nil, fmt.Errorf("jwt: unexpected signing method: %s", token.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}

func (s *Service[T]) parserOptions() []gojwt.ParserOption {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
		gojwt.WithExpirationRequired(),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}
	if s.cfg.Audience != "" {
		opts = append(opts, gojwt.WithAudience(s.cfg.Audience))
	}
	if s.cfg.Leeway > 0 {
		opts = append(opts, gojwt.WithLeeway(s.cfg.Leeway))
	}
	return opts
}
