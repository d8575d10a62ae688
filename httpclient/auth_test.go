package httpclient

import (
	"net/http"
	"testing"
)

func TestAPIKeyAuthHeader_CustomName(t *testing.T) {
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	APIKeyAuthHeader("sd_key", "x-api-key").apply(req)
	if got := req.Header.Get("x-api-key"); got != "sd_key" {
		t.Errorf("got %q, want %q", got, "sd_key")
	}
}

func TestAPIKeyAuth_DefaultHeaderName(t *testing.T) {
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	(&AuthConfig{Type: AuthAPIKey, Key: "k"}).apply(req)
	if got := req.Header.Get("X-API-Key"); got != "k" {
		t.Errorf("got %q, want %q", got, "k")
	}
}

func TestNilAuth(t *testing.T) {
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	var auth *AuthConfig
	auth.apply(req)
	if len(req.Header) != 0 {
		t.Errorf("expected no headers, got %v", req.Header)
	}
}
