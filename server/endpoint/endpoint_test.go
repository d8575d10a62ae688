package endpoint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/transcript-gateway/component"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHealthExactBody(t *testing.T) {
	w := get(Health())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"status":"healthy"}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name    string
		checker HealthChecker
		code    int
		status  string
	}{
		{"no checker", nil, http.StatusOK, "ready"},
		{"all healthy", func(context.Context) (bool, []component.Health) {
			return true, []component.Health{{Name: "supadata", Status: component.StatusHealthy}}
		}, http.StatusOK, "ready"},
		{"unhealthy", func(context.Context) (bool, []component.Health) {
			return false, []component.Health{{Name: "supadata", Status: component.StatusUnhealthy}}
		}, http.StatusServiceUnavailable, "not_ready"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := get(Readiness("transcript-gateway", tc.checker))
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body["status"] != tc.status {
				t.Errorf("expected status %s, got %v", tc.status, body["status"])
			}
		})
	}
}

func TestInfo(t *testing.T) {
	w := get(Info("transcript-gateway", "test"))
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["service"] != "transcript-gateway" || body["environment"] != "test" {
		t.Errorf("unexpected body %v", body)
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected version field")
	}
}
