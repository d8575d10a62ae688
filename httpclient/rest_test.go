package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/items/1" {
			t.Errorf("expected /items/1, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("lang"); got != "en" {
			t.Errorf("expected lang=en, got %q", got)
		}
		if r.URL.Query().Has("mode") {
			t.Error("empty query param should be dropped")
		}
		json.NewEncoder(w).Encode(testItem{ID: 1, Name: "Widget"})
	}))
	defer srv.Close()

	a, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := Get[testItem](a, context.Background(), "/items/1",
		WithQueryParam("lang", "en"),
		WithQueryParam("mode", ""),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Data.Name != "Widget" {
		t.Errorf("expected Widget, got %s", resp.Data.Name)
	}
}

func TestGet_ErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid-request","message":"Invalid URL"}`))
	}))
	defer srv.Close()

	a, _ := New(Config{BaseURL: srv.URL})
	resp, err := Get[testItem](a, context.Background(), "/items")
	if resp != nil {
		t.Error("expected nil typed response on error")
	}
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Code != ErrCodeValidation {
		t.Errorf("expected validation code, got %s", e.Code)
	}
	if string(e.Body) != `{"error":"invalid-request","message":"Invalid URL"}` {
		t.Errorf("unexpected body %q", e.Body)
	}
}

func TestGet_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a, _ := New(Config{BaseURL: srv.URL})
	if _, err := Get[testItem](a, context.Background(), "/"); err == nil {
		t.Fatal("expected decode error")
	}
}
