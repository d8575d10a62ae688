package component

import (
	"context"
	"fmt"
	"testing"
)

// mockComponent implements Component for testing.
type mockComponent struct {
	name       string
	startErr   error
	stopErr    error
	health     Health
	startOrder *[]string
	stopOrder  *[]string
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	if m.startOrder != nil {
		*m.startOrder = append(*m.startOrder, m.name)
	}
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	if m.stopOrder != nil {
		*m.stopOrder = append(*m.stopOrder, m.name)
	}
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) Health {
	return m.health
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	c := &mockComponent{name: "supadata", health: Health{Name: "supadata", Status: StatusHealthy}}

	if err := r.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	c := &mockComponent{name: "supadata"}
	r.Register(c)

	err := r.Register(&mockComponent{name: "supadata"})
	if err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestGet(t *testing.T) {
	r := NewRegistry()
	c := &mockComponent{name: "supadata"}
	r.Register(c)

	got := r.Get("supadata")
	if got == nil {
		t.Fatal("expected to get registered component")
	}
	if got.Name() != "supadata" {
		t.Errorf("expected 'supadata', got %q", got.Name())
	}
}

func TestGetNotFound(t *testing.T) {
	r := NewRegistry()
	got := r.Get("missing")
	if got != nil {
		t.Error("expected nil for unregistered component")
	}
}

func TestStartAll(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{
		name: "supadata", startOrder: &order,
		health: Health{Name: "supadata", Status: StatusHealthy},
	})
	r.Register(&mockComponent{
		name: "telemetry", startOrder: &order,
		health: Health{Name: "telemetry", Status: StatusHealthy},
	})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}

	if len(order) != 2 {
		t.Fatalf("expected 2 starts, got %d", len(order))
	}
	if order[0] != "supadata" || order[1] != "telemetry" {
		t.Errorf("expected start order [supadata, telemetry], got %v", order)
	}
}

func TestStartAllError(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "supadata", startErr: fmt.Errorf("bind: address already in use")})

	err := r.StartAll(context.Background())
	if err == nil {
		t.Error("expected error from StartAll")
	}
}

func TestStopAllReverseOrder(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "supadata", stopOrder: &order, health: Health{Name: "supadata", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "telemetry", stopOrder: &order, health: Health{Name: "telemetry", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "http-server", stopOrder: &order, health: Health{Name: "http-server", Status: StatusHealthy}})

	r.StartAll(context.Background())
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}

	if len(order) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(order))
	}
	if order[0] != "http-server" || order[1] != "telemetry" || order[2] != "supadata" {
		t.Errorf("expected reverse stop order [http-server, telemetry, supadata], got %v", order)
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	r := NewRegistry()
	order := []string{}
	r.Register(&mockComponent{name: "supadata", stopOrder: &order})

	// Don't start, then stop
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 0 {
		t.Errorf("expected 0 stops for unstarted components, got %d", len(order))
	}
}

func TestStopAllWithErrors(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{
		name: "supadata", stopErr: fmt.Errorf("stop failed"),
		health: Health{Name: "supadata", Status: StatusHealthy},
	})
	r.StartAll(context.Background())

	err := r.StopAll(context.Background())
	if err == nil {
		t.Error("expected error from StopAll")
	}
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{
		name:   "supadata",
		health: Health{Name: "supadata", Status: StatusHealthy, Message: "api key configured"},
	})
	r.Register(&mockComponent{
		name:   "telemetry",
		health: Health{Name: "telemetry", Status: StatusUnhealthy, Message: "exporter unreachable"},
	})

	results := r.HealthAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Status != StatusHealthy {
		t.Errorf("expected supadata healthy, got %s", results[0].Status)
	}
	if results[1].Status != StatusUnhealthy {
		t.Errorf("expected telemetry unhealthy, got %s", results[1].Status)
	}
}

func TestHealthStatusConstants(t *testing.T) {
	if StatusHealthy != "healthy" {
		t.Errorf("expected 'healthy', got %q", StatusHealthy)
	}
	if StatusUnhealthy != "unhealthy" {
		t.Errorf("expected 'unhealthy', got %q", StatusUnhealthy)
	}
	if StatusDegraded != "degraded" {
		t.Errorf("expected 'degraded', got %q", StatusDegraded)
	}
}

func TestStartAllRollsBack(t *testing.T) {
	r := NewRegistry()
	stops := []string{}
	r.Register(&mockComponent{name: "supadata", stopOrder: &stops})
	r.Register(&mockComponent{name: "telemetry", stopOrder: &stops})
	r.Register(&mockComponent{name: "http-server", stopOrder: &stops, startErr: fmt.Errorf("bind failed")})

	if err := r.StartAll(context.Background()); err == nil {
		t.Fatal("expected start error")
	}
	if len(stops) != 2 || stops[0] != "telemetry" || stops[1] != "supadata" {
		t.Errorf("expected rollback [telemetry, supadata], got %v", stops)
	}
	stops = stops[:0]
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(stops) != 0 {
		t.Errorf("rolled back components must not be stopped twice, got %v", stops)
	}
}

func TestReady(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "supadata", health: Health{Name: "supadata", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "telemetry", health: Health{Name: "telemetry", Status: StatusDegraded}})

	ok, results := r.Ready(context.Background())
	if !ok || len(results) != 2 {
		t.Errorf("degraded components should not fail readiness, got %v %v", ok, results)
	}

	r.Register(&mockComponent{name: "http-server", health: Health{Name: "http-server", Status: StatusUnhealthy}})
	if ok, _ := r.Ready(context.Background()); ok {
		t.Error("expected not ready with an unhealthy component")
	}
}

func TestFunc(t *testing.T) {
	started, stopped := false, false
	c := &Func{
		ComponentName: "telemetry",
		StartFunc:     func(context.Context) error { started = true; return nil },
		StopFunc:      func(context.Context) error { stopped = true; return nil },
	}
	if err := c.Start(context.Background()); err != nil || !started {
		t.Errorf("expected StartFunc to run, err=%v", err)
	}
	if err := c.Stop(context.Background()); err != nil || !stopped {
		t.Errorf("expected StopFunc to run, err=%v", err)
	}
	if h := c.Health(context.Background()); h.Status != StatusHealthy || h.Name != "telemetry" {
		t.Errorf("expected default healthy status, got %+v", h)
	}

	empty := &Func{ComponentName: "noop"}
	if empty.Start(context.Background()) != nil || empty.Stop(context.Background()) != nil {
		t.Error("nil funcs should be no-ops")
	}
}
