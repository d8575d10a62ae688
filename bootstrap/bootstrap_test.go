package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/transcript-gateway/component"
	"github.com/kbukum/transcript-gateway/config"
	"github.com/kbukum/transcript-gateway/logger"
)

type testConfig struct {
	config.ServiceConfig
	Provider struct {
		APIKey string
	}
}

func (c *testConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider.api_key is required")
	}
	return nil
}

type mockComponent struct {
	name     string
	startErr error
	stopErr  error
	health   component.Health
	started  bool
	stopped  bool
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	m.started = true
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	m.stopped = true
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) component.Health {
	return m.health
}

type mockDescribableComponent struct {
	mockComponent
	desc   component.Description
	routes []component.Route
}

func (m *mockDescribableComponent) Describe() component.Description { return m.desc }
func (m *mockDescribableComponent) Routes() []component.Route       { return m.routes }

func newTestConfig(name, version string) *testConfig {
	cfg := &testConfig{
		ServiceConfig: config.ServiceConfig{
			Name:        name,
			Version:     version,
			Environment: "development",
		},
	}
	cfg.Provider.APIKey = "sd_test"
	return cfg
}

func newTestApp(t *testing.T, opts ...Option) *App[*testConfig] {
	t.Helper()
	quiet := logger.NewWithWriter(&logger.Config{Level: "error", Format: "json"}, "test", io.Discard)
	opts = append([]Option{WithLogger(quiet), WithSummaryOutput(io.Discard)}, opts...)
	app, err := NewApp(newTestConfig("test", "1.0"), opts...)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app
}

func healthy(name string) *mockComponent {
	return &mockComponent{name: name, health: component.Health{Name: name, Status: component.StatusHealthy}}
}

// canceled returns a context that is already done so Run returns right
// after startup.
func canceled() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestNewApp(t *testing.T) {
	cfg := newTestConfig("transcript-gateway", "1.0.0")
	app, err := NewApp(cfg, WithSummaryOutput(io.Discard))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Name != "transcript-gateway" {
		t.Errorf("expected name 'transcript-gateway', got %q", app.Name)
	}
	if app.Version != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %q", app.Version)
	}
	if app.Components == nil {
		t.Error("expected non-nil components registry")
	}
	if app.Logger == nil {
		t.Error("expected non-nil logger")
	}
	if app.Cfg.Provider.APIKey != "sd_test" {
		t.Errorf("expected typed config access, got %q", app.Cfg.Provider.APIKey)
	}
	if app.gracefulTimeout != 15*time.Second {
		t.Errorf("expected default 15s, got %v", app.gracefulTimeout)
	}
}

func TestNewAppValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*testConfig)
		errMsg string
	}{
		{"missing name", func(c *testConfig) { c.Name = "" }, "config.name is required"},
		{"missing api key", func(c *testConfig) { c.Provider.APIKey = "" }, "provider.api_key is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newTestConfig("test", "1.0")
			tc.mutate(cfg)
			_, err := NewApp(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
			}
		})
	}
}

func TestNewAppWithOptions(t *testing.T) {
	custom := logger.NewDefault("custom-logger")
	app, err := NewApp(newTestConfig("test", "1.0"),
		WithGracefulTimeout(30*time.Second),
		WithLogger(custom),
	)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.gracefulTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", app.gracefulTimeout)
	}
	if app.Logger != custom {
		t.Error("expected custom logger to be set")
	}
}

func TestRegisterComponent(t *testing.T) {
	app := newTestApp(t)
	if err := app.RegisterComponent(healthy("supadata")); err != nil {
		t.Fatalf("RegisterComponent failed: %v", err)
	}
	if app.Components.Get("supadata") == nil {
		t.Error("expected component to be registered")
	}
	if err := app.RegisterComponent(healthy("supadata")); err == nil {
		t.Error("expected error for duplicate component registration")
	}
}

func TestRunLifecycleOrder(t *testing.T) {
	app := newTestApp(t)
	comp := healthy("supadata")
	_ = app.RegisterComponent(comp)

	var order []string
	app.OnStart(func(ctx context.Context) error {
		if !comp.started {
			t.Error("expected components to be started before OnStart")
		}
		order = append(order, "start")
		return nil
	})
	app.OnConfigure(func(ctx context.Context, a *App[*testConfig]) error {
		if a.Cfg.Name != "test" {
			t.Errorf("expected typed cfg in configure, got %q", a.Cfg.Name)
		}
		order = append(order, "configure")
		return nil
	})
	app.OnReady(func(ctx context.Context) error {
		order = append(order, "ready")
		return nil
	})
	app.OnStop(func(ctx context.Context) error {
		if comp.stopped {
			t.Error("expected OnStop to run before components stop")
		}
		order = append(order, "stop")
		return nil
	})

	if err := app.Run(canceled()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "start,configure,ready,stop"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if !comp.stopped {
		t.Error("expected component to be stopped")
	}
}

func TestRunStartupFailures(t *testing.T) {
	boom := fmt.Errorf("boom")
	tests := []struct {
		name    string
		setup   func(app *App[*testConfig])
		errMsg  string
		stopped bool
	}{
		{
			name: "component start",
			setup: func(app *App[*testConfig]) {
				_ = app.RegisterComponent(&mockComponent{name: "supadata", startErr: boom})
			},
			errMsg: "initialization failed",
		},
		{
			name:    "start hook",
			setup:   func(app *App[*testConfig]) { app.OnStart(func(context.Context) error { return boom }) },
			errMsg:  "onStart hook failed",
			stopped: true,
		},
		{
			name: "configure",
			setup: func(app *App[*testConfig]) {
				app.OnConfigure(func(context.Context, *App[*testConfig]) error { return boom })
			},
			errMsg:  "configuration failed",
			stopped: true,
		},
		{
			name:    "ready hook",
			setup:   func(app *App[*testConfig]) { app.OnReady(func(context.Context) error { return boom }) },
			errMsg:  "onReady hook failed",
			stopped: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			comp := healthy("http-server")
			_ = app.RegisterComponent(comp)
			tc.setup(app)

			err := app.Run(context.Background())
			if err == nil {
				t.Fatal("expected startup error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
			}
			if tc.stopped && !comp.stopped {
				t.Error("expected started component to be stopped after failed startup")
			}
		})
	}
}

func TestRunStopErrors(t *testing.T) {
	app := newTestApp(t)
	_ = app.RegisterComponent(&mockComponent{name: "supadata", stopErr: fmt.Errorf("stop failed")})
	app.OnStop(func(context.Context) error { return fmt.Errorf("hook failed") })

	err := app.Run(canceled())
	if err == nil {
		t.Fatal("expected shutdown error")
	}
	if !strings.Contains(err.Error(), "stop failed") || !strings.Contains(err.Error(), "hook failed") {
		t.Errorf("expected both errors joined, got %q", err.Error())
	}
}

func TestRunTolerantOfUnhealthyComponents(t *testing.T) {
	app := newTestApp(t)
	_ = app.RegisterComponent(&mockComponent{
		name:   "supadata",
		health: component.Health{Name: "supadata", Status: component.StatusUnhealthy, Message: "no api key"},
	})
	if err := app.Run(canceled()); err != nil {
		t.Fatalf("expected unhealthy components not to abort Run, got %v", err)
	}
}

func TestRunHooksStopOnFirstError(t *testing.T) {
	secondCalled := false
	err := runHooks(context.Background(), []Hook{
		func(ctx context.Context) error { return fmt.Errorf("fail") },
		func(ctx context.Context) error { secondCalled = true; return nil },
	})
	if err == nil || !strings.Contains(err.Error(), "hook 0 failed") {
		t.Errorf("expected hook 0 error, got %v", err)
	}
	if secondCalled {
		t.Error("expected second hook not to be called after first fails")
	}
}

func TestReadyCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  component.HealthStatus
		wantErr bool
	}{
		{"healthy", component.StatusHealthy, false},
		{"degraded", component.StatusDegraded, true},
		{"unhealthy", component.StatusUnhealthy, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			_ = app.RegisterComponent(healthy("http-server"))
			_ = app.RegisterComponent(&mockComponent{
				name:   "supadata",
				health: component.Health{Name: "supadata", Status: tc.status, Message: "detail"},
			})
			err := app.ReadyCheck(context.Background())
			if (err != nil) != tc.wantErr {
				t.Errorf("ReadyCheck() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "supadata="+string(tc.status)+"(detail)") {
				t.Errorf("expected component detail in error, got %q", err.Error())
			}
		})
	}

	t.Run("empty registry", func(t *testing.T) {
		if err := newTestApp(t).ReadyCheck(context.Background()); err != nil {
			t.Errorf("expected no error for empty registry, got %v", err)
		}
	})
}

func TestWaitForSignalContextCancellation(t *testing.T) {
	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if sig := app.WaitForSignal(ctx); sig != nil {
		t.Errorf("expected nil signal for context cancellation, got %v", sig)
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	app := newTestApp(t)
	comp := healthy("supadata")
	_ = app.RegisterComponent(comp)

	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if comp.stopped {
		t.Error("expected never-started component not to be stopped")
	}
}

func TestSummaryDisplay(t *testing.T) {
	registry := component.NewRegistry()
	_ = registry.Register(&mockDescribableComponent{
		mockComponent: *healthy("http-server"),
		desc:          component.Description{Name: "HTTP Server", Type: "server", Details: "0.0.0.0", Port: 8080},
		routes: []component.Route{
			{Method: "GET", Path: "/health", Handler: "health"},
			{Method: "POST", Path: "/transcript", Handler: "transcript"},
		},
	})
	_ = registry.Register(&mockComponent{
		name:   "supadata",
		health: component.Health{Name: "supadata", Status: component.StatusUnhealthy, Message: "connection refused"},
	})

	s := NewSummary("transcript-gateway", "1.2.3")
	s.SetStartupDuration(250 * time.Millisecond)
	s.TrackRoute("GET", "/health", "duplicate")

	var buf bytes.Buffer
	s.Display(context.Background(), &buf, registry)
	out := buf.String()

	for _, want := range []string{
		"transcript-gateway v1.2.3 started in 0.25s",
		"HTTP Server [server]: 0.0.0.0 (:8080)",
		"Routes (2)",
		"/transcript",
		"supadata: unhealthy (connection refused)",
		"(1/2 healthy)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q, got:\n%s", want, out)
		}
	}

	// A second display must not duplicate collected entries.
	buf.Reset()
	s.Display(context.Background(), &buf, registry)
	if strings.Count(buf.String(), "HTTP Server [server]") != 1 {
		t.Errorf("expected infrastructure listed once, got:\n%s", buf.String())
	}
}

func TestSummaryDisplayNilRegistry(t *testing.T) {
	var buf bytes.Buffer
	NewSummary("svc", "1.0").Display(context.Background(), &buf, nil)
	if !strings.Contains(buf.String(), "No components registered") {
		t.Errorf("expected empty marker, got:\n%s", buf.String())
	}
}

func TestTreePrefix(t *testing.T) {
	if p := treePrefix(2, 3); p != "└──" {
		t.Errorf("expected '└──' for last item, got %q", p)
	}
	if p := treePrefix(0, 3); p != "├──" {
		t.Errorf("expected '├──' for non-last item, got %q", p)
	}
}

func TestHealthStatusIcon(t *testing.T) {
	tests := []struct {
		status component.HealthStatus
		icon   string
	}{
		{component.StatusHealthy, "✅"},
		{component.StatusDegraded, "⚠️"},
		{component.StatusUnhealthy, "❌"},
		{"unknown", "❓"},
	}

	for _, tc := range tests {
		if got := healthStatusIcon(tc.status); got != tc.icon {
			t.Errorf("healthStatusIcon(%q) = %q, expected %q", tc.status, got, tc.icon)
		}
	}
}

func TestMethodColor(t *testing.T) {
	for _, m := range []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"} {
		if methodColor(m) == "" {
			t.Errorf("expected non-empty color for %s", m)
		}
	}
}
