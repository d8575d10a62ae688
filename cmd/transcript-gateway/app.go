package main

import (
	"context"
	"fmt"

	"github.com/kbukum/transcript-gateway/auth"
	"github.com/kbukum/transcript-gateway/bootstrap"
	"github.com/kbukum/transcript-gateway/component"
	"github.com/kbukum/transcript-gateway/logger"
	"github.com/kbukum/transcript-gateway/observability"
	"github.com/kbukum/transcript-gateway/server"
	"github.com/kbukum/transcript-gateway/server/middleware"
	"github.com/kbukum/transcript-gateway/transcript"
	"github.com/kbukum/transcript-gateway/transcription"
	"github.com/kbukum/transcript-gateway/transcription/supadata"
	"github.com/kbukum/transcript-gateway/util"
	"github.com/kbukum/transcript-gateway/version"
)

// newApp validates cfg and wires telemetry, the Supadata provider, the
// transcript handler and the HTTP server into a bootstrap.App. Components
// start in that order and stop in reverse.
func newApp(ctx context.Context, cfg *Config, opts ...bootstrap.Option) (*bootstrap.App[*Config], *server.Server, error) {
	app, err := bootstrap.NewApp(cfg, opts...)
	if err != nil {
		return nil, nil, err
	}

	shutdownTelemetry, err := observability.Setup(ctx, cfg.Observability, cfg.Name, cfg.Version, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("observability: %w", err)
	}
	if err := app.RegisterComponent(&component.Func{
		ComponentName: "telemetry",
		StopFunc:      shutdownTelemetry,
	}); err != nil {
		return nil, nil, err
	}

	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		return nil, nil, fmt.Errorf("observability: %w", err)
	}

	p, err := newProvider(ctx, cfg, metrics)
	if err != nil {
		return nil, nil, err
	}
	p = transcription.WithLogging(p, app.Logger.WithComponent(supadata.ProviderName))
	details := fmt.Sprintf("%s key=%s", cfg.Supadata.BaseURL, util.MaskSecret(cfg.Supadata.APIKey, 4))
	if err := app.RegisterComponent(transcription.NewComponent(p, details)); err != nil {
		return nil, nil, err
	}

	validator, err := auth.NewValidator(cfg.Auth)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: %w", err)
	}
	var extra []middleware.Middleware
	if validator != nil {
		extra = append(extra, middleware.Auth(middleware.AuthConfig{
			Validator: validator,
			SkipPaths: cfg.Auth.SkipPaths,
		}))
	}

	srv := server.New(cfg.Server, app.Logger)
	srv.ApplyDefaults(cfg.Name, cfg.Environment, app.Components.Ready, extra...)

	svc := transcript.NewService(p, cfg.Transcript)
	transcript.NewHandler(svc, transcript.WithMetrics(metrics)).RegisterRoutes(srv.GinEngine())

	if err := app.RegisterComponent(server.NewComponent(srv)); err != nil {
		return nil, nil, err
	}

	app.Logger.Info("Service wired", map[string]interface{}{
		"provider": supadata.ProviderName,
		"auth":     cfg.Auth.Describe(),
		"tracing":  cfg.Observability.Tracing.Enabled,
		"metrics":  cfg.Observability.Metrics.Enabled,
	})
	return app, srv, nil
}

// newProvider builds the Supadata binding through the provider manager.
func newProvider(ctx context.Context, cfg *Config, metrics *observability.Metrics) (transcription.Provider, error) {
	cfg.Supadata.UserAgent = version.UserAgent(cfg.Name)

	manager := transcription.NewManager[supadata.Config](nil)
	manager.Register(supadata.ProviderName, supadata.Factory(supadata.WithMetrics(metrics)))
	if err := manager.Initialize(supadata.ProviderName, cfg.Supadata); err != nil {
		return nil, fmt.Errorf("supadata: %w", err)
	}
	if err := manager.SetDefault(supadata.ProviderName); err != nil {
		return nil, err
	}
	logger.WithComponent("provider").Debug("Providers initialized",
		logger.Fields("providers", manager.Available(), "default", supadata.ProviderName))
	return manager.Get(ctx)
}
