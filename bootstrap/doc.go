// Package bootstrap runs a service through its lifecycle.
//
// An App owns the typed configuration, the logger and the component
// registry. Run starts every component, runs configure callbacks and hooks,
// prints the startup summary, then blocks until SIGINT/SIGTERM or context
// cancellation and shuts everything down in reverse order.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	_ = app.RegisterComponent(srv)
//	return app.Run(ctx)
package bootstrap
