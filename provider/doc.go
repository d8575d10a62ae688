// Package provider is a small generic framework for swappable backends.
//
// A Registry maps names to typed factories, and a Manager initializes
// providers from configuration and hands out the default one (or the one a
// Selector picks):
//
//	reg := provider.NewRegistry[supadata.Config, transcription.Provider]()
//	mgr := provider.NewManager(reg, &provider.HealthCheckSelector[transcription.Provider]{})
//	mgr.Register("supadata", supadata.Factory)
//	_ = mgr.Initialize("supadata", cfg.Supadata)
//	p, _ := mgr.Get(ctx)
package provider
