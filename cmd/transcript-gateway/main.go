// Command transcript-gateway serves transcripts for media URLs by
// delegating to the Supadata API.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	app, _, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
