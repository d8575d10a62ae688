package transcription

import (
	"context"

	"github.com/kbukum/transcript-gateway/component"
)

// NewComponent exposes p to the component registry. Start and Stop are
// no-ops; health reflects IsAvailable and never calls the upstream API.
func NewComponent(p Provider, details string) component.Component {
	return &providerComponent{provider: p, details: details}
}

type providerComponent struct {
	provider Provider
	details  string
}

func (c *providerComponent) Name() string                { return "transcription:" + c.provider.Name() }
func (c *providerComponent) Start(context.Context) error { return nil }
func (c *providerComponent) Stop(context.Context) error  { return nil }

func (c *providerComponent) Health(ctx context.Context) component.Health {
	if !c.provider.IsAvailable(ctx) {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "provider not configured"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

func (c *providerComponent) Describe() component.Description {
	return component.Description{Name: "Transcription (" + c.provider.Name() + ")", Type: "provider", Details: c.details}
}
