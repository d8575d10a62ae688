package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/transcript-gateway/logger"
)

// Manager combines a Registry for construction with a Selector for choosing
// among initialized providers.
type Manager[C any, T Provider] struct {
	mu          sync.RWMutex
	registry    *Registry[C, T]
	selector    Selector[T]
	providers   map[string]T
	defaultName string
	log         *logger.Logger
}

// NewManager creates a Manager backed by the given registry and selector.
func NewManager[C any, T Provider](registry *Registry[C, T], selector Selector[T]) *Manager[C, T] {
	return &Manager[C, T]{
		registry:  registry,
		selector:  selector,
		providers: make(map[string]T),
		log:       logger.WithComponent("provider"),
	}
}

// Register adds a factory to the underlying registry.
func (m *Manager[C, T]) Register(name string, factory Factory[C, T]) {
	m.registry.RegisterFactory(name, factory)
	m.log.Debug("factory registered", map[string]interface{}{"provider": name})
}

// Initialize creates a provider from its factory and stores it for use.
func (m *Manager[C, T]) Initialize(name string, cfg C) error {
	instance, err := m.registry.Create(name, cfg)
	if err != nil {
		return fmt.Errorf("initialize provider %q: %w", name, err)
	}
	m.mu.Lock()
	m.providers[name] = instance
	m.mu.Unlock()
	m.registry.Set(name, instance)
	m.log.Info("provider initialized", map[string]interface{}{"provider": name})
	return nil
}

// Get returns the default provider if set, otherwise the one chosen by the
// selector.
func (m *Manager[C, T]) Get(ctx context.Context) (T, error) {
	m.mu.RLock()
	defaultName := m.defaultName
	providers := m.snapshotLocked()
	m.mu.RUnlock()

	if defaultName != "" {
		if p, ok := providers[defaultName]; ok {
			return p, nil
		}
		var zero T
		return zero, fmt.Errorf("default provider %q not found", defaultName)
	}
	return m.selector.Select(ctx, providers)
}

// SetDefault sets the default provider by name.
func (m *Manager[C, T]) SetDefault(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %q not initialized", name)
	}
	m.defaultName = name
	return nil
}

// Available returns the sorted names of all initialized providers.
func (m *Manager[C, T]) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manager[C, T]) snapshotLocked() map[string]T {
	cp := make(map[string]T, len(m.providers))
	for k, v := range m.providers {
		cp[k] = v
	}
	return cp
}
