// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/devkit-vault/internal/validators"
	"github.com/MKhiriev/devkit-vault/models"
)

// Registry is the thread-safe plugin catalog. It implements
// service.PluginCatalog.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string

	validator validators.Validator
}

// NewRegistry registers plugins in the given order.
func NewRegistry(plugins ...Plugin) (*Registry, error) {
	r := &Registry{
		plugins:   make(map[string]Plugin, len(plugins)),
		validator: validators.NewVaultValidator(),
	}
	for _, p := range plugins {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds p. The descriptor is validated and its ID must be unique.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return ErrNilPlugin
	}
	d := p.Descriptor()
	if err := r.validator.Validate(context.Background(), d); err != nil {
		return fmt.Errorf("plugin %q: %w", d.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[d.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlugin, d.ID)
	}
	r.plugins[d.ID] = p
	r.order = append(r.order, d.ID)
	return nil
}

// Get returns the descriptor of plugin id.
func (r *Registry) Get(id string) (models.PluginDescriptor, bool) {
	p, ok := r.Plugin(id)
	if !ok {
		return models.PluginDescriptor{}, false
	}
	return p.Descriptor(), true
}

// Plugin returns the registered plugin id.
func (r *Registry) Plugin(id string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[id]
	return p, ok
}

// KeyConsumer returns plugin id when it takes an API key.
func (r *Registry) KeyConsumer(id string) (KeyConsumer, bool) {
	p, ok := r.Plugin(id)
	if !ok {
		return nil, false
	}
	kc, ok := p.(KeyConsumer)
	return kc, ok
}

// List returns the descriptors in registration order.
func (r *Registry) List() []models.PluginDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.PluginDescriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.plugins[id].Descriptor())
	}
	return out
}

// VaultConsumers returns the descriptors of plugins that request vault
// access, in registration order.
func (r *Registry) VaultConsumers() []models.PluginDescriptor {
	var out []models.PluginDescriptor
	for _, d := range r.List() {
		if d.RequestsVaultAccess {
			out = append(out, d)
		}
	}
	return out
}
