// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import (
	"context"

	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/models"
)

// Plugin is a dashboard module known to the registry.
type Plugin interface {
	Descriptor() models.PluginDescriptor
}

// VaultConsumer is a plugin that keeps secrets in its vault namespace.
type VaultConsumer interface {
	Plugin
	UsesVault() bool
}

// KeyConsumer is a vault consumer configured with a single API key.
// [APIKeyPlugin] implements it.
type KeyConsumer interface {
	VaultConsumer
	Configure(ctx context.Context, pv service.PluginVault, apiKey string) error
	APIKey(ctx context.Context, pv service.PluginVault) (key string, found bool, err error)
}

// Widget is a plugin without vault access.
type Widget struct {
	descriptor models.PluginDescriptor
}

func NewWidget(d models.PluginDescriptor) *Widget {
	d.RequestsVaultAccess = false
	return &Widget{descriptor: d}
}

func (w *Widget) Descriptor() models.PluginDescriptor {
	return w.descriptor
}
