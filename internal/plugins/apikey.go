// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import (
	"context"
	"fmt"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

// APIKeyPlugin is a plugin whose only vault use is a third-party API key.
type APIKeyPlugin struct {
	descriptor models.PluginDescriptor

	notifier vault.Notifier
	logger   *logger.Logger
}

// NewAPIKeyPlugin returns a vault consumer for d. notifier reports a key
// that could not be stored once access was granted; it may be nil.
func NewAPIKeyPlugin(d models.PluginDescriptor, notifier vault.Notifier, logger *logger.Logger) *APIKeyPlugin {
	d.RequestsVaultAccess = true
	return &APIKeyPlugin{descriptor: d, notifier: notifier, logger: logger}
}

func (p *APIKeyPlugin) Descriptor() models.PluginDescriptor {
	return p.descriptor
}

func (p *APIKeyPlugin) UsesVault() bool {
	return true
}

// Configure stores apiKey through pv. Without a grant it raises an access
// request and returns ErrAwaitingConsent; the key is stored when the user
// approves, and a failure at that point goes to the notifier.
func (p *APIKeyPlugin) Configure(ctx context.Context, pv service.PluginVault, apiKey string) error {
	if apiKey == "" {
		return service.ErrInvalidDataProvided
	}
	if err := p.checkCapability(pv); err != nil {
		return err
	}

	granted, err := pv.HasAccess(ctx)
	if err != nil {
		return err
	}
	if granted {
		return service.StoreAPIKey(ctx, pv, apiKey)
	}

	bg := context.WithoutCancel(ctx)
	err = pv.RequestAccess(ctx, func() {
		if err := service.StoreAPIKey(bg, pv, apiKey); err != nil {
			p.logger.Err(err).
				Str("func", "APIKeyPlugin.Configure").
				Str("plugin_id", p.descriptor.ID).
				Msg("failed to store api key after grant")
			if p.notifier != nil {
				p.notifier.Notify(models.Notification{
					Message: fmt.Sprintf("Could not save the API key for %s: %v", p.name(), err),
					Type:    models.NotificationError,
				})
			}
			return
		}
		p.logger.Info().Str("plugin_id", p.descriptor.ID).Msg("api key saved")
	})
	if err != nil {
		return err
	}
	return ErrAwaitingConsent
}

// APIKey returns the stored key. found is false when none is stored.
func (p *APIKeyPlugin) APIKey(ctx context.Context, pv service.PluginVault) (string, bool, error) {
	if err := p.checkCapability(pv); err != nil {
		return "", false, err
	}
	return service.GetAPIKey(ctx, pv)
}

func (p *APIKeyPlugin) name() string {
	if p.descriptor.Name != "" {
		return p.descriptor.Name
	}
	return p.descriptor.ID
}

func (p *APIKeyPlugin) checkCapability(pv service.PluginVault) error {
	if pv.PluginID() != p.descriptor.ID {
		return fmt.Errorf("%w: %s", ErrCapabilityMismatch, pv.PluginID())
	}
	if !pv.Unlocked() {
		return vault.ErrVaultLocked
	}
	return nil
}
