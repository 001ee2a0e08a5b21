// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

// sessionKeys is what plugin capabilities need from the session.
type sessionKeys interface {
	keySource
	Locked() bool
}

type pluginAccessService struct {
	keys     sessionKeys
	manager  *vault.Manager
	protocol *vault.AccessProtocol
	catalog  PluginCatalog

	logger *logger.Logger
}

func NewPluginAccessService(keys sessionKeys, manager *vault.Manager, protocol *vault.AccessProtocol, catalog PluginCatalog, logger *logger.Logger) PluginAccessService {
	return &pluginAccessService{
		keys:     keys,
		manager:  manager,
		protocol: protocol,
		catalog:  catalog,
		logger:   logger,
	}
}

func (s *pluginAccessService) Capability(pluginID string) (PluginVault, error) {
	d, ok := s.catalog.Get(pluginID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlugin, pluginID)
	}
	if !d.RequestsVaultAccess {
		return nil, fmt.Errorf("%w: %s", ErrNoVaultAccess, pluginID)
	}
	return &pluginVault{descriptor: d, svc: s}, nil
}

func (s *pluginAccessService) State(ctx context.Context, pluginID string) (models.AccessState, error) {
	return s.protocol.State(ctx, pluginID)
}

func (s *pluginAccessService) Pending() []models.AccessRequest {
	return s.protocol.Pending()
}

func (s *pluginAccessService) Decide(ctx context.Context, pluginID string, approve bool) error {
	return s.protocol.Decide(ctx, pluginID, approve)
}

func (s *pluginAccessService) Await(ctx context.Context, pluginID string) (bool, error) {
	return s.protocol.Await(ctx, pluginID)
}

func (s *pluginAccessService) Cancel(pluginID string) {
	s.protocol.Cancel(pluginID)
}

func (s *pluginAccessService) Revoke(ctx context.Context, pluginID string) error {
	key, err := s.keys.Key()
	if err != nil {
		return err
	}
	return s.protocol.Revoke(ctx, key, s.manager, pluginID)
}

func (s *pluginAccessService) Grants(ctx context.Context) ([]models.AccessGrant, error) {
	return s.protocol.Grants(ctx)
}

// pluginVault binds the service to one plugin.
type pluginVault struct {
	descriptor models.PluginDescriptor
	svc        *pluginAccessService
}

func (p *pluginVault) PluginID() string {
	return p.descriptor.ID
}

func (p *pluginVault) Unlocked() bool {
	return !p.svc.keys.Locked()
}

func (p *pluginVault) HasAccess(ctx context.Context) (bool, error) {
	return p.svc.protocol.HasAccess(ctx, p.descriptor.ID)
}

func (p *pluginVault) RequestAccess(ctx context.Context, onGranted func()) error {
	return p.svc.protocol.RequestAccess(ctx, p.descriptor, onGranted)
}

func (p *pluginVault) GetSecret(ctx context.Context, name string) (string, bool, error) {
	key, err := p.svc.keys.Key()
	if err != nil {
		return "", false, err
	}
	return p.svc.manager.GetPluginSecret(ctx, key, p.descriptor.ID, name)
}

func (p *pluginVault) PutSecret(ctx context.Context, name, value string) error {
	key, err := p.svc.keys.Key()
	if err != nil {
		return err
	}
	if err := p.svc.manager.PutPluginSecret(ctx, key, p.descriptor.ID, name, value); err != nil {
		p.svc.logger.Err(err).
			Str("func", "pluginVault.PutSecret").
			Str("plugin_id", p.descriptor.ID).
			Str("name", name).
			Msg("failed to store plugin secret")
		return err
	}
	return nil
}
