// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/internal/validators"
	"github.com/MKhiriev/devkit-vault/internal/vault"
)

// Services is the application layer shared by the host UI and the bridge.
type Services struct {
	Session   SessionService
	Passwords PasswordService
	Plugins   PluginAccessService

	session *vault.Session
}

// Deps are the collaborators owned by the caller.
type Deps struct {
	Storages *store.Storages
	Catalog  PluginCatalog
	Notifier vault.Notifier
	Prompter vault.Prompter
	Deriver  crypto.KeyDeriver
}

// NewServices builds the vault stack over deps.Storages. The persisted
// auto-lock timeout is loaded before returning. A nil deps.Deriver selects
// the KDF named in cfg.
func NewServices(ctx context.Context, deps Deps, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	alg, err := crypto.ParseAlgorithm(cfg.Crypto.Cipher)
	if err != nil {
		return nil, err
	}
	deriver := deps.Deriver
	if deriver == nil {
		if deriver, err = crypto.NewKeyDeriver(cfg.Crypto.KDF); err != nil {
			return nil, err
		}
	}
	autoLock, err := cfg.Vault.AutoLock()
	if err != nil {
		return nil, err
	}

	vaultLogger := logger.WithComponent("vault")
	blobs := vault.NewBlobStore(deps.Storages.Records, alg, vaultLogger)
	manager := vault.NewManager(blobs, deps.Storages.Grants, vaultLogger)
	protocol := vault.NewAccessProtocol(deps.Storages.Grants, deps.Prompter, deps.Notifier, vaultLogger)
	session := vault.NewSession(
		deriver,
		deps.Storages.Salts,
		blobs,
		deps.Storages.Settings,
		deps.Notifier,
		vault.SessionConfig{DefaultAutoLock: autoLock},
		vaultLogger,
	)
	if err := session.LoadAutoLockTimeout(ctx); err != nil {
		return nil, fmt.Errorf("init session: %w", err)
	}

	svcLogger := logger.WithComponent("service")
	return &Services{
		Session:   session,
		Passwords: NewPasswordService(session, manager, validators.NewVaultValidator(), svcLogger),
		Plugins:   NewPluginAccessService(session, manager, protocol, deps.Catalog, svcLogger),
		session:   session,
	}, nil
}

// Close locks the vault and stops the idle timer.
func (s *Services) Close() {
	if s != nil && s.session != nil {
		s.session.Close()
	}
}
