// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

type fastDeriver struct{}

func (fastDeriver) DeriveKey(password string, salt models.Salt) (*crypto.MasterKey, error) {
	if password == "" {
		return nil, crypto.ErrEmptyPassword
	}
	sum := sha256.Sum256([]byte(string(salt) + "\x00" + password))
	return crypto.NewMasterKey(sum[:])
}

type mapCatalog map[string]models.PluginDescriptor

func (c mapCatalog) Get(id string) (models.PluginDescriptor, bool) {
	d, ok := c[id]
	return d, ok
}

var testCatalog = mapCatalog{
	"code_scanner":     {ID: "code_scanner", Name: "Code Scanner", Type: models.PluginTool, RequestsVaultAccess: true},
	"gemini_assistant": {ID: "gemini_assistant", Name: "Gemini Assistant", Type: models.PluginAIAssistant, RequestsVaultAccess: true},
	"web_links_widget": {ID: "web_links_widget", Name: "Developer Links", Type: models.PluginWidget},
}

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	fs, err := store.NewFileStorage(":memory:", logger.Nop())
	require.NoError(t, err)
	return store.NewFileStorages(fs)
}

func newTestServices(t *testing.T, s *store.Storages, cfg config.StructuredConfig) *Services {
	t.Helper()
	if s == nil {
		s = newTestStorages(t)
	}
	svc, err := NewServices(context.Background(), Deps{
		Storages: s,
		Catalog:  testCatalog,
		Deriver:  fastDeriver{},
	}, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func unlocked(t *testing.T) *Services {
	t.Helper()
	svc := newTestServices(t, nil, config.StructuredConfig{})
	require.NoError(t, svc.Session.Unlock(context.Background(), "master"))
	return svc
}

func TestNewServices_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StructuredConfig
	}{
		{"cipher", config.StructuredConfig{Crypto: config.Crypto{Cipher: "des"}}},
		{"autolock", config.StructuredConfig{Vault: config.Vault{DefaultAutoLock: "7"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServices(context.Background(), Deps{Storages: newTestStorages(t), Catalog: testCatalog, Deriver: fastDeriver{}}, tt.cfg, logger.Nop())
			assert.Error(t, err)
		})
	}

	_, err := NewServices(context.Background(), Deps{Storages: newTestStorages(t), Catalog: testCatalog}, config.StructuredConfig{Crypto: config.Crypto{KDF: "md5"}}, logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
}

func TestNewServices_AutoLockTimeout(t *testing.T) {
	s := newTestStorages(t)

	svc := newTestServices(t, s, config.StructuredConfig{Vault: config.Vault{DefaultAutoLock: "never"}})
	assert.Equal(t, models.AutoLockNever, svc.Session.AutoLockTimeout())

	require.NoError(t, svc.Session.SetAutoLockTimeout(context.Background(), models.AutoLockThirtyMin))

	reopened := newTestServices(t, s, config.StructuredConfig{Vault: config.Vault{DefaultAutoLock: "never"}})
	assert.Equal(t, models.AutoLockThirtyMin, reopened.Session.AutoLockTimeout(), "persisted value wins over the default")
}

func TestServices_CloseLocks(t *testing.T) {
	svc := unlocked(t)
	require.False(t, svc.Session.Locked())

	svc.Close()
	assert.True(t, svc.Session.Locked())

	var nilServices *Services
	assert.NotPanics(t, nilServices.Close)
}

func TestServices_SessionIsVaultSession(t *testing.T) {
	svc := unlocked(t)
	_, ok := svc.Session.(*vault.Session)
	assert.True(t, ok)
}
