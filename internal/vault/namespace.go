// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/models"
)

const (
	// PluginPrefix starts every plugin-scoped key in the vault object.
	PluginPrefix = "plugin:"
	// namespaceSeparator splits plugin ID and secret name.
	namespaceSeparator = ":"
)

var idGenerator = utils.NewUUIDGenerator()

// NewUserSecretID returns a fresh entry ID. Generated IDs never carry
// [PluginPrefix].
func NewUserSecretID() string {
	return idGenerator.Generate()
}

// PluginSecretKey returns the vault key "plugin:<pluginID>:<name>".
func PluginSecretKey(pluginID, name string) (string, error) {
	if err := ValidatePluginID(pluginID); err != nil {
		return "", err
	}
	if name == "" || strings.Contains(name, namespaceSeparator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSecretName, name)
	}
	return pluginNamespace(pluginID) + name, nil
}

// ValidatePluginID rejects empty IDs and IDs containing ':'.
func ValidatePluginID(pluginID string) error {
	if pluginID == "" || strings.Contains(pluginID, namespaceSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidPluginID, pluginID)
	}
	return nil
}

// IsPluginKey reports whether key belongs to the plugin namespace.
func IsPluginKey(key string) bool {
	return strings.HasPrefix(key, PluginPrefix)
}

func pluginNamespace(pluginID string) string {
	return PluginPrefix + pluginID + namespaceSeparator
}

// Manager exposes user entries and plugin secrets over the single vault
// object. Every mutation is a full decrypt, modify, encrypt and persist
// cycle. Mutations are serialised by mu and guarded by the record version,
// so a write from another process surfaces as [ErrStaleWrite].
type Manager struct {
	mu     sync.Mutex
	blobs  *BlobStore
	grants store.GrantRepository
	logger *logger.Logger
}

// NewManager builds a Manager over blobs. Plugin secret operations consult
// grants before touching the vault.
func NewManager(blobs *BlobStore, grants store.GrantRepository, logger *logger.Logger) *Manager {
	return &Manager{
		blobs:  blobs,
		grants: grants,
		logger: logger,
	}
}

// ListUserSecrets returns every entry outside the plugin namespace, in no
// particular order.
func (m *Manager) ListUserSecrets(ctx context.Context, key *crypto.MasterKey) ([]models.UserSecret, error) {
	obj, _, err := m.load(ctx, key)
	if err != nil {
		return nil, err
	}

	secrets := make([]models.UserSecret, 0, len(obj))
	for id, raw := range obj {
		if IsPluginKey(id) {
			continue
		}
		var entry models.CredentialEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			m.logger.Warn().Str("func", "Manager.ListUserSecrets").Str("id", id).Msg("skipping entry that is not a credential")
			continue
		}
		secrets = append(secrets, models.UserSecret{ID: id, Entry: entry})
	}
	return secrets, nil
}

// PutUserSecret creates or replaces the entry stored under id.
func (m *Manager) PutUserSecret(ctx context.Context, key *crypto.MasterKey, id string, entry models.CredentialEntry) error {
	if err := validateUserSecretID(id); err != nil {
		return err
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}

	return m.mutate(ctx, key, func(obj Object) bool {
		obj[id] = raw
		return true
	})
}

// DeleteUserSecret removes the entry stored under id. Deleting a missing
// entry is a no-op and does not rewrite the record.
func (m *Manager) DeleteUserSecret(ctx context.Context, key *crypto.MasterKey, id string) error {
	if err := validateUserSecretID(id); err != nil {
		return err
	}

	return m.mutate(ctx, key, func(obj Object) bool {
		if _, ok := obj[id]; !ok {
			return false
		}
		delete(obj, id)
		return true
	})
}

// GetPluginSecret returns the secret name of pluginID. found is false when
// nothing is stored. A plugin without a grant gets [ErrPermissionDenied].
func (m *Manager) GetPluginSecret(ctx context.Context, key *crypto.MasterKey, pluginID, name string) (value string, found bool, err error) {
	k, err := PluginSecretKey(pluginID, name)
	if err != nil {
		return "", false, err
	}
	if err := m.checkGrant(ctx, pluginID); err != nil {
		return "", false, err
	}

	obj, _, err := m.load(ctx, key)
	if err != nil {
		return "", false, err
	}

	raw, ok := obj[k]
	if !ok {
		return "", false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		m.logger.Err(err).Str("func", "Manager.GetPluginSecret").Str("plugin_id", pluginID).Msg("plugin secret is not a string")
		return "", false, fmt.Errorf("%w: %s: %w", ErrMalformedSecret, k, err)
	}
	return value, true, nil
}

// PutPluginSecret stores value as secret name of pluginID. A plugin without
// a grant gets [ErrPermissionDenied].
func (m *Manager) PutPluginSecret(ctx context.Context, key *crypto.MasterKey, pluginID, name, value string) error {
	k, err := PluginSecretKey(pluginID, name)
	if err != nil {
		return err
	}
	if err := m.checkGrant(ctx, pluginID); err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode plugin secret: %w", err)
	}

	return m.mutate(ctx, key, func(obj Object) bool {
		obj[k] = raw
		return true
	})
}

// DeleteAllPluginSecrets removes every secret of pluginID. It does not
// require a grant so secrets can be purged after revocation or uninstall.
func (m *Manager) DeleteAllPluginSecrets(ctx context.Context, key *crypto.MasterKey, pluginID string) error {
	if err := ValidatePluginID(pluginID); err != nil {
		return err
	}
	prefix := pluginNamespace(pluginID)

	return m.mutate(ctx, key, func(obj Object) bool {
		changed := false
		for k := range obj {
			if strings.HasPrefix(k, prefix) {
				delete(obj, k)
				changed = true
			}
		}
		return changed
	})
}

func (m *Manager) checkGrant(ctx context.Context, pluginID string) error {
	granted, err := m.grants.IsGranted(ctx, pluginID)
	if err != nil {
		return fmt.Errorf("check grant: %w", err)
	}
	if !granted {
		m.logger.Warn().Str("func", "Manager.checkGrant").Str("plugin_id", pluginID).Msg("plugin secret access without grant")
		return fmt.Errorf("%w: %s", ErrPermissionDenied, pluginID)
	}
	return nil
}

// load maps the tagged decrypt result to an object or an error.
func (m *Manager) load(ctx context.Context, key *crypto.MasterKey) (Object, int64, error) {
	if key == nil {
		return nil, 0, ErrVaultLocked
	}

	res := m.blobs.Decrypt(ctx, key)
	if res.Err != nil {
		return nil, 0, res.Err
	}
	switch res.Status {
	case StatusEmpty:
		return Object{}, 0, nil
	case StatusOK:
		return res.Object, res.Version, nil
	default:
		return nil, 0, ErrAuthenticationFailed
	}
}

// mutate runs one serialised read-modify-write cycle. fn reports whether it
// changed obj; an unchanged object is not written.
func (m *Manager) mutate(ctx context.Context, key *crypto.MasterKey, fn func(obj Object) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, version, err := m.load(ctx, key)
	if err != nil {
		return err
	}
	if !fn(obj) {
		return nil
	}

	if _, err := m.blobs.Encrypt(ctx, key, obj, version); err != nil {
		return err
	}
	return nil
}

func validateUserSecretID(id string) error {
	if id == "" {
		return ErrEmptyEntryID
	}
	if IsPluginKey(id) {
		return fmt.Errorf("%w: %q", ErrReservedPrefix, id)
	}
	return nil
}
