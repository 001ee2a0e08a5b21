// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

// SessionService is the lock/unlock surface handed to the host UI.
// *vault.Session implements it.
type SessionService interface {
	// Unlock derives the master key from password. A wrong password returns
	// vault.ErrAuthenticationFailed and leaves the session locked.
	Unlock(ctx context.Context, password string) error

	// Lock discards the master key. It is idempotent.
	Lock()

	// Locked reports whether no master key is held.
	Locked() bool

	// Touch resets the idle timer on user activity.
	Touch(a vault.Activity)

	AutoLockTimeout() models.AutoLockTimeout

	// SetAutoLockTimeout persists t and restarts the idle timer.
	SetAutoLockTimeout(ctx context.Context, t models.AutoLockTimeout) error
}

// PasswordService is the password-manager facade. It only ever sees user
// entries; plugin secrets are invisible to it.
type PasswordService interface {
	// List returns every user entry sorted by title, then ID.
	List(ctx context.Context) ([]models.UserSecret, error)

	// Search returns the entries whose title or username contains query,
	// case-insensitively. An empty query returns everything.
	Search(ctx context.Context, query string) ([]models.UserSecret, error)

	// Get returns a single entry. found is false when id is unknown.
	Get(ctx context.Context, id string) (secret models.UserSecret, found bool, err error)

	// Save validates entry and stores it under id. An empty id creates a
	// new entry. The stored ID is returned.
	Save(ctx context.Context, id string, entry models.CredentialEntry) (string, error)

	// Delete removes the entry. Deleting an unknown id succeeds.
	Delete(ctx context.Context, id string) error
}

// PluginVault is the narrow capability a single plugin receives. It never
// exposes the vault object or any other plugin's namespace.
type PluginVault interface {
	PluginID() string

	// Unlocked reports whether the vault currently holds a master key.
	Unlocked() bool

	// HasAccess reports whether the plugin holds a persisted grant.
	HasAccess(ctx context.Context) (bool, error)

	// RequestAccess asks the user for consent. onGranted runs once access is
	// granted, immediately if it already was.
	RequestAccess(ctx context.Context, onGranted func()) error

	// GetSecret returns the plugin secret name. found is false when unset.
	GetSecret(ctx context.Context, name string) (value string, found bool, err error)

	// PutSecret stores value as the plugin secret name.
	PutSecret(ctx context.Context, name, value string) error
}

// PluginAccessService manages consent for every plugin.
type PluginAccessService interface {
	// Capability returns the vault capability of a registered plugin.
	Capability(pluginID string) (PluginVault, error)

	// State returns the consent state of pluginID.
	State(ctx context.Context, pluginID string) (models.AccessState, error)

	// Pending lists requests waiting for a decision, oldest first.
	Pending() []models.AccessRequest

	// Decide approves or denies the pending request of pluginID.
	Decide(ctx context.Context, pluginID string, approve bool) error

	// Await blocks until the pending request of pluginID is decided.
	Await(ctx context.Context, pluginID string) (bool, error)

	// Cancel drops the pending request of pluginID.
	Cancel(pluginID string)

	// Revoke deletes the plugin secrets and then its grant. The vault must
	// be unlocked.
	Revoke(ctx context.Context, pluginID string) error

	// Grants lists persisted grants.
	Grants(ctx context.Context) ([]models.AccessGrant, error)
}

// PluginCatalog resolves plugin descriptors by ID.
type PluginCatalog interface {
	Get(id string) (models.PluginDescriptor, bool)
}
