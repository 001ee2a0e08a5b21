// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/devkit-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SaltRepository persists the plaintext KDF salt of the vault.
type SaltRepository interface {
	// GetSalt returns the stored salt and whether one exists.
	GetSalt(ctx context.Context) (models.Salt, bool, error)
	// CreateSaltIfAbsent stores salt unless a salt already exists, and
	// returns whichever salt is stored afterwards.
	CreateSaltIfAbsent(ctx context.Context, salt models.Salt) (models.Salt, error)
}

// VaultRecordRepository persists the single encrypted vault record.
type VaultRecordRepository interface {
	// GetRecord returns the stored record and whether one exists.
	GetRecord(ctx context.Context) (models.VaultRecord, bool, error)
	// SaveRecord replaces the whole record if the stored version equals
	// expectedVersion (0 when nothing is stored yet) and returns the new
	// version, expectedVersion+1. A mismatch yields ErrVersionConflict.
	SaveRecord(ctx context.Context, rec models.VaultRecord, expectedVersion int64) (int64, error)
}

// GrantRepository persists plugin access grants.
type GrantRepository interface {
	ListGrants(ctx context.Context) ([]models.AccessGrant, error)
	IsGranted(ctx context.Context, pluginID string) (bool, error)
	SetGrant(ctx context.Context, pluginID string) error
	DeleteGrant(ctx context.Context, pluginID string) error
}

// SettingsRepository persists user preferences.
type SettingsRepository interface {
	GetAutoLockTimeout(ctx context.Context) (models.AutoLockTimeout, bool, error)
	SetAutoLockTimeout(ctx context.Context, timeout models.AutoLockTimeout) error
}
