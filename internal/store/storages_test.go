// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/models"
)

// backends opens every storage driver on a fresh temp dir.
func backends(t *testing.T) map[string]func(t *testing.T) *Storages {
	return map[string]func(t *testing.T) *Storages{
		config.DriverSQLite: func(t *testing.T) *Storages {
			s, err := NewStorages(context.Background(), config.Storage{
				Driver: config.DriverSQLite,
				DB:     config.DB{DSN: filepath.Join(t.TempDir(), "nested", "vault.db")},
			}, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
		config.DriverFile: func(t *testing.T) *Storages {
			s, err := NewStorages(context.Background(), config.Storage{
				Driver: config.DriverFile,
				File:   config.File{Path: filepath.Join(t.TempDir(), "vault.json")},
			}, logger.Nop())
			require.NoError(t, err)
			return s
		},
	}
}

func TestStorages_Salt(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			_, found, err := s.Salts.GetSalt(ctx)
			require.NoError(t, err)
			assert.False(t, found)

			stored, err := s.Salts.CreateSaltIfAbsent(ctx, "Zmlyc3Q=")
			require.NoError(t, err)
			assert.Equal(t, models.Salt("Zmlyc3Q="), stored)

			stored, err = s.Salts.CreateSaltIfAbsent(ctx, "c2Vjb25k")
			require.NoError(t, err)
			assert.Equal(t, models.Salt("Zmlyc3Q="), stored, "salt is never replaced")

			salt, found, err := s.Salts.GetSalt(ctx)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, models.Salt("Zmlyc3Q="), salt)
		})
	}
}

func TestStorages_RecordVersioning(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			_, found, err := s.Records.GetRecord(ctx)
			require.NoError(t, err)
			assert.False(t, found)

			v1, err := s.Records.SaveRecord(ctx, models.VaultRecord{IV: "aXYx", Ciphertext: "Y3Qx", Algorithm: "aes-gcm"}, 0)
			require.NoError(t, err)
			assert.Equal(t, int64(1), v1)

			_, err = s.Records.SaveRecord(ctx, models.VaultRecord{IV: "bad", Ciphertext: "bad", Algorithm: "aes-gcm"}, 0)
			assert.ErrorIs(t, err, ErrVersionConflict, "second first-write must lose")

			v2, err := s.Records.SaveRecord(ctx, models.VaultRecord{IV: "aXYy", Ciphertext: "Y3Qy", Algorithm: "aes-gcm"}, v1)
			require.NoError(t, err)
			assert.Equal(t, int64(2), v2)

			_, err = s.Records.SaveRecord(ctx, models.VaultRecord{IV: "old", Ciphertext: "old", Algorithm: "aes-gcm"}, v1)
			assert.ErrorIs(t, err, ErrVersionConflict)

			rec, found, err := s.Records.GetRecord(ctx)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "aXYy", rec.IV)
			assert.Equal(t, "Y3Qy", rec.Ciphertext)
			assert.Equal(t, "aes-gcm", rec.Algorithm)
			assert.Equal(t, int64(2), rec.Version)
			assert.False(t, rec.UpdatedAt.IsZero())
		})
	}
}

func TestStorages_Grants(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			granted, err := s.Grants.IsGranted(ctx, "code_scanner")
			require.NoError(t, err)
			assert.False(t, granted)

			require.NoError(t, s.Grants.SetGrant(ctx, "openai_assistant"))
			require.NoError(t, s.Grants.SetGrant(ctx, "code_scanner"))
			require.NoError(t, s.Grants.SetGrant(ctx, "code_scanner"))

			grants, err := s.Grants.ListGrants(ctx)
			require.NoError(t, err)
			require.Len(t, grants, 2)
			assert.Equal(t, "code_scanner", grants[0].PluginID)
			assert.Equal(t, "openai_assistant", grants[1].PluginID)
			assert.True(t, grants[0].Granted)

			require.NoError(t, s.Grants.DeleteGrant(ctx, "code_scanner"))
			granted, err = s.Grants.IsGranted(ctx, "code_scanner")
			require.NoError(t, err)
			assert.False(t, granted)

			// deleting an absent grant is not an error
			require.NoError(t, s.Grants.DeleteGrant(ctx, "code_scanner"))
		})
	}
}

func TestStorages_Settings(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			_, found, err := s.Settings.GetAutoLockTimeout(ctx)
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, s.Settings.SetAutoLockTimeout(ctx, models.AutoLockNever))
			got, found, err := s.Settings.GetAutoLockTimeout(ctx)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, models.AutoLockNever, got)

			require.NoError(t, s.Settings.SetAutoLockTimeout(ctx, models.AutoLockThirtyMin))
			got, _, err = s.Settings.GetAutoLockTimeout(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.AutoLockThirtyMin, got)
		})
	}
}

func TestStorages_SQLiteReopenKeepsData(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vault.db")
	cfg := config.Storage{Driver: config.DriverSQLite, DB: config.DB{DSN: dsn}}
	ctx := context.Background()

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	_, err = s.Records.SaveRecord(ctx, models.VaultRecord{IV: "aXY=", Ciphertext: "Y3Q=", Algorithm: "aes-gcm"}, 0)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	rec, found, err := s.Records.GetRecord(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1), rec.Version)
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{Driver: "postgres"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
	assert.NoError(t, NewFileStorages(&FileStorage{}).Close())
}
