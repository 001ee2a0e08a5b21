// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/logger"
)

// Storages groups the vault repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	Salts    SaltRepository
	Records  VaultRecordRepository
	Grants   GrantRepository
	Settings SettingsRepository

	closer io.Closer
}

// NewStorages initialises the storage layer selected by cfg.Driver.
//
// For [config.DriverSQLite] it opens the database at cfg.DB.DSN (creating the
// file if needed) and runs pending migrations. For [config.DriverFile] it
// opens the JSON document at cfg.File.Path.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
		}

		return NewSQLStorages(db, logger), nil

	case config.DriverFile:
		fs, err := NewFileStorage(cfg.File.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return NewFileStorages(fs), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// NewSQLStorages wires all repositories to an already migrated db.
func NewSQLStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Salts:    NewSaltRepository(db, logger),
		Records:  NewVaultRecordRepository(db, logger),
		Grants:   NewGrantRepository(db, logger),
		Settings: NewSettingsRepository(db, logger),
		closer:   db,
	}
}

// NewFileStorages exposes one [FileStorage] through every repository.
func NewFileStorages(fs *FileStorage) *Storages {
	return &Storages{
		Salts:    fs,
		Records:  fs,
		Grants:   fs,
		Settings: fs,
	}
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
