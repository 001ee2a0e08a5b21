// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/models"
)

type vaultRecordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewVaultRecordRepository returns a SQLite-backed [VaultRecordRepository].
func NewVaultRecordRepository(db *DB, logger *logger.Logger) VaultRecordRepository {
	return &vaultRecordRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (v *vaultRecordRepository) GetRecord(ctx context.Context) (models.VaultRecord, bool, error) {
	query, args, err := buildSelectRecordQuery()
	if err != nil {
		v.logger.Err(err).Str("func", "vaultRecordRepository.GetRecord").Msg("failed to build query")
		return models.VaultRecord{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.VaultRecord
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(
		&rec.IV,
		&rec.Ciphertext,
		&rec.Algorithm,
		&rec.Version,
		&rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultRecord{}, false, nil
	}
	if err != nil {
		v.logger.Err(err).Str("func", "vaultRecordRepository.GetRecord").Msg("failed to read vault record")
		return models.VaultRecord{}, false, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrScanningRow, err)
	}

	return rec, true, nil
}

func (v *vaultRecordRepository) SaveRecord(ctx context.Context, rec models.VaultRecord, expectedVersion int64) (int64, error) {
	query, args, err := buildSaveRecordQuery(rec, expectedVersion, v.now())
	if err != nil {
		v.logger.Err(err).Str("func", "vaultRecordRepository.SaveRecord").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := v.execWithRetry(ctx, query, args)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultRecordRepository.SaveRecord").Msg("failed to write vault record")
		return 0, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		v.logger.Err(err).Str("func", "vaultRecordRepository.SaveRecord").Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if affected == 0 {
		v.logger.Warn().
			Str("func", "vaultRecordRepository.SaveRecord").
			Int64("expected_version", expectedVersion).
			Msg("optimistic lock failed: version mismatch on save")
		return 0, ErrVersionConflict
	}

	newVersion := expectedVersion + 1
	v.logger.Debug().
		Str("func", "vaultRecordRepository.SaveRecord").
		Int64("version", newVersion).
		Msg("vault record saved")

	return newVersion, nil
}
