// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/models"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository returns a SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) GetAutoLockTimeout(ctx context.Context) (models.AutoLockTimeout, bool, error) {
	query, args, err := buildSelectSettingQuery(settingAutoLockTimeout)
	if err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.GetAutoLockTimeout").Msg("failed to build query")
		return 0, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.GetAutoLockTimeout").Msg("failed to read setting")
		return 0, false, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrScanningRow, err)
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.GetAutoLockTimeout").Msg("stored auto-lock timeout is not a number")
		return 0, false, fmt.Errorf("%w: %s=%q", ErrCorruptedSetting, settingAutoLockTimeout, raw)
	}

	return models.AutoLockTimeout(minutes), true, nil
}

func (s *settingsRepository) SetAutoLockTimeout(ctx context.Context, timeout models.AutoLockTimeout) error {
	query, args, err := buildUpsertSettingQuery(settingAutoLockTimeout, int(timeout))
	if err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.SetAutoLockTimeout").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.execWithRetry(ctx, query, args); err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.SetAutoLockTimeout").Msg("failed to persist setting")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	return nil
}
