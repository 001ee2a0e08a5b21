// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/models"
)

type saltRepository struct {
	*DB
	logger *logger.Logger
}

// NewSaltRepository returns a SQLite-backed [SaltRepository].
func NewSaltRepository(db *DB, logger *logger.Logger) SaltRepository {
	return &saltRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *saltRepository) GetSalt(ctx context.Context) (models.Salt, bool, error) {
	query, args, err := buildSelectSaltQuery()
	if err != nil {
		s.logger.Err(err).Str("func", "saltRepository.GetSalt").Msg("failed to build query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var salt string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&salt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "saltRepository.GetSalt").Msg("failed to read salt")
		return "", false, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}

	return models.Salt(salt), true, nil
}

func (s *saltRepository) CreateSaltIfAbsent(ctx context.Context, salt models.Salt) (models.Salt, error) {
	query, args, err := buildInsertSaltQuery(salt)
	if err != nil {
		s.logger.Err(err).Str("func", "saltRepository.CreateSaltIfAbsent").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.execWithRetry(ctx, query, args); err != nil {
		s.logger.Err(err).Str("func", "saltRepository.CreateSaltIfAbsent").Msg("failed to insert salt")
		return "", fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	stored, found, err := s.GetSalt(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: salt missing after insert", ErrStorageUnavailable)
	}

	if stored != salt {
		s.logger.Debug().Str("func", "saltRepository.CreateSaltIfAbsent").Msg("salt already existed, keeping stored one")
	}
	return stored, nil
}
