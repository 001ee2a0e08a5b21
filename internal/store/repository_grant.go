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

type grantRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewGrantRepository returns a SQLite-backed [GrantRepository].
func NewGrantRepository(db *DB, logger *logger.Logger) GrantRepository {
	return &grantRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (g *grantRepository) ListGrants(ctx context.Context) ([]models.AccessGrant, error) {
	query, args, err := buildSelectGrantsQuery()
	if err != nil {
		g.logger.Err(err).Str("func", "grantRepository.ListGrants").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := g.DB.QueryContext(ctx, query, args...)
	if err != nil {
		g.logger.Err(err).Str("func", "grantRepository.ListGrants").Msg("failed to query grants")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make([]models.AccessGrant, 0)
	for rows.Next() {
		var grant models.AccessGrant
		if err := rows.Scan(&grant.PluginID, &grant.Granted, &grant.GrantedAt); err != nil {
			g.logger.Err(err).Str("func", "grantRepository.ListGrants").Msg("failed to scan grant row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		grants = append(grants, grant)
	}

	if err := rows.Err(); err != nil {
		g.logger.Err(err).Str("func", "grantRepository.ListGrants").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grants, nil
}

func (g *grantRepository) IsGranted(ctx context.Context, pluginID string) (bool, error) {
	query, args, err := buildSelectGrantQuery(pluginID)
	if err != nil {
		g.logger.Err(err).Str("func", "grantRepository.IsGranted").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var granted bool
	err = g.DB.QueryRowContext(ctx, query, args...).Scan(&granted)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		g.logger.Err(err).
			Str("func", "grantRepository.IsGranted").
			Str("plugin_id", pluginID).
			Msg("failed to read grant")
		return false, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrScanningRow, err)
	}

	return granted, nil
}

func (g *grantRepository) SetGrant(ctx context.Context, pluginID string) error {
	query, args, err := buildUpsertGrantQuery(pluginID, g.now())
	if err != nil {
		g.logger.Err(err).Str("func", "grantRepository.SetGrant").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = g.execWithRetry(ctx, query, args); err != nil {
		g.logger.Err(err).
			Str("func", "grantRepository.SetGrant").
			Str("plugin_id", pluginID).
			Msg("failed to persist grant")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

func (g *grantRepository) DeleteGrant(ctx context.Context, pluginID string) error {
	query, args, err := buildDeleteGrantQuery(pluginID)
	if err != nil {
		g.logger.Err(err).Str("func", "grantRepository.DeleteGrant").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = g.execWithRetry(ctx, query, args); err != nil {
		g.logger.Err(err).
			Str("func", "grantRepository.DeleteGrant").
			Str("plugin_id", pluginID).
			Msg("failed to delete grant")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	return nil
}
