// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/validators"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

// keySource hands out the session master key.
type keySource interface {
	Key() (*crypto.MasterKey, error)
}

type passwordService struct {
	keys      keySource
	manager   *vault.Manager
	validator validators.Validator

	logger *logger.Logger
}

func NewPasswordService(keys keySource, manager *vault.Manager, validator validators.Validator, logger *logger.Logger) PasswordService {
	return &passwordService{
		keys:      keys,
		manager:   manager,
		validator: validator,
		logger:    logger,
	}
}

func (s *passwordService) List(ctx context.Context) ([]models.UserSecret, error) {
	key, err := s.keys.Key()
	if err != nil {
		return nil, err
	}

	secrets, err := s.manager.ListUserSecrets(ctx, key)
	if err != nil {
		s.logger.Err(err).Str("func", "passwordService.List").Msg("failed to list entries")
		return nil, err
	}

	slices.SortFunc(secrets, func(a, b models.UserSecret) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Entry.Title), strings.ToLower(b.Entry.Title)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return secrets, nil
}

func (s *passwordService) Search(ctx context.Context, query string) ([]models.UserSecret, error) {
	secrets, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return secrets, nil
	}
	return slices.DeleteFunc(secrets, func(sec models.UserSecret) bool {
		return !strings.Contains(strings.ToLower(sec.Entry.Title), query) &&
			!strings.Contains(strings.ToLower(sec.Entry.Username), query)
	}), nil
}

func (s *passwordService) Get(ctx context.Context, id string) (models.UserSecret, bool, error) {
	secrets, err := s.List(ctx)
	if err != nil {
		return models.UserSecret{}, false, err
	}
	for _, sec := range secrets {
		if sec.ID == id {
			return sec, true, nil
		}
	}
	return models.UserSecret{}, false, nil
}

func (s *passwordService) Save(ctx context.Context, id string, entry models.CredentialEntry) (string, error) {
	if id == "" {
		id = vault.NewUserSecretID()
	}
	entry = normalizeEntry(entry)

	if err := s.validator.Validate(ctx, models.UserSecret{ID: id, Entry: entry}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key, err := s.keys.Key()
	if err != nil {
		return "", err
	}
	if err := s.manager.PutUserSecret(ctx, key, id, entry); err != nil {
		s.logger.Err(err).Str("func", "passwordService.Save").Str("id", id).Msg("failed to save entry")
		return "", err
	}

	s.logger.Debug().Str("func", "passwordService.Save").Str("id", id).Msg("entry saved")
	return id, nil
}

func (s *passwordService) Delete(ctx context.Context, id string) error {
	key, err := s.keys.Key()
	if err != nil {
		return err
	}
	if err := s.manager.DeleteUserSecret(ctx, key, id); err != nil {
		s.logger.Err(err).Str("func", "passwordService.Delete").Str("id", id).Msg("failed to delete entry")
		return err
	}
	return nil
}

// normalizeEntry trims the text fields and lowercases, dedupes and drops
// empty tags.
func normalizeEntry(e models.CredentialEntry) models.CredentialEntry {
	e.Title = strings.TrimSpace(e.Title)
	e.Username = strings.TrimSpace(e.Username)
	e.URL = strings.TrimSpace(e.URL)

	if len(e.Tags) == 0 {
		e.Tags = nil
		return e
	}
	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(tags, t) {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}
	e.Tags = tags
	return e
}
