// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/models"
)

// FileStorage keeps the salt, vault record, grants and settings in one JSON
// document. Every call re-reads the document so writes by another process
// are observed, and every write replaces it with a temp file + rename.
//
// FileStorage implements [SaltRepository], [VaultRecordRepository],
// [GrantRepository] and [SettingsRepository].
type FileStorage struct {
	path     string
	inMemory bool
	logger   *logger.Logger
	now      func() time.Time

	mu    sync.Mutex
	state filePersistedState
}

type filePersistedState struct {
	Salt     models.Salt                   `json:"ds_vault_salt,omitempty"`
	Record   *models.VaultRecord           `json:"ds_vault_store,omitempty"`
	Grants   map[string]models.AccessGrant `json:"ds_vault_access_grants,omitempty"`
	AutoLock *models.AutoLockTimeout       `json:"ds_autolock_timeout,omitempty"`
}

// NewFileStorage opens the JSON document at path. A missing file is an empty
// vault. ":memory:" keeps everything in process memory.
func NewFileStorage(path string, logger *logger.Logger) (*FileStorage, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &FileStorage{
		path:     path,
		inMemory: path == ":memory:",
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load replaces the cached state with the file content. Callers hold mu,
// except the constructor.
func (s *FileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.state = filePersistedState{}
			return nil
		}
		s.logger.Err(err).Str("func", "FileStorage.load").Msg("failed to read storage file")
		return fmt.Errorf("%w: read storage file: %w", ErrStorageUnavailable, err)
	}

	var st filePersistedState
	if len(data) > 0 {
		if err = json.Unmarshal(data, &st); err != nil {
			s.logger.Err(err).Str("func", "FileStorage.load").Msg("failed to decode storage file")
			return fmt.Errorf("%w: decode storage file: %w", ErrStorageUnavailable, err)
		}
	}

	s.state = st
	return nil
}

// persist writes the cached state. Callers hold mu.
func (s *FileStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create storage dir: %w", ErrStorageUnavailable, err)
	}

	payload, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode storage: %w", ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, s.path)
	}
	if err != nil {
		os.Remove(tmpName)
		s.logger.Err(err).Str("func", "FileStorage.persist").Msg("failed to write storage file")
		return fmt.Errorf("%w: write storage file: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// update reloads, applies fn and persists if fn succeeds.
func (s *FileStorage) update(fn func(st *filePersistedState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	if err := fn(&s.state); err != nil {
		return err
	}
	return s.persist()
}

// read reloads and hands the state to fn.
func (s *FileStorage) read(fn func(st *filePersistedState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	fn(&s.state)
	return nil
}

func (s *FileStorage) GetSalt(ctx context.Context) (models.Salt, bool, error) {
	var salt models.Salt
	err := s.read(func(st *filePersistedState) { salt = st.Salt })
	if err != nil {
		return "", false, err
	}
	return salt, salt != "", nil
}

func (s *FileStorage) CreateSaltIfAbsent(ctx context.Context, salt models.Salt) (models.Salt, error) {
	var stored models.Salt
	err := s.update(func(st *filePersistedState) error {
		if st.Salt == "" {
			st.Salt = salt
		}
		stored = st.Salt
		return nil
	})
	if err != nil {
		return "", err
	}
	return stored, nil
}

func (s *FileStorage) GetRecord(ctx context.Context) (models.VaultRecord, bool, error) {
	var rec *models.VaultRecord
	err := s.read(func(st *filePersistedState) { rec = st.Record })
	if err != nil {
		return models.VaultRecord{}, false, err
	}
	if rec == nil {
		return models.VaultRecord{}, false, nil
	}
	return *rec, true, nil
}

func (s *FileStorage) SaveRecord(ctx context.Context, rec models.VaultRecord, expectedVersion int64) (int64, error) {
	var newVersion int64
	err := s.update(func(st *filePersistedState) error {
		var current int64
		if st.Record != nil {
			current = st.Record.Version
		}
		if current != expectedVersion {
			s.logger.Warn().
				Str("func", "FileStorage.SaveRecord").
				Int64("db_version", current).
				Int64("expected_version", expectedVersion).
				Msg("optimistic lock failed: version mismatch on save")
			return ErrVersionConflict
		}

		newVersion = expectedVersion + 1
		saved := rec
		saved.Version = newVersion
		saved.UpdatedAt = s.now()
		st.Record = &saved
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

func (s *FileStorage) ListGrants(ctx context.Context) ([]models.AccessGrant, error) {
	grants := make([]models.AccessGrant, 0)
	err := s.read(func(st *filePersistedState) {
		for _, g := range st.Grants {
			grants = append(grants, g)
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(grants, func(i, j int) bool { return grants[i].PluginID < grants[j].PluginID })
	return grants, nil
}

func (s *FileStorage) IsGranted(ctx context.Context, pluginID string) (bool, error) {
	var granted bool
	err := s.read(func(st *filePersistedState) { granted = st.Grants[pluginID].Granted })
	return granted, err
}

func (s *FileStorage) SetGrant(ctx context.Context, pluginID string) error {
	return s.update(func(st *filePersistedState) error {
		if st.Grants == nil {
			st.Grants = make(map[string]models.AccessGrant)
		}
		st.Grants[pluginID] = models.AccessGrant{PluginID: pluginID, Granted: true, GrantedAt: s.now()}
		return nil
	})
}

func (s *FileStorage) DeleteGrant(ctx context.Context, pluginID string) error {
	return s.update(func(st *filePersistedState) error {
		delete(st.Grants, pluginID)
		return nil
	})
}

func (s *FileStorage) GetAutoLockTimeout(ctx context.Context) (models.AutoLockTimeout, bool, error) {
	var timeout *models.AutoLockTimeout
	err := s.read(func(st *filePersistedState) { timeout = st.AutoLock })
	if err != nil || timeout == nil {
		return 0, false, err
	}
	return *timeout, true, nil
}

func (s *FileStorage) SetAutoLockTimeout(ctx context.Context, timeout models.AutoLockTimeout) error {
	return s.update(func(st *filePersistedState) error {
		st.AutoLock = &timeout
		return nil
	})
}

var (
	_ SaltRepository        = (*FileStorage)(nil)
	_ VaultRecordRepository = (*FileStorage)(nil)
	_ GrantRepository       = (*FileStorage)(nil)
	_ SettingsRepository    = (*FileStorage)(nil)
)
