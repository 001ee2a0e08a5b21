// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"crypto/sha256"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/models"
)

// fastDeriver is a deterministic stand-in for the iterated KDF.
type fastDeriver struct{}

func (fastDeriver) DeriveKey(password string, salt models.Salt) (*crypto.MasterKey, error) {
	if password == "" {
		return nil, crypto.ErrEmptyPassword
	}
	sum := sha256.Sum256([]byte(string(salt) + "\x00" + password))
	return crypto.NewMasterKey(sum[:])
}

func newMemStorages(t *testing.T) *store.Storages {
	t.Helper()
	fs, err := store.NewFileStorage(":memory:", logger.Nop())
	require.NoError(t, err)
	return store.NewFileStorages(fs)
}

func testKey(t *testing.T, password string) *crypto.MasterKey {
	t.Helper()
	key, err := fastDeriver{}.DeriveKey(password, "c2FsdHNhbHRzYWx0c2FsdA==")
	require.NoError(t, err)
	t.Cleanup(key.Destroy)
	return key
}

// warmUpKeyStore makes memguard start its background goroutines outside
// of any synctest bubble.
func warmUpKeyStore(t *testing.T) {
	t.Helper()
	key, err := crypto.NewMasterKey(make([]byte, crypto.KeySize))
	require.NoError(t, err)
	key.Destroy()
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []models.Notification
}

func (r *recordingNotifier) Notify(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recordingNotifier) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.got...)
}
