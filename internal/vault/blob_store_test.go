// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/mock"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/models"
)

func newTestBlobStore(t *testing.T, alg crypto.Algorithm) *BlobStore {
	t.Helper()
	return NewBlobStore(newMemStorages(t).Records, alg, logger.Nop())
}

func TestBlobStore_DecryptWithoutRecordIsEmpty(t *testing.T) {
	b := newTestBlobStore(t, crypto.AESGCM)

	res := b.Decrypt(context.Background(), testKey(t, "pw"))
	require.NoError(t, res.Err)
	assert.Equal(t, StatusEmpty, res.Status)
	assert.NotNil(t, res.Object)
	assert.Empty(t, res.Object)
	assert.Zero(t, res.Version)
}

func TestBlobStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		alg  crypto.Algorithm
		obj  Object
	}{
		{name: "empty object", alg: crypto.AESGCM, obj: Object{}},
		{
			name: "user and plugin entries",
			alg:  crypto.AESGCM,
			obj: Object{
				"entry-1":                     json.RawMessage(`{"title":"GitHub","username":"dev","password":"hunter2"}`),
				"plugin:code_scanner:api_key": json.RawMessage(`"sk-123"`),
			},
		},
		{
			name: "chacha20",
			alg:  crypto.ChaCha20,
			obj:  Object{"n": json.RawMessage(`42`), "list": json.RawMessage(`[1,2,3]`)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBlobStore(t, tt.alg)
			key := testKey(t, "correct horse")
			ctx := context.Background()

			rec, err := b.Encrypt(ctx, key, tt.obj, 0)
			require.NoError(t, err)
			assert.Equal(t, int64(1), rec.Version)
			assert.Equal(t, string(tt.alg), rec.Algorithm)

			res := b.Decrypt(ctx, key)
			require.NoError(t, res.Err)
			require.Equal(t, StatusOK, res.Status)
			assert.Equal(t, int64(1), res.Version)

			want, err := json.Marshal(tt.obj)
			require.NoError(t, err)
			got, err := json.Marshal(res.Object)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestBlobStore_WrongKeyFails(t *testing.T) {
	b := newTestBlobStore(t, crypto.AESGCM)
	ctx := context.Background()

	_, err := b.Encrypt(ctx, testKey(t, "first"), Object{"a": json.RawMessage(`"b"`)}, 0)
	require.NoError(t, err)

	res := b.Decrypt(ctx, testKey(t, "second"))
	require.NoError(t, res.Err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Nil(t, res.Object)
}

func TestBlobStore_FreshNonceOnEveryWrite(t *testing.T) {
	b := newTestBlobStore(t, crypto.AESGCM)
	key := testKey(t, "pw")
	ctx := context.Background()

	const n = 64
	seen := make(map[string]struct{}, n)
	version := int64(0)
	for range n {
		rec, err := b.Encrypt(ctx, key, Object{"same": json.RawMessage(`"value"`)}, version)
		require.NoError(t, err)
		version = rec.Version

		nonce, err := base64.StdEncoding.DecodeString(rec.IV)
		require.NoError(t, err)
		require.Len(t, nonce, crypto.NonceSize)

		_, dup := seen[rec.IV]
		require.False(t, dup, "nonce reused at version %d", version)
		seen[rec.IV] = struct{}{}
	}
	assert.Equal(t, int64(n), version)
}

func TestBlobStore_StaleWrite(t *testing.T) {
	b := newTestBlobStore(t, crypto.AESGCM)
	key := testKey(t, "pw")
	ctx := context.Background()

	_, err := b.Encrypt(ctx, key, Object{"first": json.RawMessage(`1`)}, 0)
	require.NoError(t, err)

	_, err = b.Encrypt(ctx, key, Object{"second": json.RawMessage(`2`)}, 0)
	require.ErrorIs(t, err, ErrStaleWrite)
	assert.ErrorIs(t, err, store.ErrVersionConflict)

	res := b.Decrypt(ctx, key)
	require.Equal(t, StatusOK, res.Status)
	assert.Contains(t, res.Object, "first")
	assert.NotContains(t, res.Object, "second")
}

func TestBlobStore_TamperedRecordFails(t *testing.T) {
	key := testKey(t, "pw")
	ctx := context.Background()

	// seal a real record, then replay it through a mocked repository
	var sealed models.VaultRecord
	{
		b := newTestBlobStore(t, crypto.AESGCM)
		rec, err := b.Encrypt(ctx, key, Object{"k": json.RawMessage(`"v"`)}, 0)
		require.NoError(t, err)
		sealed = rec
	}

	flipped, err := base64.StdEncoding.DecodeString(sealed.Ciphertext)
	require.NoError(t, err)
	flipped[0] ^= 0xff

	tests := []struct {
		name   string
		mutate func(r *models.VaultRecord)
	}{
		{name: "ciphertext bit flip", mutate: func(r *models.VaultRecord) {
			r.Ciphertext = base64.StdEncoding.EncodeToString(flipped)
		}},
		{name: "version rolled forward", mutate: func(r *models.VaultRecord) { r.Version = 7 }},
		{name: "iv not base64", mutate: func(r *models.VaultRecord) { r.IV = "%%%" }},
		{name: "ciphertext not base64", mutate: func(r *models.VaultRecord) { r.Ciphertext = "%%%" }},
		{name: "unknown algorithm", mutate: func(r *models.VaultRecord) { r.Algorithm = "rot13" }},
		{name: "other algorithm", mutate: func(r *models.VaultRecord) { r.Algorithm = string(crypto.ChaCha20) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			records := mock.NewMockVaultRecordRepository(ctrl)

			rec := sealed
			tt.mutate(&rec)
			records.EXPECT().GetRecord(gomock.Any()).Return(rec, true, nil)

			res := NewBlobStore(records, crypto.AESGCM, logger.Nop()).Decrypt(ctx, key)
			require.NoError(t, res.Err)
			assert.Equal(t, StatusFailed, res.Status)
		})
	}
}

func TestBlobStore_LegacyRecordWithoutAlgorithm(t *testing.T) {
	key := testKey(t, "pw")
	ctx := context.Background()

	b := newTestBlobStore(t, crypto.AESGCM)
	rec, err := b.Encrypt(ctx, key, Object{"k": json.RawMessage(`"v"`)}, 0)
	require.NoError(t, err)
	rec.Algorithm = ""

	ctrl := gomock.NewController(t)
	records := mock.NewMockVaultRecordRepository(ctrl)
	records.EXPECT().GetRecord(gomock.Any()).Return(rec, true, nil)

	res := NewBlobStore(records, crypto.ChaCha20, logger.Nop()).Decrypt(ctx, key)
	require.NoError(t, res.Err)
	assert.Equal(t, StatusOK, res.Status)
}

func TestBlobStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	key := testKey(t, "pw")
	boom := errors.New("disk gone")

	t.Run("read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := mock.NewMockVaultRecordRepository(ctrl)
		records.EXPECT().GetRecord(gomock.Any()).Return(models.VaultRecord{}, false, boom)

		res := NewBlobStore(records, crypto.AESGCM, logger.Nop()).Decrypt(ctx, key)
		assert.ErrorIs(t, res.Err, boom)
	})

	t.Run("write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := mock.NewMockVaultRecordRepository(ctrl)
		records.EXPECT().SaveRecord(gomock.Any(), gomock.Any(), int64(3)).Return(int64(0), boom)

		_, err := NewBlobStore(records, crypto.AESGCM, logger.Nop()).Encrypt(ctx, key, Object{}, 3)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrStaleWrite)
	})

	t.Run("unexpected version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := mock.NewMockVaultRecordRepository(ctrl)
		records.EXPECT().SaveRecord(gomock.Any(), gomock.Any(), int64(3)).Return(int64(9), nil)

		_, err := NewBlobStore(records, crypto.AESGCM, logger.Nop()).Encrypt(ctx, key, Object{}, 3)
		assert.ErrorIs(t, err, ErrStaleWrite)
	})
}

func TestBlobStore_DestroyedKey(t *testing.T) {
	b := newTestBlobStore(t, crypto.AESGCM)
	ctx := context.Background()

	key := testKey(t, "pw")
	_, err := b.Encrypt(ctx, key, Object{}, 0)
	require.NoError(t, err)
	key.Destroy()

	res := b.Decrypt(ctx, key)
	assert.ErrorIs(t, res.Err, ErrVaultLocked)
	assert.ErrorIs(t, res.Err, crypto.ErrKeyDestroyed)

	_, err = b.Encrypt(ctx, key, Object{}, 1)
	assert.ErrorIs(t, err, crypto.ErrKeyDestroyed)
}

func TestDecryptStatus_String(t *testing.T) {
	assert.Equal(t, "empty", StatusEmpty.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "unknown", DecryptStatus(42).String())
}
