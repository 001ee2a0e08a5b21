// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
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

type managerFixture struct {
	storages *store.Storages
	blobs    *BlobStore
	manager  *Manager
	key      *crypto.MasterKey
}

func newManagerFixture(t *testing.T, granted ...string) managerFixture {
	t.Helper()
	s := newMemStorages(t)
	for _, id := range granted {
		require.NoError(t, s.Grants.SetGrant(context.Background(), id))
	}
	blobs := NewBlobStore(s.Records, crypto.AESGCM, logger.Nop())
	return managerFixture{
		storages: s,
		blobs:    blobs,
		manager:  NewManager(blobs, s.Grants, logger.Nop()),
		key:      testKey(t, "pw"),
	}
}

func TestPluginSecretKey(t *testing.T) {
	tests := []struct {
		name     string
		pluginID string
		secret   string
		want     string
		wantErr  error
	}{
		{name: "ok", pluginID: "code_scanner", secret: "api_key", want: "plugin:code_scanner:api_key"},
		{name: "empty plugin", pluginID: "", secret: "api_key", wantErr: ErrInvalidPluginID},
		{name: "separator in plugin", pluginID: "a:b", secret: "api_key", wantErr: ErrInvalidPluginID},
		{name: "empty name", pluginID: "p", secret: "", wantErr: ErrInvalidSecretName},
		{name: "separator in name", pluginID: "p", secret: "x:y", wantErr: ErrInvalidSecretName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PluginSecretKey(tt.pluginID, tt.secret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsPluginKey(got))
		})
	}
}

func TestNewUserSecretID_OutsidePluginNamespace(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := NewUserSecretID()
		require.NotEmpty(t, id)
		require.False(t, IsPluginKey(id))
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestManager_FirstRunListIsEmpty(t *testing.T) {
	f := newManagerFixture(t)

	secrets, err := f.manager.ListUserSecrets(context.Background(), f.key)
	require.NoError(t, err)
	assert.Empty(t, secrets)
}

func TestManager_UserSecretLifecycle(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	entry := models.CredentialEntry{Title: "GitHub", Username: "dev", Password: "hunter2", Tags: []string{"work"}}
	require.NoError(t, f.manager.PutUserSecret(ctx, f.key, "e1", entry))

	secrets, err := f.manager.ListUserSecrets(ctx, f.key)
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	assert.Equal(t, models.UserSecret{ID: "e1", Entry: entry}, secrets[0])

	entry.Password = "correct horse"
	require.NoError(t, f.manager.PutUserSecret(ctx, f.key, "e1", entry))
	secrets, err = f.manager.ListUserSecrets(ctx, f.key)
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	assert.Equal(t, "correct horse", secrets[0].Entry.Password)

	require.NoError(t, f.manager.DeleteUserSecret(ctx, f.key, "e1"))
	secrets, err = f.manager.ListUserSecrets(ctx, f.key)
	require.NoError(t, err)
	assert.Empty(t, secrets)
}

func TestManager_DeleteMissingDoesNotWrite(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.manager.PutUserSecret(ctx, f.key, "e1", models.CredentialEntry{Title: "a"}))
	before, _, err := f.storages.Records.GetRecord(ctx)
	require.NoError(t, err)

	require.NoError(t, f.manager.DeleteUserSecret(ctx, f.key, "missing"))

	after, _, err := f.storages.Records.GetRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, before.IV, after.IV)
}

func TestManager_UserSecretIDValidation(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.manager.PutUserSecret(ctx, f.key, "", models.CredentialEntry{}), ErrEmptyEntryID)
	assert.ErrorIs(t, f.manager.PutUserSecret(ctx, f.key, "plugin:x:y", models.CredentialEntry{}), ErrReservedPrefix)
	assert.ErrorIs(t, f.manager.DeleteUserSecret(ctx, f.key, "plugin:x:y"), ErrReservedPrefix)
}

func TestManager_ListNeverLeaksPluginKeys(t *testing.T) {
	ids := []string{"code_scanner", "openai_assistant", "GitHub", "plugin"}
	f := newManagerFixture(t, ids...)
	ctx := context.Background()

	require.NoError(t, f.manager.PutUserSecret(ctx, f.key, "GitHub", models.CredentialEntry{Title: "GitHub"}))
	for _, id := range ids {
		require.NoError(t, f.manager.PutPluginSecret(ctx, f.key, id, "api_key", "sk-"+id))
	}

	secrets, err := f.manager.ListUserSecrets(ctx, f.key)
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	for _, s := range secrets {
		for _, id := range ids {
			assert.False(t, strings.HasPrefix(s.ID, "plugin:"+id+":"), s.ID)
		}
		assert.False(t, IsPluginKey(s.ID))
	}
}

func TestManager_ListSkipsMalformedEntries(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	_, err := f.blobs.Encrypt(ctx, f.key, Object{
		"good": json.RawMessage(`{"title":"ok"}`),
		"bad":  json.RawMessage(`"just a string"`),
	}, 0)
	require.NoError(t, err)

	secrets, err := f.manager.ListUserSecrets(ctx, f.key)
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	assert.Equal(t, "good", secrets[0].ID)
}

func TestManager_PluginSecretIsolation(t *testing.T) {
	f := newManagerFixture(t, "pluginA", "pluginB")
	ctx := context.Background()

	require.NoError(t, f.manager.PutPluginSecret(ctx, f.key, "pluginB", "api_key", "sk-b"))

	_, found, err := f.manager.GetPluginSecret(ctx, f.key, "pluginA", "api_key")
	require.NoError(t, err)
	assert.False(t, found)

	v, found, err := f.manager.GetPluginSecret(ctx, f.key, "pluginB", "api_key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "sk-b", v)
}

func TestManager_MalformedPluginSecret(t *testing.T) {
	f := newManagerFixture(t, "scanner")
	ctx := context.Background()

	require.NoError(t, f.manager.mutate(ctx, f.key, func(obj Object) bool {
		obj["plugin:scanner:api_key"] = json.RawMessage(`{"not":"a string"}`)
		return true
	}))

	v, found, err := f.manager.GetPluginSecret(ctx, f.key, "scanner", "api_key")
	require.ErrorIs(t, err, ErrMalformedSecret)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestManager_PluginSecretRequiresGrant(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	err := f.manager.PutPluginSecret(ctx, f.key, "code_scanner", "api_key", "sk")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, _, err = f.manager.GetPluginSecret(ctx, f.key, "code_scanner", "api_key")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, found, err := f.storages.Records.GetRecord(ctx)
	require.NoError(t, err)
	assert.False(t, found, "denied write must not touch the vault")
}

func TestManager_GrantLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	grants := mock.NewMockGrantRepository(ctrl)
	boom := errors.New("grants unavailable")
	grants.EXPECT().IsGranted(gomock.Any(), "p").Return(false, boom)

	m := NewManager(NewBlobStore(newMemStorages(t).Records, crypto.AESGCM, logger.Nop()), grants, logger.Nop())
	_, _, err := m.GetPluginSecret(context.Background(), testKey(t, "pw"), "p", "api_key")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
}

func TestManager_DeleteAllPluginSecrets(t *testing.T) {
	f := newManagerFixture(t, "scanner", "scanner2")
	ctx := context.Background()

	require.NoError(t, f.manager.PutPluginSecret(ctx, f.key, "scanner", "api_key", "a"))
	require.NoError(t, f.manager.PutPluginSecret(ctx, f.key, "scanner", "org", "b"))
	require.NoError(t, f.manager.PutPluginSecret(ctx, f.key, "scanner2", "api_key", "c"))
	require.NoError(t, f.manager.PutUserSecret(ctx, f.key, "e1", models.CredentialEntry{Title: "t"}))

	require.NoError(t, f.manager.DeleteAllPluginSecrets(ctx, f.key, "scanner"))

	res := f.blobs.Decrypt(ctx, f.key)
	require.Equal(t, StatusOK, res.Status)
	assert.NotContains(t, res.Object, "plugin:scanner:api_key")
	assert.NotContains(t, res.Object, "plugin:scanner:org")
	assert.Contains(t, res.Object, "plugin:scanner2:api_key", "prefix match stops at the separator")
	assert.Contains(t, res.Object, "e1")

	// works without a grant
	require.NoError(t, f.storages.Grants.DeleteGrant(ctx, "scanner2"))
	require.NoError(t, f.manager.DeleteAllPluginSecrets(ctx, f.key, "scanner2"))
}

func TestManager_LockedAndWrongKey(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	_, err := f.manager.ListUserSecrets(ctx, nil)
	assert.ErrorIs(t, err, ErrVaultLocked)

	require.NoError(t, f.manager.PutUserSecret(ctx, f.key, "e1", models.CredentialEntry{Title: "t"}))

	_, err = f.manager.ListUserSecrets(ctx, testKey(t, "other"))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	err = f.manager.PutUserSecret(ctx, testKey(t, "other"), "e2", models.CredentialEntry{})
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestManager_ConcurrentMutationsAreNotLost(t *testing.T) {
	f := newManagerFixture(t, "code_scanner")
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := range n {
		wg.Go(func() {
			if i%2 == 0 {
				assert.NoError(t, f.manager.PutUserSecret(ctx, f.key, NewUserSecretID(), models.CredentialEntry{Title: "t"}))
				return
			}
			name := "k" + string(rune('a'+i))
			assert.NoError(t, f.manager.PutPluginSecret(ctx, f.key, "code_scanner", name, "v"))
		})
	}
	wg.Wait()

	res := f.blobs.Decrypt(ctx, f.key)
	require.Equal(t, StatusOK, res.Status)
	assert.Len(t, res.Object, n)
	assert.Equal(t, int64(n), res.Version)
}

func TestManager_StaleWriteFromAnotherWriter(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.manager.PutUserSecret(ctx, f.key, "e1", models.CredentialEntry{Title: "t"}))

	ctrl := gomock.NewController(t)
	records := mock.NewMockVaultRecordRepository(ctrl)
	rec, _, err := f.storages.Records.GetRecord(ctx)
	require.NoError(t, err)
	records.EXPECT().GetRecord(gomock.Any()).Return(rec, true, nil)
	records.EXPECT().SaveRecord(gomock.Any(), gomock.Any(), rec.Version).Return(int64(0), store.ErrVersionConflict)

	m := NewManager(NewBlobStore(records, crypto.AESGCM, logger.Nop()), f.storages.Grants, logger.Nop())
	err = m.PutUserSecret(ctx, f.key, "e2", models.CredentialEntry{Title: "t"})
	assert.ErrorIs(t, err, ErrStaleWrite)
}
