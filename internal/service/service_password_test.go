// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/validators"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

func TestPasswordService_Locked(t *testing.T) {
	svc := newTestServices(t, nil, config.StructuredConfig{})
	ctx := context.Background()

	_, err := svc.Passwords.List(ctx)
	assert.ErrorIs(t, err, vault.ErrVaultLocked)

	_, err = svc.Passwords.Save(ctx, "", models.CredentialEntry{Title: "a", Username: "b"})
	assert.ErrorIs(t, err, vault.ErrVaultLocked)

	assert.ErrorIs(t, svc.Passwords.Delete(ctx, "x"), vault.ErrVaultLocked)
}

func TestPasswordService_SaveListSorted(t *testing.T) {
	svc := unlocked(t)
	ctx := context.Background()

	for _, title := range []string{"zeta", "Alpha", "beta"} {
		_, err := svc.Passwords.Save(ctx, "", models.CredentialEntry{Title: title, Username: "dev"})
		require.NoError(t, err)
	}

	secrets, err := svc.Passwords.List(ctx)
	require.NoError(t, err)
	require.Len(t, secrets, 3)
	assert.Equal(t, "Alpha", secrets[0].Entry.Title)
	assert.Equal(t, "beta", secrets[1].Entry.Title)
	assert.Equal(t, "zeta", secrets[2].Entry.Title)
	for _, s := range secrets {
		assert.NotEmpty(t, s.ID)
		assert.False(t, vault.IsPluginKey(s.ID))
	}
}

func TestPasswordService_SaveNormalizesAndUpdates(t *testing.T) {
	svc := unlocked(t)
	ctx := context.Background()

	id, err := svc.Passwords.Save(ctx, "", models.CredentialEntry{
		Title:    "  GitHub ",
		Username: "dev",
		Tags:     []string{" Work", "work", "", "CODE"},
	})
	require.NoError(t, err)

	got, found, err := svc.Passwords.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "GitHub", got.Entry.Title)
	assert.Equal(t, []string{"work", "code"}, got.Entry.Tags)

	again, err := svc.Passwords.Save(ctx, id, models.CredentialEntry{Title: "GitHub", Username: "dev2"})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	got, _, err = svc.Passwords.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "dev2", got.Entry.Username)
	assert.Nil(t, got.Entry.Tags)

	_, found, err = svc.Passwords.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPasswordService_SaveValidation(t *testing.T) {
	svc := unlocked(t)
	ctx := context.Background()

	_, err := svc.Passwords.Save(ctx, "", models.CredentialEntry{Username: "dev"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	_, err = svc.Passwords.Save(ctx, "plugin:code_scanner:api_key", models.CredentialEntry{Title: "t", Username: "u"})
	assert.ErrorIs(t, err, validators.ErrReservedID)

	secrets, err := svc.Passwords.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, secrets)
}

func TestPasswordService_Search(t *testing.T) {
	svc := unlocked(t)
	ctx := context.Background()

	entries := []models.CredentialEntry{
		{Title: "GitHub", Username: "octocat"},
		{Title: "GitLab", Username: "tanuki"},
		{Title: "AWS", Username: "root@octo.dev"},
	}
	for _, e := range entries {
		_, err := svc.Passwords.Save(ctx, "", e)
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"AWS", "GitHub", "GitLab"}},
		{"git", []string{"GitHub", "GitLab"}},
		{"OCTO", []string{"AWS", "GitHub"}},
		{"  tanuki ", []string{"GitLab"}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := svc.Passwords.Search(ctx, tt.query)
			require.NoError(t, err)
			var titles []string
			for _, s := range got {
				titles = append(titles, s.Entry.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestPasswordService_Delete(t *testing.T) {
	svc := unlocked(t)
	ctx := context.Background()

	id, err := svc.Passwords.Save(ctx, "", models.CredentialEntry{Title: "t", Username: "u"})
	require.NoError(t, err)

	require.NoError(t, svc.Passwords.Delete(ctx, id))
	require.NoError(t, svc.Passwords.Delete(ctx, id))

	secrets, err := svc.Passwords.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, secrets)
}

func TestPasswordService_NeverSeesPluginSecrets(t *testing.T) {
	svc := unlocked(t)
	ctx := context.Background()

	pv, err := svc.Plugins.Capability("code_scanner")
	require.NoError(t, err)
	require.NoError(t, pv.RequestAccess(ctx, nil))
	require.NoError(t, svc.Plugins.Decide(ctx, "code_scanner", true))
	require.NoError(t, StoreAPIKey(ctx, pv, "sk-123"))

	secrets, err := svc.Passwords.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, secrets)
}
