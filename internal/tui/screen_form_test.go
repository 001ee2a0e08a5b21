// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/internal/validators"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestForm_CreateEntry(t *testing.T) {
	f := newFixture(t)
	m := f.unlockedWith(t, githubEntry)

	m = press(t, m, "n")
	require.Equal(t, screenForm, m.screen)
	assert.Contains(t, m.View(), "NEW ENTRY")

	m = typeText(t, m, "  Work Mail ")
	m = press(t, m, "tab")
	m = typeText(t, m, "me@example.com")
	m = press(t, m, "enter")
	require.Equal(t, fieldPassword, m.form.focus)
	m = press(t, m, "ctrl+g")
	generated := m.form.inputs[fieldPassword].Value()
	assert.Len(t, generated, utils.DefaultPasswordLength)
	m = press(t, m, "tab", "tab")
	m = typeText(t, m, "mail, work")

	var saved models.CredentialEntry
	f.passwords.EXPECT().Save(gomock.Any(), "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.CredentialEntry) (string, error) {
			saved = e
			return "id-new", nil
		})
	f.passwords.EXPECT().List(gomock.Any()).Return([]models.UserSecret{
		githubEntry,
		{ID: "id-new", Entry: models.CredentialEntry{Title: "Work Mail", Username: "me@example.com"}},
	}, nil)
	m = press(t, m, "ctrl+s")

	assert.Equal(t, "Work Mail", saved.Title)
	assert.Equal(t, "me@example.com", saved.Username)
	assert.Equal(t, generated, saved.Password)
	assert.Equal(t, []string{"mail", "work"}, saved.Tags)

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, 1, m.list.cursor)
	assert.Contains(t, m.View(), "Entry saved.")
}

func TestForm_EditEntry(t *testing.T) {
	f := newFixture(t)
	m := f.unlockedWith(t, githubEntry)

	m = press(t, m, "enter", "e")
	require.Equal(t, screenForm, m.screen)
	assert.Equal(t, githubEntry.ID, m.form.id)
	assert.Contains(t, m.View(), "EDIT ENTRY")
	assert.NotContains(t, m.View(), "pw-github")

	m = press(t, m, "ctrl+r")
	assert.Contains(t, m.View(), "pw-github")

	f.passwords.EXPECT().Save(gomock.Any(), githubEntry.ID, githubEntry.Entry).Return(githubEntry.ID, nil)
	f.passwords.EXPECT().List(gomock.Any()).Return([]models.UserSecret{githubEntry}, nil)
	m = press(t, m, "ctrl+s")
	assert.Equal(t, screenList, m.screen)
}

func TestForm_ValidationError(t *testing.T) {
	f := newFixture(t)
	m := f.unlockedWith(t)

	f.passwords.EXPECT().Save(gomock.Any(), "", gomock.Any()).
		Return("", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTitle))
	m = press(t, m, "n", "ctrl+s")

	assert.Equal(t, screenForm, m.screen)
	assert.False(t, m.form.saving)
	assert.Contains(t, m.View(), "Error: title is required")
}

func TestForm_LockedWhileSaving(t *testing.T) {
	f := newFixture(t)
	m := f.unlockedWith(t)

	f.passwords.EXPECT().Save(gomock.Any(), "", gomock.Any()).Return("", vault.ErrVaultLocked)
	m = press(t, m, "n")
	m = typeText(t, m, "secret title")
	m = press(t, m, "ctrl+s")

	assert.Equal(t, screenUnlock, m.screen)
	assert.Nil(t, m.form.inputs)
}

func TestForm_Cancel(t *testing.T) {
	m := newFixture(t).unlockedWith(t)

	m = press(t, m, "n")
	m = typeText(t, m, "draft")
	m = press(t, m, "esc")

	assert.Equal(t, screenList, m.screen)
	assert.Nil(t, m.form.inputs)
}

func TestForm_FocusWraps(t *testing.T) {
	f := newFormState("", models.CredentialEntry{})

	f.setFocus(f.focus - 1)
	assert.Equal(t, fieldNotes, f.focus)
	assert.True(t, f.notes.Focused())

	f.setFocus(f.focus + 1)
	assert.Equal(t, fieldTitle, f.focus)
	assert.True(t, f.inputs[fieldTitle].Focused())
	assert.False(t, f.notes.Focused())
}

func TestFormState_Entry(t *testing.T) {
	f := newFormState("id-a", models.CredentialEntry{
		Title:    " GitHub ",
		Username: "octocat",
		Password: " keep spaces ",
		Notes:    "line 1\nline 2",
		Tags:     []string{"git", "work"},
	})
	f.inputs[fieldTags].SetValue("git, , work ,")

	got := f.entry()
	assert.Equal(t, models.CredentialEntry{
		Title:    "GitHub",
		Username: "octocat",
		Password: " keep spaces ",
		Notes:    "line 1\nline 2",
		Tags:     []string{"git", "work"},
	}, got)
}
