// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "github.com/MKhiriev/devkit-vault/models"

//go:generate mockgen -source=notify.go -destination=../mock/vault_mock.go -package=mock

// Notifier receives user-visible messages such as the auto-lock notice.
type Notifier interface {
	Notify(n models.Notification)
}

// Prompter is told about every new pending access request so the host can
// show the consent dialog.
type Prompter interface {
	PromptAccess(req models.AccessRequest)
}

type nopNotifier struct{}

func (nopNotifier) Notify(models.Notification) {}

type nopPrompter struct{}

func (nopPrompter) PromptAccess(models.AccessRequest) {}
