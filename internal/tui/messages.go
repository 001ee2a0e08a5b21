// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/devkit-vault/models"
)

// notificationMsg and accessPromptMsg arrive from [Events].
type notificationMsg struct {
	notification models.Notification
}

type accessPromptMsg struct {
	request models.AccessRequest
}

type unlockDoneMsg struct {
	err error
}

type entriesLoadedMsg struct {
	query   string
	entries []models.UserSecret
	err     error
}

type entrySavedMsg struct {
	id  string
	err error
}

type entryDeletedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type decidedMsg struct {
	plugin  models.PluginDescriptor
	approve bool
	err     error
}

type pluginStatesMsg struct {
	states map[string]models.AccessState
	// keys tells whether an API key is stored, for granted key plugins only.
	keys map[string]bool
	err  error
}

type keyConfiguredMsg struct {
	plugin models.PluginDescriptor
	err    error
}

type autoLockSetMsg struct {
	timeout models.AutoLockTimeout
	err     error
}

type revokedMsg struct {
	plugin models.PluginDescriptor
	err    error
}

type clearStatusMsg struct {
	seq int
}
