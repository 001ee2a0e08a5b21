// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import "errors"

var (
	ErrNilPlugin       = errors.New("plugin is nil")
	ErrDuplicatePlugin = errors.New("plugin already registered")

	// ErrCapabilityMismatch is returned when a plugin is handed the vault
	// capability of another plugin.
	ErrCapabilityMismatch = errors.New("vault capability belongs to another plugin")

	// ErrAwaitingConsent is returned by Configure when the user has not
	// decided on the access request yet. The key is stored once access is
	// granted.
	ErrAwaitingConsent = errors.New("waiting for the user to grant vault access")
)
