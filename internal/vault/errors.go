// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrVaultLocked is returned when an operation needs the master key but
	// the session is locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrAuthenticationFailed is returned when the stored record does not
	// open under the supplied key: wrong password or tampered ciphertext.
	ErrAuthenticationFailed = errors.New("vault authentication failed")

	// ErrPermissionDenied is returned by plugin secret operations for a
	// plugin without a persisted grant.
	ErrPermissionDenied = errors.New("plugin has no vault access grant")

	// ErrStaleWrite is returned when the vault record changed between read
	// and write. The mutation was not applied.
	ErrStaleWrite = errors.New("vault record was modified concurrently")

	// ErrMalformedSecret is returned when a stored plugin secret does not
	// decode as a string.
	ErrMalformedSecret = errors.New("stored plugin secret is malformed")

	// ErrReservedPrefix is returned for user entry IDs inside the plugin
	// namespace.
	ErrReservedPrefix = errors.New("entry id uses the reserved plugin prefix")

	// ErrEmptyEntryID is returned for an empty user entry ID.
	ErrEmptyEntryID = errors.New("entry id is empty")

	// ErrInvalidPluginID is returned for an empty plugin ID or one that
	// contains the namespace separator.
	ErrInvalidPluginID = errors.New("invalid plugin id")

	// ErrInvalidSecretName is returned for an empty secret name or one that
	// contains the namespace separator.
	ErrInvalidSecretName = errors.New("invalid plugin secret name")

	// ErrRequestPending is returned when a plugin asks for access while its
	// previous request still waits for the user.
	ErrRequestPending = errors.New("access request already pending")

	// ErrNoPendingRequest is returned when deciding on or awaiting a plugin
	// that has no pending request.
	ErrNoPendingRequest = errors.New("no pending access request")

	// ErrInvalidAutoLockTimeout is returned for a timeout outside
	// models.AutoLockOptions.
	ErrInvalidAutoLockTimeout = errors.New("invalid auto-lock timeout")
)
